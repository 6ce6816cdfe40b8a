package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/log"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/ledger"
	"github.com/mintfolio/settleapi/service/query"
)

type impl struct {
	query query.Mongo
}

// New creates new ledger account repo
func New(query query.Mongo) ledger.Repo {
	return &impl{
		query: query,
	}
}

func (im *impl) Create(c ctx.Ctx, account *ledger.Account) error {
	account.Address = account.Address.ToLower()
	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now
	if err := im.query.Insert(c, domain.TableLedgerAccounts, account); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": account.Address,
			"err":     err,
		}).Error("insert ledger account failed")
		return err
	}
	return nil
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*ledger.Account, error) {
	account := &ledger.Account{}
	if err := im.query.FindOne(c, domain.TableLedgerAccounts, bson.M{"address": address.ToLower()}, account); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("find ledger account failed")
		return nil, err
	}
	return account, nil
}

func (im *impl) Credit(c ctx.Ctx, address domain.Address, amount uint64) error {
	selector := bson.M{"address": address.ToLower()}
	update := bson.M{
		"$inc": bson.M{"balance": int64(amount)},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	if err := im.query.CustomPatch(c, domain.TableLedgerAccounts, selector, update, false); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"amount":  amount,
			"err":     err,
		}).Error("credit ledger account failed")
		return err
	}
	return nil
}

func (im *impl) Debit(c ctx.Ctx, address domain.Address, amount uint64) error {
	// the balance guard makes the decrement atomic, no read-check-write race
	selector := bson.M{
		"address": address.ToLower(),
		"balance": bson.M{"$gte": int64(amount)},
	}
	update := bson.M{
		"$inc": bson.M{"balance": -int64(amount)},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	if err := im.query.CustomPatch(c, domain.TableLedgerAccounts, selector, update, false); err == query.ErrNotFound {
		// distinguish a short balance from a missing account
		if _, err := im.Get(c, address); err != nil {
			return err
		}
		return domain.ErrInsufficientFunds
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"amount":  amount,
			"err":     err,
		}).Error("debit ledger account failed")
		return err
	}
	return nil
}
