package usecase

import (
	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/log"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/ledger"
)

type impl struct {
	repo ledger.Repo
}

// New creates ledger usecase
func New(repo ledger.Repo) ledger.UseCase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Create(c ctx.Ctx, account *ledger.Account) error {
	if err := im.repo.Create(c, account); err != nil {
		c.WithFields(log.Fields{
			"address": account.Address,
			"err":     err,
		}).Error("repo.Create failed")
		return err
	}
	return nil
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*ledger.Account, error) {
	account, err := im.repo.Get(c, address)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"address": address,
				"err":     err,
			}).Error("repo.Get failed")
		}
		return nil, err
	}
	return account, nil
}

func (im *impl) Transfer(c ctx.Ctx, from, to domain.Address, amount uint64) error {
	// zero amount transfers are settled without touching the ledger
	if amount == 0 {
		return nil
	}
	if err := im.repo.Debit(c, from, amount); err != nil {
		c.WithFields(log.Fields{
			"from":   from,
			"amount": amount,
			"err":    err,
		}).Warn("debit failed")
		return err
	}
	if err := im.repo.Credit(c, to, amount); err != nil {
		c.WithFields(log.Fields{
			"to":     to,
			"amount": amount,
			"err":    err,
		}).Error("credit failed")
		return err
	}
	return nil
}
