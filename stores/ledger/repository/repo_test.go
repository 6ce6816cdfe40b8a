package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/ledger"
	"github.com/mintfolio/settleapi/service/query"
	"github.com/mintfolio/settleapi/service/query/mocks"
)

func TestCreate(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	q := &mocks.Mongo{}
	im := New(q)

	account := &ledger.Account{
		Address: domain.Address("0xABC"),
		Balance: 1000,
	}

	q.On("Insert", c, domain.TableLedgerAccounts, account).Return(nil).Once()
	req.NoError(im.Create(c, account))
	req.Equal(domain.Address("0xabc"), account.Address)
	req.False(account.CreatedAt.IsZero())

	q.On("Insert", c, domain.TableLedgerAccounts, account).Return(query.ErrDuplicateKey).Once()
	req.ErrorIs(im.Create(c, account), domain.ErrConflict)

	q.AssertExpectations(t)
}

func TestDebit(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	q := &mocks.Mongo{}
	im := New(q)

	addr := domain.Address("0xabc")

	guarded := func(amount int64) interface{} {
		return mock.MatchedBy(func(selector bson.M) bool {
			balance, ok := selector["balance"].(bson.M)
			return selector["address"] == addr && ok && balance["$gte"] == amount
		})
	}

	q.On("CustomPatch", c, domain.TableLedgerAccounts, guarded(400), mock.Anything, false).
		Return(nil).Once()
	req.NoError(im.Debit(c, addr, 400))

	// guard misses, account exists: balance is short
	q.On("CustomPatch", c, domain.TableLedgerAccounts, guarded(5000), mock.Anything, false).
		Return(query.ErrNotFound).Once()
	q.On("FindOne", c, domain.TableLedgerAccounts, bson.M{"address": addr}, mock.Anything).
		Return(nil).Once()
	req.ErrorIs(im.Debit(c, addr, 5000), domain.ErrInsufficientFunds)

	// guard misses, account does not exist
	q.On("CustomPatch", c, domain.TableLedgerAccounts, guarded(100), mock.Anything, false).
		Return(query.ErrNotFound).Once()
	q.On("FindOne", c, domain.TableLedgerAccounts, bson.M{"address": addr}, mock.Anything).
		Return(query.ErrNotFound).Once()
	req.ErrorIs(im.Debit(c, addr, 100), domain.ErrNotFound)

	q.AssertExpectations(t)
}

func TestCredit(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	q := &mocks.Mongo{}
	im := New(q)

	addr := domain.Address("0xabc")

	incBy := func(amount int64) interface{} {
		return mock.MatchedBy(func(update bson.M) bool {
			inc, ok := update["$inc"].(bson.M)
			return ok && inc["balance"] == amount
		})
	}

	q.On("CustomPatch", c, domain.TableLedgerAccounts, bson.M{"address": addr}, incBy(250), false).
		Return(nil).Once()
	req.NoError(im.Credit(c, addr, 250))

	q.On("CustomPatch", c, domain.TableLedgerAccounts, bson.M{"address": addr}, incBy(99), false).
		Return(query.ErrNotFound).Once()
	req.ErrorIs(im.Credit(c, addr, 99), domain.ErrNotFound)

	q.AssertExpectations(t)
}
