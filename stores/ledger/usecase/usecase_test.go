package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/ledger/mocks"
)

func TestTransfer(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := &mocks.Repo{}
	im := New(repo)

	from := domain.Address("0xaaa")
	to := domain.Address("0xbbb")

	repo.On("Debit", c, from, uint64(100)).Return(nil).Once()
	repo.On("Credit", c, to, uint64(100)).Return(nil).Once()
	req.NoError(im.Transfer(c, from, to, 100))

	repo.AssertExpectations(t)
}

func TestTransferDebitFailureSkipsCredit(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := &mocks.Repo{}
	im := New(repo)

	from := domain.Address("0xaaa")
	to := domain.Address("0xbbb")

	repo.On("Debit", c, from, uint64(100)).Return(domain.ErrInsufficientFunds).Once()
	req.ErrorIs(im.Transfer(c, from, to, 100), domain.ErrInsufficientFunds)
	repo.AssertNotCalled(t, "Credit", c, to, uint64(100))

	repo.AssertExpectations(t)
}

func TestTransferZeroAmountIsNoop(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := &mocks.Repo{}
	im := New(repo)

	req.NoError(im.Transfer(c, domain.Address("0xaaa"), domain.Address("0xbbb"), 0))
	repo.AssertNotCalled(t, "Debit")
	repo.AssertNotCalled(t, "Credit")
}
