package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/ledger"
	mLedger "github.com/mintfolio/settleapi/domain/ledger/mocks"
	"github.com/mintfolio/settleapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	mockLedgerUC := &mLedger.UseCase{}

	mockLedgerUC.On("Get", mock.Anything, domain.Address("my-address")).Return(&ledger.Account{Address: "my-address"}, nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockLedgerUC)
	tkn, err := u.SignToken(ctx, "my-address")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "my-address", ads)
}

func TestParseTokenMalformed(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", &mLedger.UseCase{})

	// not a three segment jwt at all
	ads, err := u.ParseToken(ctx, "not-a-jwt")
	assert.Error(t, err)
	assert.Empty(t, ads)

	ads, err = u.ParseToken(ctx, "")
	assert.Error(t, err)
	assert.Empty(t, ads)
}

func TestParseTokenWrongSecret(t *testing.T) {
	mockLedgerUC := &mLedger.UseCase{}
	mockLedgerUC.On("Get", mock.Anything, domain.Address("my-address")).Return(&ledger.Account{Address: "my-address"}, nil)

	ctx := ctx.Background()
	tkn, err := usecase.New("jwt-secret", mockLedgerUC).SignToken(ctx, "my-address")
	assert.NoError(t, err)

	ads, err := usecase.New("other-secret", mockLedgerUC).ParseToken(ctx, tkn)
	assert.Error(t, err)
	assert.Empty(t, ads)
}

func TestSignTokenOpensMissingAccount(t *testing.T) {
	mockLedgerUC := &mLedger.UseCase{}

	mockLedgerUC.On("Get", mock.Anything, domain.Address("new-address")).Return(nil, domain.ErrNotFound)
	mockLedgerUC.On("Create", mock.Anything, mock.MatchedBy(func(a *ledger.Account) bool {
		return a.Address == "new-address" && a.Balance == 0
	})).Return(nil).Once()

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockLedgerUC)
	tkn, err := u.SignToken(ctx, "new-address")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	mockLedgerUC.AssertExpectations(t)
}
