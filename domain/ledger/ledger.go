package ledger

import (
	"time"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
)

// Account is one wallet's balance document on the settlement ledger, in the
// smallest native currency unit.
type Account struct {
	Address   domain.Address `json:"address" bson:"address"`
	Balance   uint64         `json:"balance" bson:"balance"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	// Create opens an account with the given starting balance. Returns
	// domain.ErrConflict if the address already has one.
	Create(ctx.Ctx, *Account) error
	Get(c ctx.Ctx, address domain.Address) (*Account, error)
	// Credit adds amount to an existing account. Returns domain.ErrNotFound
	// if the destination account does not exist.
	Credit(c ctx.Ctx, address domain.Address, amount uint64) error
	// Debit subtracts amount from an account holding at least that much.
	// Returns domain.ErrInsufficientFunds when the balance is short and
	// domain.ErrNotFound when the account does not exist.
	Debit(c ctx.Ctx, address domain.Address, amount uint64) error
}

type UseCase interface {
	Create(ctx.Ctx, *Account) error
	Get(c ctx.Ctx, address domain.Address) (*Account, error)
	// Transfer moves amount from one account to another. Callers settle a
	// whole request inside one ledger transaction, so a failed transfer
	// leaves no observable balance change.
	Transfer(c ctx.Ctx, from, to domain.Address, amount uint64) error
}
