package royalty

import (
	"time"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
)

const (
	// MaxShares bounds the schedule so the settlement transfer sequence
	// stays small and auditable.
	MaxShares = 10

	// TotalPercentage is the exact sum every valid schedule must allocate.
	TotalPercentage = 100
)

// Share is one creator's slice of an asset's proceeds. Immutable once the
// schedule it belongs to has been recorded.
type Share struct {
	Recipient  domain.Address `json:"recipient" bson:"recipient"`
	Percentage int32          `json:"percentage" bson:"percentage"`
}

// Schedule is the validated, persisted royalty split for one asset. The fee
// rate is snapshotted at mint time so later distributions are unaffected by
// platform reconfiguration.
type Schedule struct {
	AssetId    domain.AssetId `json:"assetId" bson:"assetId"`
	Shares     []Share        `json:"shares" bson:"shares"`
	FeeRateBps int32          `json:"feeRateBps" bson:"feeRateBps"`
	CreatedAt  time.Time      `json:"createdAt" bson:"createdAt"`
}

// ValidateShares checks the structural and arithmetic invariants of a share
// list. It is pure: the input is never mutated and one of the five outcomes
// is always returned.
func ValidateShares(shares []Share) error {
	if len(shares) == 0 {
		return domain.ErrNoCreators
	}
	if len(shares) > MaxShares {
		return domain.ErrTooManyCreators
	}
	total := int32(0)
	for _, s := range shares {
		// each creator must hold a nonzero, non-total stake
		if s.Percentage <= 0 || s.Percentage >= TotalPercentage {
			return domain.ErrInvalidCreatorPercentage
		}
		total += s.Percentage
	}
	if total != TotalPercentage {
		return domain.ErrInvalidSplitPercentage
	}
	return nil
}

type Repo interface {
	// Create records the schedule for its asset. Returns domain.ErrConflict
	// if the asset already has one.
	Create(ctx.Ctx, *Schedule) error
	FindByAsset(ctx.Ctx, domain.AssetId) (*Schedule, error)
}

type UseCase interface {
	Record(ctx.Ctx, *Schedule) error
	FindByAsset(ctx.Ctx, domain.AssetId) (*Schedule, error)
}
