package event

import (
	"time"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
)

type Type string

const (
	// TypeMinted is emitted for the single creator mint path
	TypeMinted Type = "minted"
	// TypeCollaborativeMinted is emitted for multi creator mints
	TypeCollaborativeMinted Type = "collaborative_minted"
	// TypeDistributed is emitted for secondary sale royalty distributions
	TypeDistributed Type = "distributed"
)

// Event is a completion record written in the same ledger transaction as the
// settlement it describes. Off-ledger indexers read these; nothing in this
// service consumes them.
type Event struct {
	Type             Type           `json:"type" bson:"type"`
	AssetId          domain.AssetId `json:"assetId" bson:"assetId"`
	Payer            domain.Address `json:"payer" bson:"payer"`
	RecipientAccount domain.Address `json:"recipientAccount" bson:"recipientAccount"`
	PlatformIdentity domain.Address `json:"platformIdentity" bson:"platformIdentity"`
	SaleAmount       uint64         `json:"saleAmount" bson:"saleAmount"`
	FeeRateBps       int32          `json:"feeRateBps" bson:"feeRateBps"`
	PlatformFee      uint64         `json:"platformFee" bson:"platformFee"`
	RemainingAmount  uint64         `json:"remainingAmount" bson:"remainingAmount"`
	CreatorCount     int32          `json:"creatorCount,omitempty" bson:"creatorCount,omitempty"`
	CreatorAmounts   []uint64       `json:"creatorAmounts,omitempty" bson:"creatorAmounts,omitempty"`
	MetadataURI      string         `json:"metadataUri,omitempty" bson:"metadataUri,omitempty"`
	Title            string         `json:"title,omitempty" bson:"title,omitempty"`

	// display fields are denormalized for indexers, in display units
	SaleAmountDisplay     string   `json:"saleAmountDisplay,omitempty" bson:"saleAmountDisplay,omitempty"`
	CreatorAmountsDisplay []string `json:"creatorAmountsDisplay,omitempty" bson:"creatorAmountsDisplay,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type FindAllOptions struct {
	AssetId *domain.AssetId `bson:"-"`
	Type    *Type           `bson:"-"`
	Offset  *int32          `bson:"-"`
	Limit   *int32          `bson:"-"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithAssetId(id domain.AssetId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.AssetId = &id
		return nil
	}
}

func WithType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type Repo interface {
	Create(ctx.Ctx, *Event) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Event, error)
}
