package asset

import (
	"time"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
)

// Asset is the minted collectible record. Exactly one unit is issued to the
// owner's holding account at mint time.
type Asset struct {
	Id          domain.AssetId `json:"assetId" bson:"assetId"`
	Owner       domain.Address `json:"owner" bson:"owner"`
	Creator     domain.Address `json:"creator" bson:"creator"`
	MetadataURI string         `json:"metadataUri" bson:"metadataUri"`
	Title       string         `json:"title" bson:"title"`
	Supply      int32          `json:"supply" bson:"supply"`
	MintedAt    time.Time      `json:"mintedAt" bson:"mintedAt"`
}

type FindAllOptions struct {
	Owner   *domain.Address `bson:"-"`
	Creator *domain.Address `bson:"-"`
	Offset  *int32          `bson:"-"`
	Limit   *int32          `bson:"-"`
	SortBy  *string         `bson:"-"`
	SortDir *domain.SortDir `bson:"-"`
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

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = &owner
		return nil
	}
}

func WithCreator(creator domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Creator = &creator
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

func WithSort(sortby string, sortdir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortby
		options.SortDir = &sortdir
		return nil
	}
}

type Repo interface {
	// Create issues the asset record. Returns domain.ErrConflict if the
	// asset id is already taken.
	Create(ctx.Ctx, *Asset) error
	FindById(c ctx.Ctx, id domain.AssetId) (*Asset, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Asset, error)
}

type UseCase interface {
	FindById(c ctx.Ctx, id domain.AssetId) (*Asset, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Asset, error)
}
