package mint

import (
	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/royalty"
)

// PlatformConfig is the process wide settlement configuration, injected at
// construction and read only per request.
type PlatformConfig struct {
	// WalletAddress is the single trusted recipient of the platform cut.
	// Caller supplied platform accounts are compared against it; mismatch
	// is a validation failure, never a silent redirect.
	WalletAddress domain.Address
	// FeeRateBps is the platform cut in basis points.
	FeeRateBps int32
	// Decimals positions the display point for event payload amounts.
	Decimals int32
}

// Distribution is the computed outcome of one revenue distribution.
// RemainingAmount is sale minus platform fee; the creator amounts floor per
// share, so their sum may fall short of RemainingAmount by up to count-1
// base units.
type Distribution struct {
	PlatformFee     uint64   `json:"platformFee"`
	RemainingAmount uint64   `json:"remainingAmount"`
	CreatorAmounts  []uint64 `json:"creatorAmounts"`
}

type MintRequest struct {
	Payer           domain.Address
	Creator         domain.Address
	HoldingAccount  domain.Address
	PlatformAccount domain.Address
	MetadataURI     string
	Title           string
	SaleAmount      uint64
}

type MintResult struct {
	AssetId domain.AssetId `json:"assetId"`
	Fee     uint64         `json:"fee"`
	Net     uint64         `json:"net"`
}

type CollaborativeMintRequest struct {
	Buyer           domain.Address
	HoldingAccount  domain.Address
	PlatformAccount domain.Address
	Shares          []royalty.Share
	// CreatorAccounts are matched positionally against Shares; a missing or
	// mismatched entry aborts before that share's transfer.
	CreatorAccounts []domain.Address
	MetadataURI     string
	Title           string
	SaleAmount      uint64
}

type CollaborativeMintResult struct {
	AssetId         domain.AssetId `json:"assetId"`
	PlatformFee     uint64         `json:"platformFee"`
	RemainingAmount uint64         `json:"remainingAmount"`
	CreatorAmounts  []uint64       `json:"creatorAmounts"`
	CreatorCount    int32          `json:"creatorCount"`
}

// DistributeRequest settles a secondary sale against the schedule stored at
// mint time. Caller supplied share lists are never accepted here.
type DistributeRequest struct {
	AssetId         domain.AssetId
	Payer           domain.Address
	PlatformAccount domain.Address
	CreatorAccounts []domain.Address
	SaleAmount      uint64
}

type UseCase interface {
	Mint(c ctx.Ctx, req *MintRequest) (*MintResult, error)
	MintCollaborative(c ctx.Ctx, req *CollaborativeMintRequest) (*CollaborativeMintResult, error)
	Distribute(c ctx.Ctx, req *DistributeRequest) (*Distribution, error)
}
