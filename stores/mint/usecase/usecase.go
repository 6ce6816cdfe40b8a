package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/log"
	"github.com/mintfolio/settleapi/base/metrics"
	"github.com/mintfolio/settleapi/base/pricefmt"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/asset"
	"github.com/mintfolio/settleapi/domain/event"
	"github.com/mintfolio/settleapi/domain/ledger"
	"github.com/mintfolio/settleapi/domain/mint"
	"github.com/mintfolio/settleapi/domain/royalty"
	"github.com/mintfolio/settleapi/service/query"
)

type MintUseCaseCfg struct {
	Query     query.Mongo
	Ledger    ledger.UseCase
	Royalty   royalty.UseCase
	AssetRepo asset.Repo
	EventRepo event.Repo
	Platform  mint.PlatformConfig
}

type impl struct {
	query     query.Mongo
	ledger    ledger.UseCase
	royalty   royalty.UseCase
	assetRepo asset.Repo
	eventRepo event.Repo
	platform  mint.PlatformConfig
	met       metrics.Service
}

// New creates mint usecase
func New(cfg *MintUseCaseCfg) mint.UseCase {
	return &impl{
		query:     cfg.Query,
		ledger:    cfg.Ledger,
		royalty:   cfg.Royalty,
		assetRepo: cfg.AssetRepo,
		eventRepo: cfg.EventRepo,
		platform:  cfg.Platform,
		met:       metrics.New("mint"),
	}
}

func (im *impl) Mint(c ctx.Ctx, req *mint.MintRequest) (*mint.MintResult, error) {
	if !req.PlatformAccount.Equals(im.platform.WalletAddress) {
		c.WithFields(log.Fields{
			"supplied": req.PlatformAccount,
		}).Warn("platform account mismatch")
		return nil, domain.ErrPlatformWalletMismatch
	}

	fee, net := royalty.SplitFee(req.SaleAmount, uint32(im.platform.FeeRateBps))
	assetId := domain.AssetId(uuid.New().String())
	now := time.Now().UTC()

	err := im.query.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.ledger.Transfer(c, req.Payer, req.PlatformAccount, fee); err != nil {
			return err
		}
		if err := im.ledger.Transfer(c, req.Payer, req.Creator, net); err != nil {
			return err
		}
		if err := im.assetRepo.Create(c, &asset.Asset{
			Id:          assetId,
			Owner:       req.HoldingAccount,
			Creator:     req.Creator,
			MetadataURI: req.MetadataURI,
			Title:       req.Title,
			Supply:      1,
			MintedAt:    now,
		}); err != nil {
			return err
		}
		return im.eventRepo.Create(c, &event.Event{
			Type:              event.TypeMinted,
			AssetId:           assetId,
			Payer:             req.Payer,
			RecipientAccount:  req.HoldingAccount,
			PlatformIdentity:  req.PlatformAccount,
			SaleAmount:        req.SaleAmount,
			FeeRateBps:        im.platform.FeeRateBps,
			PlatformFee:       fee,
			RemainingAmount:   net,
			MetadataURI:       req.MetadataURI,
			Title:             req.Title,
			SaleAmountDisplay: pricefmt.FormatAmount(req.SaleAmount, im.platform.Decimals),
			CreatedAt:         now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"payer": req.Payer,
			"err":   err,
		}).Warn("mint aborted")
		return nil, err
	}

	im.met.BumpSum("mint.completed", 1)
	return &mint.MintResult{AssetId: assetId, Fee: fee, Net: net}, nil
}

func (im *impl) MintCollaborative(c ctx.Ctx, req *mint.CollaborativeMintRequest) (*mint.CollaborativeMintResult, error) {
	if err := royalty.ValidateShares(req.Shares); err != nil {
		c.WithFields(log.Fields{
			"buyer": req.Buyer,
			"err":   err,
		}).Warn("invalid royalty shares")
		return nil, err
	}
	if !req.PlatformAccount.Equals(im.platform.WalletAddress) {
		c.WithFields(log.Fields{
			"supplied": req.PlatformAccount,
		}).Warn("platform account mismatch")
		return nil, domain.ErrPlatformWalletMismatch
	}

	dist := computeDistribution(req.SaleAmount, im.platform.FeeRateBps, req.Shares)
	assetId := domain.AssetId(uuid.New().String())
	now := time.Now().UTC()

	err := im.query.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.settleDistribution(c, req.Buyer, req.PlatformAccount, req.CreatorAccounts, req.Shares, dist); err != nil {
			return err
		}
		if err := im.assetRepo.Create(c, &asset.Asset{
			Id:          assetId,
			Owner:       req.HoldingAccount,
			Creator:     req.Shares[0].Recipient,
			MetadataURI: req.MetadataURI,
			Title:       req.Title,
			Supply:      1,
			MintedAt:    now,
		}); err != nil {
			return err
		}
		// the fee rate is snapshotted into the schedule so later
		// distributions for this asset keep the rate seen at mint time
		if err := im.royalty.Record(c, &royalty.Schedule{
			AssetId:    assetId,
			Shares:     req.Shares,
			FeeRateBps: im.platform.FeeRateBps,
			CreatedAt:  now,
		}); err != nil {
			return err
		}
		return im.eventRepo.Create(c, &event.Event{
			Type:                  event.TypeCollaborativeMinted,
			AssetId:               assetId,
			Payer:                 req.Buyer,
			RecipientAccount:      req.HoldingAccount,
			PlatformIdentity:      req.PlatformAccount,
			SaleAmount:            req.SaleAmount,
			FeeRateBps:            im.platform.FeeRateBps,
			PlatformFee:           dist.PlatformFee,
			RemainingAmount:       dist.RemainingAmount,
			CreatorCount:          int32(len(req.Shares)),
			CreatorAmounts:        dist.CreatorAmounts,
			MetadataURI:           req.MetadataURI,
			Title:                 req.Title,
			SaleAmountDisplay:     pricefmt.FormatAmount(req.SaleAmount, im.platform.Decimals),
			CreatorAmountsDisplay: pricefmt.FormatAmounts(dist.CreatorAmounts, im.platform.Decimals),
			CreatedAt:             now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"buyer": req.Buyer,
			"err":   err,
		}).Warn("collaborative mint aborted")
		return nil, err
	}

	im.met.BumpSum("mint.collaborative.completed", 1)
	return &mint.CollaborativeMintResult{
		AssetId:         assetId,
		PlatformFee:     dist.PlatformFee,
		RemainingAmount: dist.RemainingAmount,
		CreatorAmounts:  dist.CreatorAmounts,
		CreatorCount:    int32(len(req.Shares)),
	}, nil
}

func (im *impl) Distribute(c ctx.Ctx, req *mint.DistributeRequest) (*mint.Distribution, error) {
	// the stored schedule is authoritative, caller supplied share lists are
	// never accepted for an already minted asset
	schedule, err := im.royalty.FindByAsset(c, req.AssetId)
	if err != nil {
		c.WithFields(log.Fields{
			"assetId": req.AssetId,
			"err":     err,
		}).Warn("royalty schedule lookup failed")
		return nil, err
	}
	if !req.PlatformAccount.Equals(im.platform.WalletAddress) {
		c.WithFields(log.Fields{
			"supplied": req.PlatformAccount,
		}).Warn("platform account mismatch")
		return nil, domain.ErrPlatformWalletMismatch
	}

	dist := computeDistribution(req.SaleAmount, schedule.FeeRateBps, schedule.Shares)
	now := time.Now().UTC()

	err = im.query.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.settleDistribution(c, req.Payer, req.PlatformAccount, req.CreatorAccounts, schedule.Shares, dist); err != nil {
			return err
		}
		return im.eventRepo.Create(c, &event.Event{
			Type:                  event.TypeDistributed,
			AssetId:               req.AssetId,
			Payer:                 req.Payer,
			PlatformIdentity:      req.PlatformAccount,
			SaleAmount:            req.SaleAmount,
			FeeRateBps:            schedule.FeeRateBps,
			PlatformFee:           dist.PlatformFee,
			RemainingAmount:       dist.RemainingAmount,
			CreatorCount:          int32(len(schedule.Shares)),
			CreatorAmounts:        dist.CreatorAmounts,
			SaleAmountDisplay:     pricefmt.FormatAmount(req.SaleAmount, im.platform.Decimals),
			CreatorAmountsDisplay: pricefmt.FormatAmounts(dist.CreatorAmounts, im.platform.Decimals),
			CreatedAt:             now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"assetId": req.AssetId,
			"payer":   req.Payer,
			"err":     err,
		}).Warn("distribution aborted")
		return nil, err
	}

	im.met.BumpSum("distribution.completed", 1)
	return dist, nil
}
