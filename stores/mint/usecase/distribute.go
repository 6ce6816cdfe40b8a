package usecase

import (
	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/log"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/mint"
	"github.com/mintfolio/settleapi/domain/royalty"
)

// computeDistribution takes the platform cut off the sale amount, then floors
// each creator's slice of the remainder. Per-share flooring can leave up to
// count-1 base units of the remainder unassigned; that residual stays with
// the payer.
func computeDistribution(saleAmount uint64, feeRateBps int32, shares []royalty.Share) *mint.Distribution {
	fee, remaining := royalty.SplitFee(saleAmount, uint32(feeRateBps))
	amounts := make([]uint64, len(shares))
	for i, share := range shares {
		amounts[i] = royalty.ShareAmount(remaining, share.Percentage)
	}
	return &mint.Distribution{
		PlatformFee:     fee,
		RemainingAmount: remaining,
		CreatorAmounts:  amounts,
	}
}

// settleDistribution issues the transfer sequence for a computed
// distribution: platform fee first, then creator shares in schedule order.
// Each creator account is matched positionally against its schedule entry
// before that share's transfer. Callers run this inside one ledger
// transaction, so any failure leaves no observable balance change.
func (im *impl) settleDistribution(
	c ctx.Ctx,
	payer domain.Address,
	platformAccount domain.Address,
	creatorAccounts []domain.Address,
	shares []royalty.Share,
	dist *mint.Distribution,
) error {
	if err := im.ledger.Transfer(c, payer, platformAccount, dist.PlatformFee); err != nil {
		c.WithFields(log.Fields{
			"payer":  payer,
			"amount": dist.PlatformFee,
			"err":    err,
		}).Warn("platform fee transfer failed")
		return err
	}
	for i, share := range shares {
		if i >= len(creatorAccounts) {
			c.WithFields(log.Fields{
				"position":  i,
				"recipient": share.Recipient,
			}).Warn("no account supplied for schedule position")
			return domain.ErrMissingCreatorAccount
		}
		if !creatorAccounts[i].Equals(share.Recipient) {
			c.WithFields(log.Fields{
				"position":  i,
				"recipient": share.Recipient,
				"supplied":  creatorAccounts[i],
			}).Warn("supplied account does not match schedule position")
			return domain.ErrCreatorAccountMismatch
		}
		if err := im.ledger.Transfer(c, payer, creatorAccounts[i], dist.CreatorAmounts[i]); err != nil {
			c.WithFields(log.Fields{
				"payer":    payer,
				"position": i,
				"amount":   dist.CreatorAmounts[i],
				"err":      err,
			}).Warn("creator share transfer failed")
			return err
		}
	}
	return nil
}
