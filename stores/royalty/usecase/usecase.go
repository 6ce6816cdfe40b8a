package usecase

import (
	"time"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/log"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/royalty"
	"github.com/mintfolio/settleapi/service/cache"
	"github.com/mintfolio/settleapi/service/cache/provider/primitive"
)

type impl struct {
	repo          royalty.Repo
	scheduleCache cache.Service
}

// New creates royalty schedule usecase
func New(repo royalty.Repo) royalty.UseCase {
	return &impl{
		repo: repo,
		// schedules are immutable once recorded, so a long ttl is safe
		scheduleCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   "royaltyschedule",
			Cache: primitive.NewPrimitive("royaltyschedule", 64),
		}),
	}
}

func (im *impl) Record(c ctx.Ctx, schedule *royalty.Schedule) error {
	if err := royalty.ValidateShares(schedule.Shares); err != nil {
		c.WithFields(log.Fields{
			"assetId": schedule.AssetId,
			"err":     err,
		}).Warn("invalid royalty shares")
		return err
	}
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = time.Now().UTC()
	}
	if err := im.repo.Create(c, schedule); err != nil {
		c.WithFields(log.Fields{
			"assetId": schedule.AssetId,
			"err":     err,
		}).Error("repo.Create failed")
		return err
	}
	return nil
}

func (im *impl) FindByAsset(c ctx.Ctx, id domain.AssetId) (*royalty.Schedule, error) {
	res := &royalty.Schedule{}
	if err := im.scheduleCache.GetByFunc(c, string(id), res, func() (interface{}, error) {
		return im.repo.FindByAsset(c, id)
	}); err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"assetId": id,
				"err":     err,
			}).Error("scheduleCache.GetByFunc failed")
		}
		return nil, err
	}
	return res, nil
}
