package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/log"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/royalty"
	"github.com/mintfolio/settleapi/service/query"
)

type impl struct {
	query query.Mongo
}

// New creates new royalty schedule repo
func New(query query.Mongo) royalty.Repo {
	return &impl{
		query: query,
	}
}

func (im *impl) Create(c ctx.Ctx, schedule *royalty.Schedule) error {
	for i, share := range schedule.Shares {
		schedule.Shares[i].Recipient = share.Recipient.ToLower()
	}
	if err := im.query.Insert(c, domain.TableRoyaltySchedules, schedule); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"assetId": schedule.AssetId,
			"err":     err,
		}).Error("insert royalty schedule failed")
		return err
	}
	return nil
}

func (im *impl) FindByAsset(c ctx.Ctx, id domain.AssetId) (*royalty.Schedule, error) {
	schedule := &royalty.Schedule{}
	if err := im.query.FindOne(c, domain.TableRoyaltySchedules, bson.M{"assetId": id}, schedule); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"assetId": id,
			"err":     err,
		}).Error("find royalty schedule failed")
		return nil, err
	}
	return schedule, nil
}
