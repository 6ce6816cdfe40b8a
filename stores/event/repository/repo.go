package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/log"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/event"
	"github.com/mintfolio/settleapi/service/query"
)

type impl struct {
	query query.Mongo
}

// New creates new settlement event repo
func New(query query.Mongo) event.Repo {
	return &impl{
		query: query,
	}
}

func (im *impl) Create(c ctx.Ctx, e *event.Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if err := im.query.Insert(c, domain.TableMintEvents, e); err != nil {
		c.WithFields(log.Fields{
			"assetId": e.AssetId,
			"type":    e.Type,
			"err":     err,
		}).Error("insert settlement event failed")
		return err
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...event.FindAllOptionsFunc) ([]event.Event, error) {
	opts, err := event.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	selector := bson.M{}
	if opts.AssetId != nil {
		selector["assetId"] = *opts.AssetId
	}
	if opts.Type != nil {
		selector["type"] = *opts.Type
	}

	offset := 0
	limit := 0
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	events := []event.Event{}
	if err := im.query.Search(c, domain.TableMintEvents, offset, limit, "-createdAt", selector, &events); err != nil {
		c.WithField("err", err).Error("search settlement events failed")
		return nil, err
	}
	return events, nil
}
