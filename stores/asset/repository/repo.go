package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/log"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/asset"
	"github.com/mintfolio/settleapi/service/query"
)

type impl struct {
	query query.Mongo
}

// New creates new asset repo
func New(query query.Mongo) asset.Repo {
	return &impl{
		query: query,
	}
}

func (im *impl) Create(c ctx.Ctx, a *asset.Asset) error {
	a.Owner = a.Owner.ToLower()
	a.Creator = a.Creator.ToLower()
	if err := im.query.Insert(c, domain.TableAssets, a); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"assetId": a.Id,
			"err":     err,
		}).Error("insert asset failed")
		return err
	}
	return nil
}

func (im *impl) FindById(c ctx.Ctx, id domain.AssetId) (*asset.Asset, error) {
	a := &asset.Asset{}
	if err := im.query.FindOne(c, domain.TableAssets, bson.M{"assetId": id}, a); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"assetId": id,
			"err":     err,
		}).Error("find asset failed")
		return nil, err
	}
	return a, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...asset.FindAllOptionsFunc) ([]asset.Asset, error) {
	opts, err := asset.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	selector := bson.M{}
	if opts.Owner != nil {
		selector["owner"] = opts.Owner.ToLower()
	}
	if opts.Creator != nil {
		selector["creator"] = opts.Creator.ToLower()
	}

	offset := 0
	limit := 0
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	sort := "-mintedAt"
	if opts.SortBy != nil {
		sort = *opts.SortBy
		if opts.SortDir != nil && *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	assets := []asset.Asset{}
	if err := im.query.Search(c, domain.TableAssets, offset, limit, sort, selector, &assets); err != nil {
		c.WithField("err", err).Error("search assets failed")
		return nil, err
	}
	return assets, nil
}
