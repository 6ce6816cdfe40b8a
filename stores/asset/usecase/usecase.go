package usecase

import (
	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/log"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/asset"
)

type impl struct {
	repo asset.Repo
}

// New creates asset usecase
func New(repo asset.Repo) asset.UseCase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) FindById(c ctx.Ctx, id domain.AssetId) (*asset.Asset, error) {
	a, err := im.repo.FindById(c, id)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"assetId": id,
				"err":     err,
			}).Error("repo.FindById failed")
		}
		return nil, err
	}
	return a, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...asset.FindAllOptionsFunc) ([]asset.Asset, error) {
	assets, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return assets, nil
}
