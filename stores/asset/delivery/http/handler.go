package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/delivery"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/asset"
)

type handler struct {
	asset asset.UseCase
}

// New will initialize the asset endpoints
func New(e *echo.Echo, assetUC asset.UseCase) {
	h := &handler{
		asset: assetUC,
	}
	g := e.Group("/assets")
	g.GET("", h.listAssets)
	g.GET("/:assetId", h.getAsset)
}

func (h *handler) getAsset(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := domain.AssetId(c.Param("assetId"))
	a, err := h.asset.FindById(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

func (h *handler) listAssets(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner   *domain.Address `query:"owner"`
		Creator *domain.Address `query:"creator"`
		Offset  int32           `query:"offset"`
		Limit   int32           `query:"limit"`
	}

	p := &params{Limit: 30}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []asset.FindAllOptionsFunc{
		asset.WithPagination(p.Offset, p.Limit),
	}
	if p.Owner != nil {
		opts = append(opts, asset.WithOwner(*p.Owner))
	}
	if p.Creator != nil {
		opts = append(opts, asset.WithCreator(*p.Creator))
	}

	assets, err := h.asset.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, assets)
}
