package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/delivery"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/royalty"
)

type handler struct {
	royalty royalty.UseCase
}

// New will initialize the royalty schedule endpoints
func New(e *echo.Echo, royaltyUC royalty.UseCase) {
	h := &handler{
		royalty: royaltyUC,
	}
	e.GET("/assets/:assetId/royalties", h.getSchedule)
}

func (h *handler) getSchedule(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := domain.AssetId(c.Param("assetId"))
	schedule, err := h.royalty.FindByAsset(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, schedule)
}
