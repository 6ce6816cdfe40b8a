package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/delivery"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/event"
)

type handler struct {
	events event.Repo
}

// New will initialize the settlement event endpoints
func New(e *echo.Echo, events event.Repo) {
	h := &handler{
		events: events,
	}
	e.GET("/events", h.listEvents)
	e.GET("/assets/:assetId/events", h.listAssetEvents)
}

func (h *handler) listEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Type   *event.Type `query:"type"`
		Offset int32       `query:"offset"`
		Limit  int32       `query:"limit"`
	}

	p := &params{Limit: 30}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []event.FindAllOptionsFunc{
		event.WithPagination(p.Offset, p.Limit),
	}
	if p.Type != nil {
		opts = append(opts, event.WithType(*p.Type))
	}

	events, err := h.events.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, events)
}

func (h *handler) listAssetEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := domain.AssetId(c.Param("assetId"))

	events, err := h.events.FindAll(ctx, event.WithAssetId(id))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, events)
}
