package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/delivery"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/ledger"
	"github.com/mintfolio/settleapi/middleware"
	authMiddleware "github.com/mintfolio/settleapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	ledger ledger.UseCase
}

// New will initialize the ledger account endpoints
func New(e *echo.Echo, ledgerUC ledger.UseCase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{
		ledger: ledgerUC,
	}
	g := e.Group("/accounts")
	g.GET("/:address", h.getAccount, middleware.IsValidAddress("address"))
	g.POST("", h.createAccount, auth.Auth())
}

func (h *handler) getAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))
	account, err := h.ledger.Get(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, account)
}

func (h *handler) createAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		Balance uint64 `json:"balance"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	account := &ledger.Account{
		Address: address,
		Balance: p.Balance,
	}
	if err := h.ledger.Create(ctx, account); err == domain.ErrConflict {
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, account)
}
