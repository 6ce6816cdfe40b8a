package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/base/delivery"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/mint"
	"github.com/mintfolio/settleapi/domain/royalty"
	authMiddleware "github.com/mintfolio/settleapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	mintUC mint.UseCase
}

// New will initialize the mint and distribution endpoints
func New(e *echo.Echo, mintUC mint.UseCase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{
		mintUC: mintUC,
	}
	g := e.Group("/mints")
	g.POST("", h.mint, auth.Auth())
	g.POST("/collaborative", h.mintCollaborative, auth.Auth())

	e.POST("/assets/:assetId/distributions", h.distribute, auth.Auth())
}

// settlement errors carry a code and are caller-fixable, everything else is
// on us
func errStatus(err error) int {
	if _, ok := domain.ErrorCode(err); ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	payer := c.Get("address").(domain.Address)

	type params struct {
		Creator         domain.Address `json:"creator"`
		HoldingAccount  domain.Address `json:"holdingAccount"`
		PlatformAccount domain.Address `json:"platformAccount"`
		MetadataURI     string         `json:"metadataUri"`
		Title           string         `json:"title"`
		SaleAmount      uint64         `json:"saleAmount"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.mintUC.Mint(ctx, &mint.MintRequest{
		Payer:           payer,
		Creator:         p.Creator,
		HoldingAccount:  p.HoldingAccount,
		PlatformAccount: p.PlatformAccount,
		MetadataURI:     p.MetadataURI,
		Title:           p.Title,
		SaleAmount:      p.SaleAmount,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) mintCollaborative(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	buyer := c.Get("address").(domain.Address)

	type params struct {
		HoldingAccount  domain.Address   `json:"holdingAccount"`
		PlatformAccount domain.Address   `json:"platformAccount"`
		Shares          []royalty.Share  `json:"shares"`
		CreatorAccounts []domain.Address `json:"creatorAccounts"`
		MetadataURI     string           `json:"metadataUri"`
		Title           string           `json:"title"`
		SaleAmount      uint64           `json:"saleAmount"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.mintUC.MintCollaborative(ctx, &mint.CollaborativeMintRequest{
		Buyer:           buyer,
		HoldingAccount:  p.HoldingAccount,
		PlatformAccount: p.PlatformAccount,
		Shares:          p.Shares,
		CreatorAccounts: p.CreatorAccounts,
		MetadataURI:     p.MetadataURI,
		Title:           p.Title,
		SaleAmount:      p.SaleAmount,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) distribute(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	payer := c.Get("address").(domain.Address)

	type params struct {
		PlatformAccount domain.Address   `json:"platformAccount"`
		CreatorAccounts []domain.Address `json:"creatorAccounts"`
		SaleAmount      uint64           `json:"saleAmount"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.mintUC.Distribute(ctx, &mint.DistributeRequest{
		AssetId:         domain.AssetId(c.Param("assetId")),
		Payer:           payer,
		PlatformAccount: p.PlatformAccount,
		CreatorAccounts: p.CreatorAccounts,
		SaleAmount:      p.SaleAmount,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
