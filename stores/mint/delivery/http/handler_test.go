package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mintfolio/settleapi/base/ctx"
	"github.com/mintfolio/settleapi/domain"
	"github.com/mintfolio/settleapi/domain/mint"
	"github.com/mintfolio/settleapi/domain/mint/mocks"
)

func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	c.Set("address", domain.Address("0x00000000000000000000000000000000000000bb"))
	return c, rec
}

func TestMintHandler(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	uc := &mocks.UseCase{}
	h := &handler{mintUC: uc}

	uc.On("Mint", mock.Anything, mock.MatchedBy(func(r *mint.MintRequest) bool {
		return r.Payer == domain.Address("0x00000000000000000000000000000000000000bb") &&
			r.SaleAmount == 10_000
	})).Return(&mint.MintResult{AssetId: "asset-1", Fee: 1000, Net: 9000}, nil).Once()

	c, rec := newTestContext(e, http.MethodPost, "/mints",
		`{"creator":"0x0000000000000000000000000000000000000001","holdingAccount":"0x00000000000000000000000000000000000000cc","platformAccount":"0x00000000000000000000000000000000000000aa","saleAmount":10000}`)

	req.NoError(h.mint(c))
	req.Equal(http.StatusCreated, rec.Code)
	req.Contains(rec.Body.String(), `"assetId":"asset-1"`)

	uc.AssertExpectations(t)
}

func TestMintCollaborativeHandlerErrorCode(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	uc := &mocks.UseCase{}
	h := &handler{mintUC: uc}

	uc.On("MintCollaborative", mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidSplitPercentage).Once()

	c, rec := newTestContext(e, http.MethodPost, "/mints/collaborative",
		`{"platformAccount":"0x00000000000000000000000000000000000000aa","shares":[{"recipient":"0x0000000000000000000000000000000000000001","percentage":60},{"recipient":"0x0000000000000000000000000000000000000002","percentage":50}],"saleAmount":1000000}`)

	req.NoError(h.mintCollaborative(c))
	req.Equal(http.StatusBadRequest, rec.Code)
	// callers key on the machine readable code
	req.Contains(rec.Body.String(), `"code":"InvalidSplitPercentage"`)

	uc.AssertExpectations(t)
}

func TestDistributeHandler(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	uc := &mocks.UseCase{}
	h := &handler{mintUC: uc}

	uc.On("Distribute", mock.Anything, mock.MatchedBy(func(r *mint.DistributeRequest) bool {
		return r.AssetId == domain.AssetId("asset-1") && r.SaleAmount == 1_000_000
	})).Return(&mint.Distribution{
		PlatformFee:     100_000,
		RemainingAmount: 900_000,
		CreatorAmounts:  []uint64{450_000, 450_000},
	}, nil).Once()

	c, rec := newTestContext(e, http.MethodPost, "/assets/asset-1/distributions",
		`{"platformAccount":"0x00000000000000000000000000000000000000aa","creatorAccounts":["0x0000000000000000000000000000000000000001","0x0000000000000000000000000000000000000002"],"saleAmount":1000000}`)
	c.SetParamNames("assetId")
	c.SetParamValues("asset-1")

	req.NoError(h.distribute(c))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"platformFee":100000`)

	uc.AssertExpectations(t)
}
