package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestCORSAllowsAnyOrigin(t *testing.T) {
	e := echo.New()
	m := InitMiddleware()
	h := m.CORS(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestIsValidAddressRejectsGarbageParam(t *testing.T) {
	e := echo.New()
	nextCalled := false
	h := IsValidAddress("address")(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("address")
	c.SetParamValues("not-an-address")

	require.NoError(t, h(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, nextCalled)
}
