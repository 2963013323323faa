package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
)

func newCtx(method, target, form string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if form != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(form))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStatusFor(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("op: %w", err) }
	require.Equal(t, http.StatusOK, StatusFor(nil))
	require.Equal(t, http.StatusBadRequest, StatusFor(wrap(service.ErrInvalidArgument)))
	require.Equal(t, http.StatusUnauthorized, StatusFor(wrap(service.ErrUnauthenticated)))
	require.Equal(t, http.StatusUnauthorized, StatusFor(service.ErrInvalidCredentials))
	require.Equal(t, http.StatusForbidden, StatusFor(service.ErrForbidden))
	require.Equal(t, http.StatusNotFound, StatusFor(wrap(service.ErrNotFound)))
	require.Equal(t, http.StatusConflict, StatusFor(wrap(service.ErrConflict)))
	require.Equal(t, http.StatusInternalServerError, StatusFor(service.ErrMessageNotExist))
	require.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("db down")))
}

func TestFail(t *testing.T) {
	c, rec := newCtx(http.MethodGet, "/", "")
	require.NoError(t, Fail(c, errors.New("secret dsn leaked")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "internal server error")
	require.NotContains(t, rec.Body.String(), "dsn")

	c, rec = newCtx(http.MethodGet, "/", "")
	require.NoError(t, Fail(c, service.ErrMessageNotExist))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "message does not exist")

	c, rec = newCtx(http.MethodGet, "/", "")
	require.NoError(t, Fail(c, fmt.Errorf("%w: title is required", service.ErrInvalidArgument)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "title is required")

	c, rec = newCtx(http.MethodPost, "/", "")
	require.NoError(t, FailBool(c, service.ErrNotFound))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "false\n", rec.Body.String())
}

func TestParsePage(t *testing.T) {
	for raw, want := range map[string]int{"": 1, "1": 1, "7": 7, "2147483647": 2147483647} {
		c, _ := newCtx(http.MethodGet, "/?page="+raw, "")
		got, err := ParsePage(c)
		require.NoError(t, err, raw)
		require.Equal(t, want, got)
	}
	for _, raw := range []string{"0", "-1", "1.5", "abc", "2147483648", "99999999999999999999"} {
		c, _ := newCtx(http.MethodGet, "/?page="+raw, "")
		_, err := ParsePage(c)
		require.ErrorIs(t, err, service.ErrInvalidArgument, raw)
	}

	c, _ := newCtx(http.MethodGet, "/?page=3", "")
	p, err := PageRequest(c, 5)
	require.NoError(t, err)
	require.Equal(t, model.PageRequest{Page: 2, Size: 5}, p)
	require.Equal(t, 10, p.Offset())

	c, _ = newCtx(http.MethodGet, "/?page=0", "")
	_, err = PageRequest(c, 5)
	require.Error(t, err)
}

func TestParseID(t *testing.T) {
	c, _ := newCtx(http.MethodGet, "/news?newsID=12", "")
	id, err := ParseID(c, "newsID")
	require.NoError(t, err)
	require.Equal(t, 12, id)

	c, _ = newCtx(http.MethodPost, "/delNews.do", "newsID=3")
	id, err = ParseID(c, "newsID")
	require.NoError(t, err)
	require.Equal(t, 3, id)

	for _, raw := range []string{"", "0", "-1", "1.5", "x", "4294967296"} {
		c, _ := newCtx(http.MethodGet, "/news?newsID="+raw, "")
		_, err := ParseID(c, "newsID")
		require.ErrorIs(t, err, service.ErrInvalidArgument, raw)
	}
}

func TestParsePriceAndHours(t *testing.T) {
	p, err := ParsePrice(" 0 ")
	require.NoError(t, err)
	require.Zero(t, p)
	p, err = ParsePrice("2147483647")
	require.NoError(t, err)
	require.Equal(t, 2147483647, p)
	for _, raw := range []string{"-1", "2147483648", "100000000000000000000000", "1.5", ""} {
		_, err := ParsePrice(raw)
		require.ErrorIs(t, err, service.ErrInvalidArgument, raw)
	}

	h, err := ParseHours("24")
	require.NoError(t, err)
	require.Equal(t, 24, h)
	for _, raw := range []string{"0", "25", "x"} {
		_, err := ParseHours(raw)
		require.ErrorIs(t, err, service.ErrInvalidArgument, raw)
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse(&model.Page[model.News]{TotalElements: 11, Size: 5})
	require.NotNil(t, resp.Content)
	require.Equal(t, 3, resp.TotalPages)
}

func TestValidatorHHMM(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Validate(&VenueRequest{
		VenueName: "a", Address: "b", Description: "c", OpenTime: "08:00", CloseTime: "20:30",
	}))
	require.Error(t, v.Validate(&VenueRequest{
		VenueName: "a", Address: "b", Description: "c", OpenTime: "8 am", CloseTime: "20:30",
	}))
	require.Error(t, v.Validate(&OrderRequest{VenueName: "a", Date: "2025/01/01", StartTime: "09:00"}))
	require.NoError(t, v.Validate(&OrderRequest{VenueName: "a", Date: "2025-01-01", StartTime: "09:00"}))
}

func TestBind(t *testing.T) {
	c, _ := newCtx(http.MethodPost, "/addNews.do", "title=T&content=C")
	var req NewsRequest
	require.NoError(t, Bind(c, &req))
	require.Equal(t, NewsRequest{Title: "T", Content: "C"}, req)

	c, _ = newCtx(http.MethodPost, "/addNews.do", "title=T")
	req = NewsRequest{}
	require.ErrorIs(t, Bind(c, &req), service.ErrInvalidArgument)

	c, _ = newCtx(http.MethodPost, "/addNews.do", "%")
	require.ErrorIs(t, Bind(c, &NewsRequest{}), service.ErrInvalidArgument)
}
