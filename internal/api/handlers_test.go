package api

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiko-labs/cardforge/internal/assets"
	"github.com/digiko-labs/cardforge/internal/card"
	"github.com/digiko-labs/cardforge/internal/registry"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fonts, err := card.LoadFonts()
	require.NoError(t, err)

	a := &API{
		Fonts:    fonts,
		Loader:   assets.NewLoader(assets.NewCache(), "", zerolog.Nop()),
		Registry: registry.New(),
		Log:      zerolog.Nop(),
	}
	r := gin.New()
	a.RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSizesListsPresets(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sizes", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var sizes map[string]card.SizeSpec
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sizes))
	assert.Equal(t, card.SizeSpec{Width: 1200, Height: 630}, sizes["landscape"])
}

func TestRenderCardReturnsPNGAtPresetSize(t *testing.T) {
	r := newTestRouter(t)

	body := `{
		"template": "new-pair",
		"tokens": [{"symbol": "DGKO"}, {"symbol": "KLV"}],
		"size": "landscape"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/card", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	cfg, err := png.DecodeConfig(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 630, cfg.Height)
}

func TestRenderCardScaleOnlyResizesOutput(t *testing.T) {
	r := newTestRouter(t)

	body := `{"template": "milestone", "size": "square", "scale": 0.5}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/card", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cfg, err := png.DecodeConfig(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 540, cfg.Width)
	assert.Equal(t, 540, cfg.Height)
}

func TestRenderCardDataURLFormat(t *testing.T) {
	r := newTestRouter(t)

	body := `{"template": "listing", "tokens": [{"symbol": "ABC"}], "size": "wide", "format": "data-url"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/card", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		DataURL string `json:"data_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.DataURL, "data:image/png;base64,"))
}

func TestRenderCardDownloadHeader(t *testing.T) {
	r := newTestRouter(t)

	body := `{"template": "milestone", "size": "square", "download": "auto"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/card", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "digiko-milestone-square.png")
}

func TestRenderCardRejectsBadJSON(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/card", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQRReturnsPNG(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/qr?text=https://digiko.exchange/trade/DGKO-KLV&size=256", nil))
	require.Equal(t, http.StatusOK, w.Code)

	cfg, err := png.DecodeConfig(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Width)
}
