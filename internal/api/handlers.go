package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/digiko-labs/cardforge/internal/assets"
	"github.com/digiko-labs/cardforge/internal/card"
	"github.com/digiko-labs/cardforge/internal/registry"
	"github.com/digiko-labs/cardforge/internal/share"
)

// API holds the handler dependencies.
type API struct {
	Fonts    *card.FontSet
	Loader   *assets.Loader
	Registry *registry.Registry
	Log      zerolog.Logger
}

func (a *API) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *API) sizes(c *gin.Context) {
	c.JSON(http.StatusOK, card.Sizes)
}

func (a *API) tokens(c *gin.Context) {
	out := a.Registry.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"count": len(out), "tokens": out})
}

func (a *API) qr(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "https://" + card.BrandSite
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := share.QRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// renderRequest is the POST /api/card body: the template data plus
// output-only options. Scale never touches the drawing math, it only
// resizes the finished raster for display.
type renderRequest struct {
	card.TemplateData
	Scale    float64 `json:"scale,omitempty"`
	Format   string  `json:"format,omitempty"` // png (default) | data-url
	Download string  `json:"download,omitempty"`
}

func (a *API) renderCard(c *gin.Context) {
	var req renderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data := req.TemplateData
	data.Tokens = a.Registry.Enrich(data.Tokens)

	// resolve every referenced logo before the synchronous draw pass;
	// the request context abandons the batch if the client goes away
	images := a.Loader.FetchAll(c.Request.Context(), data.LogoRefs())

	img := card.NewRenderer(a.Fonts, images).Render(data)

	if req.Scale > 0 && req.Scale != 1 {
		b := img.Bounds()
		img = imaging.Resize(img,
			int(float64(b.Dx())*req.Scale),
			int(float64(b.Dy())*req.Scale),
			imaging.Lanczos)
	}

	if req.Format == "data-url" {
		url, err := card.DataURL(img)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data_url": url})
		return
	}

	b, err := card.EncodePNG(img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if req.Download != "" {
		name := req.Download
		if name == "auto" {
			name = card.Filename(data)
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
	c.Data(http.StatusOK, "image/png", b)
}
