package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/digiko-labs/cardforge/internal/api"
	"github.com/digiko-labs/cardforge/internal/assets"
	"github.com/digiko-labs/cardforge/internal/card"
	"github.com/digiko-labs/cardforge/internal/registry"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	fonts, err := card.LoadFonts()
	if err != nil {
		log.Fatal().Err(err).Msg("load fonts")
	}

	assetDir := envOr("ASSET_DIR", "assets")
	loader := assets.NewLoader(assets.NewCache(), assetDir, log)

	reg := registry.New()
	tokensCSV := envOr("TOKENS_CSV", "data/tokens.csv")
	if err := reg.LoadCSV(tokensCSV); err != nil {
		// the registry only enriches requests, the service runs without it
		log.Warn().Err(err).Str("path", tokensCSV).Msg("token registry unavailable")
	}

	a := &api.API{Fonts: fonts, Loader: loader, Registry: reg, Log: log}

	r := gin.Default()
	a.RegisterRoutes(r)

	addr := ":" + envOr("PORT", "8080")
	log.Info().Str("addr", addr).Msg("starting card service")
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
