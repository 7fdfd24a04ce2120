package app

import (
	"strings"

	"github.com/mooncoven/mooncoven-backend/internal/platform/envutil"
)

type Config struct {
	Addr              string
	JWTSecretKey      string
	DrawCount         int
	CandleCatalogPath string
	AllowedOrigins    []string
}

func LoadConfig() Config {
	var origins []string
	if raw := envutil.Str("ALLOWED_ORIGINS", ""); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	return Config{
		Addr:              ":" + envutil.Str("PORT", "8080"),
		JWTSecretKey:      envutil.Str("JWT_SECRET_KEY", "defaultsecret"),
		DrawCount:         envutil.Int("DRAW_COUNT", 3),
		CandleCatalogPath: envutil.Str("CANDLE_CATALOG_PATH", ""),
		AllowedOrigins:    origins,
	}
}
