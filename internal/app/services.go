package app

import (
	"fmt"

	"github.com/mooncoven/mooncoven-backend/internal/clients/redis"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/logger"
	"github.com/mooncoven/mooncoven-backend/internal/services"
)

type Services struct {
	DailyDraw      services.DailyDrawService
	Altar          services.AltarService
	Toggle         services.ToggleService
	ActivityCursor services.ActivityCursorService
}

func wireServices(log *logger.Logger, cfg Config, repos Repos) (Services, error) {
	// The draw cache is best-effort; no redis just means every read hits the
	// store.
	var cache redis.DrawCache
	if c, err := redis.NewDrawCache(log); err != nil {
		log.Warn("draw cache disabled", "error", err)
	} else {
		cache = c
	}

	catalog := services.DefaultCandleCatalog()
	if cfg.CandleCatalogPath != "" {
		loaded, err := services.LoadCandleCatalog(cfg.CandleCatalogPath)
		if err != nil {
			return Services{}, fmt.Errorf("load candle catalog: %w", err)
		}
		catalog = loaded
	}

	return Services{
		DailyDraw:      services.NewDailyDrawService(log, repos.DailyDraw, cache, services.TarotDeck, cfg.DrawCount),
		Altar:          services.NewAltarService(log, repos.AltarCandle, catalog),
		Toggle:         services.NewToggleService(log, repos.PostLike, repos.GrimoireItem),
		ActivityCursor: services.NewActivityCursorService(log, repos.ActivityCursor),
	}, nil
}
