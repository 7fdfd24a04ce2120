package app

import (
	"github.com/mooncoven/mooncoven-backend/internal/http/handlers"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Draw     *handlers.DrawHandler
	Altar    *handlers.AltarHandler
	Social   *handlers.SocialHandler
	Activity *handlers.ActivityHandler
}

func wireHandlers(svcs Services) Handlers {
	return Handlers{
		Health:   handlers.NewHealthHandler(),
		Draw:     handlers.NewDrawHandler(svcs.DailyDraw),
		Altar:    handlers.NewAltarHandler(svcs.Altar),
		Social:   handlers.NewSocialHandler(svcs.Toggle),
		Activity: handlers.NewActivityHandler(svcs.ActivityCursor),
	}
}
