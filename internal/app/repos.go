package app

import (
	"gorm.io/gorm"

	reporituals "github.com/mooncoven/mooncoven-backend/internal/data/repos/rituals"
	reposocial "github.com/mooncoven/mooncoven-backend/internal/data/repos/social"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/logger"
)

type Repos struct {
	DailyDraw      reporituals.DailyDrawRepo
	AltarCandle    reporituals.AltarCandleRepo
	PostLike       reposocial.PostLikeRepo
	GrimoireItem   reposocial.GrimoireItemRepo
	ActivityCursor reposocial.ActivityCursorRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		DailyDraw:      reporituals.NewDailyDrawRepo(db, log),
		AltarCandle:    reporituals.NewAltarCandleRepo(db, log),
		PostLike:       reposocial.NewPostLikeRepo(db, log),
		GrimoireItem:   reposocial.NewGrimoireItemRepo(db, log),
		ActivityCursor: reposocial.NewActivityCursorRepo(db, log),
	}
}
