package db

import (
	types "github.com/mooncoven/mooncoven-backend/internal/domain"
)

func (s *Service) AutoMigrateAll() error {
	return s.db.AutoMigrate(
		&types.User{},
		&types.Post{},

		&types.DailyDraw{},
		&types.AltarCandle{},

		&types.PostLike{},
		&types.GrimoireItem{},
		&types.ActivityCursor{},
	)
}
