package domain

import (
	"github.com/mooncoven/mooncoven-backend/internal/domain/rituals"
	"github.com/mooncoven/mooncoven-backend/internal/domain/social"
	"github.com/mooncoven/mooncoven-backend/internal/domain/user"
)

type User = user.User

type Post = social.Post
type PostLike = social.PostLike
type GrimoireItem = social.GrimoireItem
type ActivityCursor = social.ActivityCursor

type DailyDraw = rituals.DailyDraw
type AltarCandle = rituals.AltarCandle
