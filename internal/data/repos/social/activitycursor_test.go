package social

import (
	"context"
	"testing"
	"time"

	"github.com/mooncoven/mooncoven-backend/internal/data/repos/testutil"
)

func TestActivityCursorRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewActivityCursorRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "activitycursorrepo@example.com")

	missing, err := repo.Get(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("Get(missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("Get(missing): expected nil, got %+v", missing)
	}

	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.AdvanceTo(ctx, tx, u.ID, now); err != nil {
		t.Fatalf("AdvanceTo(create): %v", err)
	}
	got, err := repo.Get(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || !got.LastSeenAt.Equal(now) {
		t.Fatalf("Get: expected last_seen_at=%v, got %+v", now, got)
	}

	// A stale advance must leave the watermark where it is.
	if err := repo.AdvanceTo(ctx, tx, u.ID, now.Add(-time.Hour)); err != nil {
		t.Fatalf("AdvanceTo(stale): %v", err)
	}
	got, err = repo.Get(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("Get(after stale): %v", err)
	}
	if !got.LastSeenAt.Equal(now) {
		t.Fatalf("stale advance moved the watermark to %v", got.LastSeenAt)
	}

	later := now.Add(time.Hour)
	if err := repo.AdvanceTo(ctx, tx, u.ID, later); err != nil {
		t.Fatalf("AdvanceTo(forward): %v", err)
	}
	got, err = repo.Get(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("Get(after forward): %v", err)
	}
	if !got.LastSeenAt.Equal(later) {
		t.Fatalf("forward advance failed, got %v", got.LastSeenAt)
	}
}
