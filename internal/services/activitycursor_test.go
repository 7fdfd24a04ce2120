package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/mooncoven/mooncoven-backend/internal/domain"
)

// fakeActivityCursorRepo clamps on advance exactly like the real upsert.
type fakeActivityCursorRepo struct {
	mu      sync.Mutex
	cursors map[uuid.UUID]time.Time
}

func newFakeActivityCursorRepo() *fakeActivityCursorRepo {
	return &fakeActivityCursorRepo{cursors: map[uuid.UUID]time.Time{}}
}

func (f *fakeActivityCursorRepo) Get(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ActivityCursor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	at, ok := f.cursors[userID]
	if !ok {
		return nil, nil
	}
	return &types.ActivityCursor{UserID: userID, LastSeenAt: at}, nil
}

func (f *fakeActivityCursorRepo) AdvanceTo(ctx context.Context, tx *gorm.DB, userID uuid.UUID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if current, ok := f.cursors[userID]; !ok || at.After(current) {
		f.cursors[userID] = at
	}
	return nil
}

func newCursorServiceAt(tb testing.TB, repo *fakeActivityCursorRepo, at time.Time) *activityCursorService {
	tb.Helper()
	return &activityCursorService{
		log:  newTestLogger(tb),
		repo: repo,
		now:  func() time.Time { return at },
	}
}

func TestUnseen(t *testing.T) {
	seen := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	cursor := &types.ActivityCursor{UserID: uuid.New(), LastSeenAt: seen}

	if Unseen(cursor, seen.Add(-time.Minute)) {
		t.Fatalf("item before the watermark should be seen")
	}
	if Unseen(cursor, seen) {
		t.Fatalf("item exactly at the watermark should be seen")
	}
	if !Unseen(cursor, seen.Add(time.Minute)) {
		t.Fatalf("item after the watermark should be unseen")
	}
	if !Unseen(nil, seen.Add(-24*time.Hour)) {
		t.Fatalf("everything is unseen without a cursor")
	}
}

func TestAdvance_MovesForwardOnly(t *testing.T) {
	ctx := context.Background()
	repo := newFakeActivityCursorRepo()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newCursorServiceAt(t, repo, now)
	userID := uuid.New()

	cursor, err := svc.Advance(ctx, userID, now)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !cursor.LastSeenAt.Equal(now) {
		t.Fatalf("cursor=%v, want %v", cursor.LastSeenAt, now)
	}

	// A stale advance must not move the watermark backward.
	cursor, err = svc.Advance(ctx, userID, now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("stale advance: %v", err)
	}
	if !cursor.LastSeenAt.Equal(now) {
		t.Fatalf("stale advance moved the cursor: %v", cursor.LastSeenAt)
	}

	cursor, err = svc.Advance(ctx, userID, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("forward advance: %v", err)
	}
	if !cursor.LastSeenAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("forward advance failed: %v", cursor.LastSeenAt)
	}
}

func TestAdvance_DefaultsToNow(t *testing.T) {
	ctx := context.Background()
	repo := newFakeActivityCursorRepo()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newCursorServiceAt(t, repo, now)
	userID := uuid.New()

	cursor, err := svc.Advance(ctx, userID, time.Time{})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !cursor.LastSeenAt.Equal(now) {
		t.Fatalf("zero at should mean now, got %v", cursor.LastSeenAt)
	}

	// After advancing, earlier items are seen and later ones are not.
	if Unseen(cursor, now.Add(-time.Second)) {
		t.Fatalf("pre-advance item should be seen")
	}
	if !Unseen(cursor, now.Add(time.Second)) {
		t.Fatalf("post-advance item should be unseen")
	}
}

func TestGet_AbsentCursor(t *testing.T) {
	svc := newCursorServiceAt(t, newFakeActivityCursorRepo(), time.Now())
	cursor, err := svc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cursor != nil {
		t.Fatalf("expected nil cursor for a user who has seen nothing")
	}
}
