package social

import (
	"context"
	"testing"

	"github.com/mooncoven/mooncoven-backend/internal/data/repos/testutil"
)

func TestPostLikeRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewPostLikeRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "postlikerepo@example.com")
	p := testutil.SeedPost(t, ctx, tx, u.ID, "blessed be")

	set, err := repo.Exists(ctx, tx, u.ID, p.ID)
	if err != nil || set {
		t.Fatalf("Exists(before): set=%v err=%v", set, err)
	}

	if err := repo.Insert(ctx, tx, u.ID, p.ID); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	// The duplicate insert hits the unique index and is dropped silently.
	if err := repo.Insert(ctx, tx, u.ID, p.ID); err != nil {
		t.Fatalf("Insert(dupe): %v", err)
	}

	n, err := repo.CountForPost(ctx, tx, p.ID)
	if err != nil {
		t.Fatalf("CountForPost: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one like row, got %d", n)
	}

	if err := repo.Delete(ctx, tx, u.ID, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// Deleting an absent edge is idempotent.
	if err := repo.Delete(ctx, tx, u.ID, p.ID); err != nil {
		t.Fatalf("Delete(absent): %v", err)
	}

	set, err = repo.Exists(ctx, tx, u.ID, p.ID)
	if err != nil || set {
		t.Fatalf("Exists(after delete): set=%v err=%v", set, err)
	}
}
