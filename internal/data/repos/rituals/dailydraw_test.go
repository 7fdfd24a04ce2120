package rituals

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mooncoven/mooncoven-backend/internal/data/repos/testutil"
	types "github.com/mooncoven/mooncoven-backend/internal/domain"
)

func TestDailyDrawRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewDailyDrawRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "dailydrawrepo@example.com")

	missing, err := repo.GetByDate(ctx, tx, u.ID, "2026-09-01")
	if err != nil {
		t.Fatalf("GetByDate(missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByDate(missing): expected nil, got %+v", missing)
	}

	row := &types.DailyDraw{
		ID:       uuid.New(),
		UserID:   u.ID,
		DrawDate: "2026-09-01",
		Cards:    datatypes.JSON([]byte(`["the-sun","the-moon","the-star"]`)),
	}
	created, err := repo.Create(ctx, tx, row)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created {
		t.Fatalf("Create: expected created=true")
	}

	// A second insert for the same day must lose to the unique index.
	dupe := &types.DailyDraw{
		ID:       uuid.New(),
		UserID:   u.ID,
		DrawDate: "2026-09-01",
		Cards:    datatypes.JSON([]byte(`["death"]`)),
	}
	created, err = repo.Create(ctx, tx, dupe)
	if err != nil {
		t.Fatalf("Create(dupe): %v", err)
	}
	if created {
		t.Fatalf("Create(dupe): expected created=false")
	}

	got, err := repo.GetByDate(ctx, tx, u.ID, "2026-09-01")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if got == nil || got.ID != row.ID {
		t.Fatalf("GetByDate: stored artifact must be the first writer's, got %+v", got)
	}

	nextDay := &types.DailyDraw{
		ID:       uuid.New(),
		UserID:   u.ID,
		DrawDate: "2026-09-02",
		Cards:    datatypes.JSON([]byte(`["justice","strength","the-fool"]`)),
	}
	if created, err := repo.Create(ctx, tx, nextDay); err != nil || !created {
		t.Fatalf("Create(next day): created=%v err=%v", created, err)
	}

	history, err := repo.ListByUser(ctx, tx, u.ID, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("ListByUser: expected 2 draws, got %d", len(history))
	}
	if history[0].DrawDate != "2026-09-02" {
		t.Fatalf("ListByUser: expected newest first, got %q", history[0].DrawDate)
	}
}

func TestDailyDrawRepo_Validation(t *testing.T) {
	db := testutil.DB(t)
	repo := NewDailyDrawRepo(db, testutil.Logger(t))

	if _, err := repo.Create(context.Background(), nil, &types.DailyDraw{}); err == nil {
		t.Fatalf("Create(empty): expected error")
	}
	if _, err := repo.GetByDate(context.Background(), nil, uuid.Nil, ""); err == nil {
		t.Fatalf("GetByDate(empty): expected error")
	}
}
