package rituals

import (
	"context"
	"testing"
	"time"

	"github.com/mooncoven/mooncoven-backend/internal/data/repos/testutil"
	types "github.com/mooncoven/mooncoven-backend/internal/domain"
)

func TestAltarCandleRepo_SlotUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewAltarCandleRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "altarcandlerepo@example.com")

	lit := time.Now().UTC().Truncate(time.Second)
	first := &types.AltarCandle{
		UserID:  u.ID,
		Slot:    testutil.PtrStr("center"),
		Variant: "white",
		LitAt:   testutil.PtrTime(lit),
	}
	if err := repo.UpsertSlot(ctx, tx, first); err != nil {
		t.Fatalf("UpsertSlot: %v", err)
	}

	relit := lit.Add(10 * time.Hour)
	second := &types.AltarCandle{
		UserID:  u.ID,
		Slot:    testutil.PtrStr("center"),
		Variant: "red",
		LitAt:   testutil.PtrTime(relit),
	}
	if err := repo.UpsertSlot(ctx, tx, second); err != nil {
		t.Fatalf("UpsertSlot(relight): %v", err)
	}

	got, err := repo.GetBySlot(ctx, tx, u.ID, "center")
	if err != nil {
		t.Fatalf("GetBySlot: %v", err)
	}
	if got == nil || got.ID != first.ID {
		t.Fatalf("relight must reuse the slot row, got %+v", got)
	}
	if got.Variant != "red" || got.LitAt == nil || !got.LitAt.Equal(relit) {
		t.Fatalf("relight must overwrite variant and lit_at, got %+v", got)
	}

	all, err := repo.ListByUser(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one row for the slot, got %d", len(all))
	}
}

func TestAltarCandleRepo_FreePlacement(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewAltarCandleRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "altarcandlefree@example.com")

	lit := time.Now().UTC()
	for i := 0; i < 3; i++ {
		row := &types.AltarCandle{
			UserID:  u.ID,
			Variant: "tea",
			PosX:    i * 10,
			PosY:    5,
			LitAt:   testutil.PtrTime(lit),
		}
		if err := repo.CreateFree(ctx, tx, row); err != nil {
			t.Fatalf("CreateFree(%d): %v", i, err)
		}
	}

	all, err := repo.ListByUser(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("free placement must never coalesce rows, got %d", len(all))
	}

	slotted := &types.AltarCandle{
		UserID:  u.ID,
		Slot:    testutil.PtrStr("left"),
		Variant: "white",
	}
	if err := repo.CreateFree(ctx, tx, slotted); err == nil {
		t.Fatalf("CreateFree with a slot should be rejected")
	}
}
