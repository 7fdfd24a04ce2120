package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	reporituals "github.com/mooncoven/mooncoven-backend/internal/data/repos/rituals"
	types "github.com/mooncoven/mooncoven-backend/internal/domain"
	apperrors "github.com/mooncoven/mooncoven-backend/internal/pkg/errors"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/logger"
)

// AltarSlots are the fixed placements; each holds at most one candle per user.
var AltarSlots = []string{"left", "center", "right"}

// LightRequest asks for a candle to be lit. Empty Slot means free placement
// at (PosX, PosY); a named slot ignores the coordinates.
type LightRequest struct {
	Variant string
	Slot    string
	PosX    int
	PosY    int
}

type AltarService interface {
	Light(ctx context.Context, userID uuid.UUID, req LightRequest) (*types.AltarCandle, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]*types.AltarCandle, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]*types.AltarCandle, error)
	IsActive(c *types.AltarCandle, now time.Time) bool
}

type altarService struct {
	log     *logger.Logger
	repo    reporituals.AltarCandleRepo
	catalog *CandleCatalog
	now     func() time.Time
}

func NewAltarService(log *logger.Logger, repo reporituals.AltarCandleRepo, catalog *CandleCatalog) AltarService {
	return &altarService{
		log:     log.With("service", "AltarService"),
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
	}
}

// CandleActive reports whether a candle lit at litAt is still burning at now.
// Active exactly for now in [litAt, litAt+burn); the upper boundary is
// exclusive. A candle that was never lit is not burning.
func CandleActive(litAt *time.Time, burn time.Duration, now time.Time) bool {
	if litAt == nil {
		return false
	}
	if now.Before(*litAt) {
		return false
	}
	return now.Sub(*litAt) < burn
}

func (s *altarService) Light(ctx context.Context, userID uuid.UUID, req LightRequest) (*types.AltarCandle, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	if _, ok := s.catalog.Burn(req.Variant); !ok {
		return nil, fmt.Errorf("unknown candle variant %q: %w", req.Variant, apperrors.ErrInvalidArgument)
	}

	now := s.now().UTC()

	if req.Slot != "" {
		if !validSlot(req.Slot) {
			return nil, fmt.Errorf("unknown altar slot %q: %w", req.Slot, apperrors.ErrInvalidArgument)
		}
		slot := req.Slot
		row := &types.AltarCandle{
			UserID:  userID,
			Slot:    &slot,
			Variant: req.Variant,
			LitAt:   &now,
		}
		// Upsert, not read-then-write: relighting resets lit_at in place and
		// the unique index keeps the slot to one row under concurrency.
		if err := s.repo.UpsertSlot(ctx, nil, row); err != nil {
			return nil, fmt.Errorf("light slot candle: %w", err)
		}
		stored, err := s.repo.GetBySlot(ctx, nil, userID, slot)
		if err != nil {
			return nil, fmt.Errorf("reload slot candle: %w", err)
		}
		if stored == nil {
			return nil, fmt.Errorf("slot candle vanished after upsert for %s/%s", userID, slot)
		}
		return stored, nil
	}

	row := &types.AltarCandle{
		UserID:  userID,
		Variant: req.Variant,
		PosX:    req.PosX,
		PosY:    req.PosY,
		LitAt:   &now,
	}
	if err := s.repo.CreateFree(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("light free candle: %w", err)
	}
	return row, nil
}

func (s *altarService) ListActive(ctx context.Context, userID uuid.UUID) ([]*types.AltarCandle, error) {
	all, err := s.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	active := make([]*types.AltarCandle, 0, len(all))
	for _, c := range all {
		if s.IsActive(c, now) {
			active = append(active, c)
		}
	}
	return active, nil
}

func (s *altarService) ListAll(ctx context.Context, userID uuid.UUID) ([]*types.AltarCandle, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}
	return s.repo.ListByUser(ctx, nil, userID)
}

func (s *altarService) IsActive(c *types.AltarCandle, now time.Time) bool {
	if c == nil {
		return false
	}
	burn, ok := s.catalog.Burn(c.Variant)
	if !ok {
		return false
	}
	return CandleActive(c.LitAt, burn, now)
}

func validSlot(slot string) bool {
	for _, s := range AltarSlots {
		if s == slot {
			return true
		}
	}
	return false
}
