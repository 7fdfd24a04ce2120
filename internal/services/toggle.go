package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/mooncoven/mooncoven-backend/internal/pkg/errors"
	"github.com/mooncoven/mooncoven-backend/internal/pkg/logger"
)

type RelationKind string

const (
	RelationLike     RelationKind = "like"
	RelationGrimoire RelationKind = "grimoire"
)

// EdgeStore is the row-level contract every presence relation satisfies.
// Insert must drop a duplicate on the unique index instead of erroring;
// Delete must tolerate an absent row. PostLikeRepo and GrimoireItemRepo both
// implement it; only the table differs, never the algorithm.
type EdgeStore interface {
	Insert(ctx context.Context, tx *gorm.DB, ownerID, targetID uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, ownerID, targetID uuid.UUID) error
	Exists(ctx context.Context, tx *gorm.DB, ownerID, targetID uuid.UUID) (bool, error)
}

type ToggleService interface {
	// Toggle flips the presence edge. currentlySet comes from the caller's
	// prior read; the check-then-act window that opens is closed by the
	// storage constraint, so a racing duplicate insert is benign.
	Toggle(ctx context.Context, kind RelationKind, ownerID, targetID uuid.UUID, currentlySet bool) (newState bool, err error)
	IsSet(ctx context.Context, kind RelationKind, ownerID, targetID uuid.UUID) (bool, error)
}

type toggleService struct {
	log   *logger.Logger
	edges map[RelationKind]EdgeStore
}

func NewToggleService(log *logger.Logger, likes EdgeStore, grimoire EdgeStore) ToggleService {
	return &toggleService{
		log: log.With("service", "ToggleService"),
		edges: map[RelationKind]EdgeStore{
			RelationLike:     likes,
			RelationGrimoire: grimoire,
		},
	}
}

func (s *toggleService) Toggle(ctx context.Context, kind RelationKind, ownerID, targetID uuid.UUID, currentlySet bool) (bool, error) {
	if ownerID == uuid.Nil {
		return false, apperrors.ErrUnauthorized
	}
	if targetID == uuid.Nil {
		return false, fmt.Errorf("missing target id: %w", apperrors.ErrInvalidArgument)
	}
	store, ok := s.edges[kind]
	if !ok {
		return false, fmt.Errorf("unknown relation kind %q: %w", kind, apperrors.ErrInvalidArgument)
	}

	if currentlySet {
		if err := store.Delete(ctx, nil, ownerID, targetID); err != nil {
			return false, fmt.Errorf("delete %s edge: %w", kind, err)
		}
		return false, nil
	}
	if err := store.Insert(ctx, nil, ownerID, targetID); err != nil {
		return false, fmt.Errorf("insert %s edge: %w", kind, err)
	}
	return true, nil
}

func (s *toggleService) IsSet(ctx context.Context, kind RelationKind, ownerID, targetID uuid.UUID) (bool, error) {
	if ownerID == uuid.Nil {
		return false, apperrors.ErrUnauthorized
	}
	if targetID == uuid.Nil {
		return false, fmt.Errorf("missing target id: %w", apperrors.ErrInvalidArgument)
	}
	store, ok := s.edges[kind]
	if !ok {
		return false, fmt.Errorf("unknown relation kind %q: %w", kind, apperrors.ErrInvalidArgument)
	}
	return store.Exists(ctx, nil, ownerID, targetID)
}
