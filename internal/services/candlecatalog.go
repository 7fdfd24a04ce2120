package services

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/mooncoven/mooncoven-backend/internal/pkg/errors"
)

// CandleCatalog is the single authoritative source for per-variant burn
// durations. Durations are fixed per variant, never user-supplied.
type CandleCatalog struct {
	burns map[string]time.Duration
}

const defaultBurn = 6 * time.Hour

// DefaultCandleCatalog returns the built-in variants.
func DefaultCandleCatalog() *CandleCatalog {
	return &CandleCatalog{burns: map[string]time.Duration{
		"white":  defaultBurn,
		"red":    defaultBurn,
		"green":  defaultBurn,
		"purple": defaultBurn,
		"black":  8 * time.Hour,
		"tea":    2 * time.Hour,
		"pillar": 24 * time.Hour,
	}}
}

// LoadCandleCatalog reads a variant->duration map from a YAML file, e.g.
//
//	white: 6h
//	pillar: 24h
func LoadCandleCatalog(path string) (*CandleCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candle catalog: %w", err)
	}
	var spec map[string]string
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse candle catalog: %w", err)
	}
	burns := make(map[string]time.Duration, len(spec))
	for variant, v := range spec {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("candle catalog: bad burn duration %q for %q: %w", v, variant, apperrors.ErrInvalidArgument)
		}
		burns[variant] = d
	}
	if len(burns) == 0 {
		return nil, fmt.Errorf("candle catalog: no variants: %w", apperrors.ErrInvalidArgument)
	}
	return &CandleCatalog{burns: burns}, nil
}

// Burn returns the burn duration for a variant; ok is false for unknown
// variants.
func (c *CandleCatalog) Burn(variant string) (time.Duration, bool) {
	d, ok := c.burns[variant]
	return d, ok
}

func (c *CandleCatalog) Variants() []string {
	out := make([]string, 0, len(c.burns))
	for v := range c.burns {
		out = append(out, v)
	}
	return out
}
