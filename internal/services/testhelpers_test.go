package services

import (
	"testing"

	"github.com/mooncoven/mooncoven-backend/internal/pkg/logger"
)

func newTestLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("failed to init logger: %v", err)
	}
	return log
}
