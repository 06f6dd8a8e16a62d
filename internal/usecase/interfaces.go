package usecase

import (
	"context"
	"time"

	"github.com/finplanner/finplanner/internal/domain"
)

// TextGenerator produces natural-language commentary grounded in the numeric
// results of the calculators. Implementations call a hosted model; the
// calculators themselves never depend on it.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Cache defines caching operations for computed advice reports.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// SessionStore holds advice reports for the lifetime of an interactive
// session. Nothing is ever durably persisted.
type SessionStore interface {
	Save(ctx context.Context, report *domain.AdviceReport) error
	Get(ctx context.Context, sessionID string) (*domain.AdviceReport, error)
	Delete(ctx context.Context, sessionID string) error
}

// IDGenerator generates unique session IDs.
type IDGenerator interface {
	Generate() string
}
