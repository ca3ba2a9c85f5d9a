package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/panedrawer/internal/domain/entity"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithDirection creates a child logger with a direction field
func WithDirection(ctx context.Context, direction entity.Direction) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Stringer("direction", direction).Logger()
	return WithContext(ctx, childLogger)
}
