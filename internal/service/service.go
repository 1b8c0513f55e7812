// Package service contains the application logic.
//
// It sits between the handler and repository layers. Services call the
// stores, log storage failures and translate every *errs.DBError into an
// *errs.HandlerError that the HTTP layer can render.
package service

import (
	"context"
	"errors"

	"github.com/deppfellow/go-qna/internal/errs"
	"github.com/rs/zerolog"
)

// requestLogger prefers the request-scoped logger carried in ctx.
func requestLogger(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}

// handleDBError logs err and returns the HandlerError it maps to.
func handleDBError(ctx context.Context, log *zerolog.Logger, operation string, err error) error {
	kind := "unclassified"
	var dbErr *errs.DBError
	if errors.As(err, &dbErr) {
		kind = dbErr.Kind.String()
	}

	requestLogger(ctx, log).Error().
		Err(err).
		Str("operation", operation).
		Str("error_kind", kind).
		Msg("storage operation failed")

	return errs.FromDBError(err)
}
