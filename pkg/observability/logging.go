package observability

import (
	"context"
	"log/slog"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// LoggingHooks writes one record per event. Failed compilations log at
// Error level, everything else at Debug.
func LoggingHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnCompile: func(ctx context.Context, e *domain.CompileEvent) {
			if e.Err != nil {
				logger.ErrorContext(ctx, "compile failed",
					"screens", e.Screens,
					"err", e.Err,
				)
				return
			}
			logger.DebugContext(ctx, "compile",
				"screens", e.Screens,
				"elements", e.Elements,
				"cached", e.Cached,
				"duration", e.Duration,
			)
		},
		OnValidate: func(ctx context.Context, e *domain.ValidateEvent) {
			logger.DebugContext(ctx, "validate",
				"scope", e.Scope,
				"errors", e.Errors,
				"warnings", e.Warnings,
			)
		},
	}
}
