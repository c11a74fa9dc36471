package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/fintel-lab/caseflow/pkg/utils/logging"
)

// Close closes an io.Closer and logs any error instead of returning it.
// Meant for defer sites where a close failure should not mask the real
// return value. Nil closers are ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}
