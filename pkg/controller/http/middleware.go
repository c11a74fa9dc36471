package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/fintel-lab/caseflow/pkg/domain/types"
	"github.com/fintel-lab/caseflow/pkg/utils/logging"
)

type ctxActorKey struct{}

// actorHeader carries the identity of the requesting compliance officer.
// Authentication happens upstream; the gateway injects the header.
const actorHeader = "X-Actor-ID"

// actorMiddleware lifts the actor header into the request context
func actorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := types.ActorID(r.Header.Get(actorHeader))
		ctx := context.WithValue(r.Context(), ctxActorKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actorFrom returns the requesting actor, or empty if the header was absent
func actorFrom(ctx context.Context) types.ActorID {
	actor, _ := ctx.Value(ctxActorKey{}).(types.ActorID)
	return actor
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
