package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/logger"
)

// RequestLogger builds a request-scoped logger enriched with correlation_id,
// user_id, and trace IDs, then stores it in context via logger.NewContext.
// Handlers retrieve it with logger.FromContext(ctx).
//
// Mount AFTER RequestLogging (which sets correlation_id) and Auth (which sets
// the actor identity).
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if userID := UserIDFromContext(ctx); userID > 0 {
				ctx = logger.WithUserID(ctx, strconv.FormatInt(userID, 10))
			}

			enriched := logger.WithContext(ctx, base)
			ctx = logger.NewContext(ctx, enriched)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
