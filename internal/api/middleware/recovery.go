package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
)

// Recovery converts handler panics into a 500 response instead of
// tearing down the connection.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(map[string]interface{}{
						"panic":      fmt.Sprintf("%v", rec),
						"stack":      string(debug.Stack()),
						"request_id": GetRequestID(r.Context()),
					}).Error("panic recovered")
					utils.WriteError(w, errors.Internal("Internal server error", fmt.Errorf("%v", rec)))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
