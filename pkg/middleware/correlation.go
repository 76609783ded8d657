package middleware

import (
	"net/http"

	"github.com/vfg2006/influence-hub-api/pkg/log"
)

// CorrelationID resolve o ID da requisição (do header X-Request-ID ou um UUID novo),
// grava no contexto e devolve no header da resposta. Deve ser o primeiro da cadeia.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(log.CorrelationIDHeader))
			w.Header().Set(log.CorrelationIDHeader, correlationID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
