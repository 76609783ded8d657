package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/influence-hub-api/pkg/log"
)

// requisições acima deste tempo geram um aviso extra
const slowRequestThreshold = 500 * time.Millisecond

// statusRecorder guarda o status e o tamanho do corpo enviados pelo handler
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// AccessLog registra uma linha por requisição com status e duração.
// O nível acompanha o status: 5xx erro, 4xx aviso, demais info.
func AccessLog() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			elapsed := time.Since(start)

			logger := log.ForContext(r.Context()).WithFields(log.Fields{
				"method":        r.Method,
				"path":          r.URL.Path,
				"query":         r.URL.RawQuery,
				"status_code":   rec.status,
				"duration_ms":   elapsed.Milliseconds(),
				"response_size": rec.bytes,
				"remote_addr":   r.RemoteAddr,
				"user_agent":    r.UserAgent(),
			})

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case rec.status >= http.StatusBadRequest:
				logger.Warn("Requisição finalizada com aviso")
			default:
				logger.Info("Requisição finalizada")
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", elapsed)
			}
		})
	}
}
