package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/vfg2006/influence-hub-api/pkg/apiErrors"
	"github.com/vfg2006/influence-hub-api/pkg/log"
)

const stackBufferSize = 8 << 10

// Recover transforma um panic do handler em 500 SRV_001, registrando o erro com o ID da requisição
func Recover() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				stack := make([]byte, stackBufferSize)
				stack = stack[:runtime.Stack(stack, false)]

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  fmt.Sprint(recovered),
					"method": r.Method,
					"path":   r.URL.Path,
				})
				logger.Error("Erro não tratado na aplicação")
				logger.WithField("stack_trace", string(stack)).Debug("Stack trace do erro")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
