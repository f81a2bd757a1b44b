package middleware

import (
	"net/http"
	"runtime/debug"

	perr "listingseo/internal/platform/errors"
	"listingseo/internal/platform/logger"
	phttp "listingseo/internal/platform/net/http"
)

// RecoverJSON turns a panic into a 500 envelope and logs the stack
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			if r.Header.Get("Connection") != "Upgrade" {
				phttp.RespondError(w, r, perr.PanicErrf("internal error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
