package middleware

import (
	"net/http"

	"listingseo/internal/platform/logger"
	pnet "listingseo/internal/platform/net"
)

// Negotiator resolves the tip locale for a request
type Negotiator interface {
	// Normalize maps an explicit locale to a supported one
	Normalize(locale string) string
	// Match negotiates an Accept-Language header
	Match(acceptLanguage string) string
}

// LocaleParam is the query parameter that overrides Accept-Language
const LocaleParam = "locale"

// Locale negotiates the tip locale and stores it, with the request id, on the context
// for handlers and the request logger. Mount it after RequestID
func Locale(n Negotiator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var loc string
			if q := r.URL.Query().Get(LocaleParam); q != "" {
				loc = n.Normalize(q)
			} else {
				loc = n.Match(r.Header.Get("Accept-Language"))
			}
			w.Header().Set("Content-Language", loc)
			w.Header().Add("Vary", "Accept-Language")

			ctx := r.Context()
			reqID := pnet.RequestID(ctx)
			ctx = pnet.WithRequest(ctx, reqID, loc)
			ctx = logger.WithRequest(ctx, reqID, loc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
