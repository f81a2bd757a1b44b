package httpkit

import (
	"net/http"
	"time"

	"listingseo/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	CORSOrigins []string
	SlowRequest time.Duration
	Locales     middleware.Negotiator
}

// CommonStack is the per API middleware: recovery, request ids, timeouts, CORS,
// locale negotiation and the access log, in that order
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	mws := middleware.Defaults(o.Timeout)
	mws = append(mws,
		middleware.StripSlashes(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins, MaxAge: 300}),
	)
	if o.Locales != nil {
		mws = append(mws, middleware.Locale(o.Locales))
	}
	return append(mws, middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}))
}
