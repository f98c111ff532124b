package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type KeyFunc func(r *http.Request) string

type Options struct {
	Store      *Store
	KeyFn      KeyFunc
	RetryAfter time.Duration
	// OnReject is called for every rejected request, e.g. for logging.
	OnReject func(r *http.Request, key string)
}

// RemoteIPKey keys clients by the host part of RemoteAddr. Mount it after
// chi's RealIP middleware to honour X-Forwarded-For.
func RemoteIPKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// Middleware rejects requests over the per-key rate with 429 and a Retry-After header.
func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.RetryAfter <= 0 {
		opts.RetryAfter = time.Second
	}
	if opts.KeyFn == nil {
		opts.KeyFn = RemoteIPKey
	}
	retryAfter := strconv.Itoa(int((opts.RetryAfter + time.Second - 1) / time.Second))

	return func(next http.Handler) http.Handler {
		if opts.Store == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)
			if !opts.Store.Allow(key) {
				if opts.OnReject != nil {
					opts.OnReject(r, key)
				}
				w.Header().Set("Retry-After", retryAfter)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
