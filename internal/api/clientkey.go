package api

import (
	"net"
	"net/http"
	"strings"
)

// KeyFunc derives the rate-limit client key from a request. Pluggable so
// proxied deployments can pick a trusted header strategy.
type KeyFunc func(r *http.Request) string

// DefaultKeyFunc keys on the network address. X-Forwarded-For is
// client-supplied and trivially spoofed, so its first entry is used only
// when the deployment explicitly trusts the proxy in front of it.
func DefaultKeyFunc(trustForwardedFor bool) KeyFunc {
	return func(r *http.Request) string {
		if trustForwardedFor {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				parts := strings.Split(xff, ",")
				if ip := strings.TrimSpace(parts[0]); ip != "" {
					return ip
				}
			}
		}

		host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
		if err == nil && host != "" {
			return host
		}
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
}
