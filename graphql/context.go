package graphql

import (
	"context"
	"net/http"

	"sculpturesly.GO/config"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeySessionKey contextKey = "sessionKey"

// SessionKeyFromContext returns the cart session key for the current request.
func SessionKeyFromContext(ctx context.Context) string {
	if v := ctx.Value(CtxKeySessionKey); v != nil {
		if key, ok := v.(string); ok {
			return key
		}
	}
	return ""
}

// WithSessionKey attaches the cart session key to the context.
func WithSessionKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, CtxKeySessionKey, key)
}

// HeaderSessionKey lets API clients without cookies address a session.
const HeaderSessionKey = "X-Session-Key"

// GetSessionKey extracts the session key from the request.
// Priority: 1) X-Session-Key header, 2) session cookie.
func GetSessionKey(r *http.Request) string {
	if h := r.Header.Get(HeaderSessionKey); h != "" {
		return h
	}
	if cookie, err := r.Cookie(config.SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
