package middleware

import (
	"context"
	"net/http"
	"strings"
)

// context key
type contextKey string

const DebugKey contextKey = "debug"

// DebugMode marks the request as a diagnostics request when the "query"
// URL parameter equals "debug" (case-insensitive, exact match). Anything
// else, including prefixes like "debugger", leaves the flag off.
func DebugMode(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		val := r.URL.Query().Get("query")
		if strings.EqualFold(val, "debug") {
			ctx := context.WithValue(r.Context(), DebugKey, true)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// Debug reports whether the request carries the diagnostics flag.
func Debug(ctx context.Context) bool {
	debug, _ := ctx.Value(DebugKey).(bool)
	return debug
}
