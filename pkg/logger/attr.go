// Package logger provides slog attribute helpers for the authentication
// packages. Helpers return an empty Attr for zero values, so call sites never
// need explicit nil or empty checks.
package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for a component name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// UserID creates an attribute for a principal identifier.
// Returns an empty Attr for empty identifiers.
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// TokenID creates an attribute for a token identifier (jti claim).
// Returns an empty Attr for empty identifiers.
func TokenID(jti string) slog.Attr {
	if jti == "" {
		return slog.Attr{}
	}
	return slog.String("token_id", jti)
}

// Duration creates an attribute for an elapsed duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Method creates an attribute for an HTTP method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for a URL path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}
