package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authguard/core/guard"
	"github.com/dmitrymomot/authguard/pkg/logger"
)

// guardContextKey is used as a key for storing the request's guard in context.
type guardContextKey struct{}

// GuardConfig configures the guard-binding middleware.
type GuardConfig struct {
	// Factory builds the per-request guards (required).
	Factory *guard.Factory
	// Skip defines a function to skip middleware execution for specific requests.
	Skip func(r *http.Request) bool
}

// Guard creates middleware that binds a fresh guard to every request and
// stores it in the request context. Binding resets the guard's memoized
// state, so handlers always see token and principal derived from the current
// request's bearer header.
//
//	factory, _ := guard.NewFactoryFromConfig(cfg, provider, bl)
//	mux.Handle("/api/", middleware.Guard(factory)(apiHandler))
func Guard(factory *guard.Factory) func(http.Handler) http.Handler {
	return GuardWithConfig(GuardConfig{Factory: factory})
}

// GuardWithConfig creates the guard-binding middleware with custom
// configuration. Panics if the factory is not provided.
func GuardWithConfig(cfg GuardConfig) func(http.Handler) http.Handler {
	if cfg.Factory == nil {
		panic("guard middleware: factory is required")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			g := cfg.Factory.Guard().SetRequest(r)
			ctx := context.WithValue(r.Context(), guardContextKey{}, g)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GuardFromContext retrieves the request's guard from the context.
func GuardFromContext(ctx context.Context) (*guard.Guard, bool) {
	g, ok := ctx.Value(guardContextKey{}).(*guard.Guard)
	return g, ok
}

// RequireAuthConfig configures the authentication-enforcing middleware.
type RequireAuthConfig struct {
	// Skip defines a function to skip enforcement for specific requests.
	Skip func(r *http.Request) bool
	// ErrorHandler handles rejected requests (default: 401 in plain text,
	// 500 for infrastructure faults).
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
	// Logger records infrastructure faults (default: disabled).
	Logger *slog.Logger
}

// RequireAuth creates middleware that rejects requests without an
// authenticated principal. It must run after Guard.
func RequireAuth() func(http.Handler) http.Handler {
	return RequireAuthWithConfig(RequireAuthConfig{})
}

// RequireAuthWithConfig creates the enforcement middleware with custom
// configuration.
func RequireAuthWithConfig(cfg RequireAuthConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			g, ok := GuardFromContext(r.Context())
			if !ok {
				cfg.ErrorHandler(w, r, nil)
				return
			}

			user, err := g.User(r.Context())
			if err != nil {
				// Infrastructure fault, not an authentication failure.
				cfg.Logger.ErrorContext(r.Context(), "principal resolution failed",
					logger.Component("middleware"), logger.Error(err),
					logger.Method(r.Method), logger.Path(r.URL.Path))
				cfg.ErrorHandler(w, r, err)
				return
			}
			if user == nil {
				cfg.ErrorHandler(w, r, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
