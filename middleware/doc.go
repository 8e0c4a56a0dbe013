// Package middleware provides net/http middleware that binds the
// authentication guard to each inbound request.
//
// Guard builds a fresh request-bound guard per request and stores it in the
// request context; handlers retrieve it with GuardFromContext. RequireAuth
// runs after Guard and rejects requests without an authenticated principal
// with 401, while infrastructure faults (principal store down) surface as 500
// so they are never mistaken for failed authentication.
//
//	factory, err := guard.NewFactoryFromConfig(cfg, provider, bl)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("/me", middleware.Guard(factory)(
//		middleware.RequireAuth()(http.HandlerFunc(me))))
//
//	func me(w http.ResponseWriter, r *http.Request) {
//		g, _ := middleware.GuardFromContext(r.Context())
//		user, _ := g.User(r.Context())
//		// ...
//	}
//
// Both middlewares accept a config variant with Skip and error-handling hooks
// for public endpoints and custom rejection responses.
package middleware
