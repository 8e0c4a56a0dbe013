// Package redis provides Redis client initialization with connection
// verification for the revocation blacklist and other shared state.
//
// Connect parses the connection URL, creates a go-redis client, and verifies
// connectivity with a bounded ping retry loop before returning:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	bl := blacklist.NewRedis(client)
//
// Healthcheck returns a probe function for readiness endpoints.
package redis
