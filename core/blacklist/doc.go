// Package blacklist provides token revocation registries keyed by the jti
// claim. An entry only needs to survive until the token's natural expiration,
// which both implementations exploit: the Redis backend sets a key TTL, the
// in-memory backend drops expired entries lazily.
//
// Memory is for tests and single-process deployments; Redis is for anything
// with more than one instance:
//
//	client, err := redis.Connect(ctx, redisCfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	bl := blacklist.NewRedis(client)
//
// Noop disables revocation entirely for deployments that rely on short token
// lifetimes alone.
package blacklist
