// Package config provides type-safe environment variable loading with
// per-type caching. Parsing is done by caarlos0/env; a .env file is loaded
// automatically on first use via godotenv.
//
// Define an env-tagged struct and load it once at startup:
//
//	type GuardConfig struct {
//		SigningKey string        `env:"AUTH_JWT_SECRET,required"`
//		TokenTTL   time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
//	}
//
//	var cfg GuardConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is parsed only once per process lifetime; later
// Load calls for the same type return the cached value. MustLoad panics on
// failure, which is the usual choice during startup.
package config
