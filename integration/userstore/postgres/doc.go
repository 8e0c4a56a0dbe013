// Package postgres provides a Postgres-backed principal provider for the
// authentication guard.
//
// Users are stored with a bcrypt password hash and a free-form claims
// document (jsonb). The provider implements the full guard.Provider contract
// plus the claims-resolving capability, and the returned User contributes its
// claims document to issued tokens through the credentials-providing
// capability.
//
//	pool, err := pg.Connect(ctx, pgCfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := pg.Migrate(ctx, pgCfg.ConnectionString, postgres.Migrations()); err != nil {
//		log.Fatal(err)
//	}
//
//	provider := postgres.New(pool)
//	factory, err := guard.NewFactoryFromConfig(guardCfg, provider, bl)
//
// Queries join a caller transaction carried in the context via pg.WithTx.
package postgres
