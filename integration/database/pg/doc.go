// Package pg provides PostgreSQL connection management for the user store:
// pgx pool creation with connection verification, goose migrations, and
// transaction-in-context helpers.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, cfg.ConnectionString, postgres.Migrations()); err != nil {
//		log.Fatal(err)
//	}
//
// WithTx lets application code run store operations inside its own
// transaction: the store resolves its Querier through QuerierFromContext and
// joins the transaction transparently.
package pg
