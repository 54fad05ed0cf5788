// Package logger builds slog loggers and provides attribute helpers shared by
// the UI engine, the router and the dev server.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithLevelString(cfg.LogLevel),
//	)
//
//	log.Debug("route matched",
//		logger.Route("/product/:productId"),
//		logger.Path("/product/42"),
//	)
//
// Helpers such as Error, Component and Route return an empty attribute for zero
// inputs, which slog omits, so call sites never need nil checks.
//
// Libraries in this module take a logger through a WithLogger option and default
// to Discard.
package logger
