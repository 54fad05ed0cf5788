// Package server runs the storefront dev server: an http.Server with graceful
// shutdown that fits into an errgroup.
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Addresses may use port 0; Addr reports the bound address once Ready is closed.
package server
