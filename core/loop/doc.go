// Package loop provides the single-threaded task queue that drives the UI.
//
// Rendering, state mutation and event handling are not safe for concurrent use.
// Goroutines doing I/O hand their results back through Dispatch, and the loop runs
// them one after another:
//
//	l := loop.New(loop.WithLogger(log))
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(l.Run(ctx))
//
//	go func() {
//		products, err := api.Products(ctx, q)
//		l.Dispatch(func() { applyProducts(products, err) })
//	}()
//
// Headless drivers and tests call RunPending instead of Start to drain the queue
// on their own goroutine.
package loop
