// Package router implements client-side routing over a History backend.
//
// Route paths are matched in table order against the location with the base
// path stripped. ":name" captures one segment and a final "*" matches the rest,
// so a catch-all route belongs last:
//
//	routes := []router.Route{
//		{Path: "/", Page: home},
//		{Path: "/product/:productId", Page: product},
//		{Path: "/404", Page: notFound},
//		{Path: "/*", Page: notFound},
//	}
//
//	m := router.NewManager()
//	r, err := m.Init(history, routes, router.WithBasePath(cfg.BasePath))
//
//	_ = r.Push("/product/42")
//	r.Params() // map[productId:42]
//	r.UpdateQuery(map[string]any{"search": "shoe", "page": nil}, true)
//
// The Manager owns a single live router. Init discards the previous one along
// with its pop-state listener; Router returns ErrNotInitialized until Init runs.
//
// MemoryHistory backs tests and headless runs. The browser implementation lives
// in core/dom/jsdom.
package router
