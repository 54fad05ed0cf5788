// Package static serves the built storefront as a single page application.
//
// Existing files are served as is; any other path gets the index file so the
// client router can resolve it. API prefixes are excluded and answer 404:
//
//	spa, err := static.SPA(os.DirFS("dist"),
//		static.WithBasePath(cfg.BasePath),
//		static.WithExcludePaths("/api"),
//	)
package static
