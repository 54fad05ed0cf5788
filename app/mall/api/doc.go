// Package api is the HTTP client for the storefront product API.
//
//	client, err := api.NewClient("/api", api.WithLogger(log))
//	page, err := client.Products(ctx, api.ProductsQuery{Search: "towel", Limit: 20})
//	detail, err := client.Product(ctx, "85067212996")
//	if errors.Is(err, api.ErrProductNotFound) {
//		// render the not-found view
//	}
//
// Non-2xx responses are returned as *Error carrying the status code and the
// "error" field of the body, if any.
package api
