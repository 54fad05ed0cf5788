// Package redis connects to redis and exposes it as a core/storage backend, so
// carts can be kept server-side by the storefront tooling.
//
// Connect parses the URL (redis:// or rediss://), then pings with exponential
// backoff until the server answers or ConnectTimeout passes:
//
//	client, err := redis.Connect(ctx, redis.Config{ConnectionURL: "redis://localhost:6379/0", RetryAttempts: 3})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	st := redis.NewStorage(client, redis.WithTTL(7*24*time.Hour))
//	c := cart.New(ctx, st)
//
// Healthcheck returns a ping probe that fits health.Readiness.
//
// Storage maps core/storage keys onto prefixed redis strings ("storefront:" by
// default). Missing keys report storage.ErrNotFound; transport failures wrap
// storage.ErrStorageUnavailable.
package redis
