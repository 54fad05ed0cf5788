package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/storefront/app/mall/cart"
	"github.com/dmitrymomot/storefront/app/mall/views"
	"github.com/dmitrymomot/storefront/core/config"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/storage"
	"github.com/dmitrymomot/storefront/integration/database/redis"
	"github.com/dmitrymomot/storefront/integration/storage/bolt"
)

type cartOptions struct {
	store    string
	boltPath string
	redisURL string
	key      string
}

// runCart opens the cart behind the chosen backend and applies one action:
// list (default), remove <productId>... or clear.
func runCart(ctx context.Context, args []string, out io.Writer) error {
	var opts cartOptions
	fs := pflag.NewFlagSet("cart", pflag.ContinueOnError)
	fs.StringVarP(&opts.store, "store", "s", "bolt", "backend: bolt or redis")
	fs.StringVar(&opts.boltPath, "bolt-path", "storefront.db", "bbolt database file")
	fs.StringVar(&opts.redisURL, "redis-url", "", "redis connection URL (default REDIS_URL)")
	fs.StringVarP(&opts.key, "key", "k", cart.DefaultStorageKey, "storage key of the cart")

	if handled, err := parseFlags(fs, args, out); handled || err != nil {
		return err
	}

	st, closeStore, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore()

	c := cart.New(ctx, st, cart.WithStorageKey(opts.key), cart.WithLogger(logger.New(logger.WithLevelString("warn"), logger.WithOutput(os.Stderr))))
	defer c.Stop()

	rest := fs.Args()
	action := "list"
	if len(rest) > 0 {
		action, rest = rest[0], rest[1:]
	}

	switch action {
	case "list":
	case "remove":
		if len(rest) == 0 {
			return errors.New("remove needs at least one product id")
		}
		for _, id := range rest {
			if _, ok := c.Item(id); !ok {
				return fmt.Errorf("product %q is not in the cart", id)
			}
		}
		for _, id := range rest {
			c.Remove(id)
		}
	case "clear":
		c.Clear()
	default:
		return fmt.Errorf("unknown cart action %q", action)
	}

	return printCart(out, c)
}

func openStore(ctx context.Context, opts cartOptions) (storage.Storage, func(), error) {
	switch opts.store {
	case "bolt":
		st, err := bolt.Open(opts.boltPath)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	case "redis":
		var cfg redis.Config
		if opts.redisURL != "" {
			cfg = redis.Config{ConnectionURL: opts.redisURL, RetryAttempts: 1}
		} else if err := config.Load(&cfg); err != nil {
			return nil, nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return redis.NewStorage(client), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", opts.store)
	}
}

func printCart(out io.Writer, c *cart.Cart) error {
	items := c.Items()
	if len(items) == 0 {
		_, err := fmt.Fprintln(out, "cart is empty")
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tQTY\tPRICE\tSUBTOTAL")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", it.ProductID, it.Title, it.Quantity, views.Price(it.Price), views.Price(it.Subtotal()))
	}
	fmt.Fprintf(w, "\t\t%d\t\t%s\n", c.Quantity(), views.Price(c.Total()))
	return w.Flush()
}
