// storefront is the development host for the storefront client.
//
// Subcommands:
//
//	serve   serve the built client with history fallback, proxying /api to an upstream
//	cart    inspect or edit a cart persisted in a bbolt file or redis
//
// Settings come from the environment, then storefront.yaml, then flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return runServe(ctx, nil, out)
	}
	switch args[0] {
	case "serve":
		return runServe(ctx, args[1:], out)
	case "cart":
		return runCart(ctx, args[1:], out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "usage: storefront <command> [flags]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  serve   serve the storefront client (default)")
	fmt.Fprintln(out, "  cart    list, remove or clear items of a persisted cart")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "run 'storefront <command> --help' for command flags")
}

// parseFlags parses args into fs. A help request is reported as handled.
func parseFlags(fs *pflag.FlagSet, args []string, out io.Writer) (handled bool, err error) {
	fs.SetOutput(out)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
