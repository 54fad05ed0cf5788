//go:build js && wasm

// storefront-wasm runs the storefront client in the browser. Settings are read
// from the optional window.STOREFRONT_CONFIG object, keyed like the environment
// variables of mall.Config.
package main

import (
	"context"
	"net/url"
	"os"
	"strings"
	"syscall/js"

	"github.com/dmitrymomot/storefront/app/mall"
	"github.com/dmitrymomot/storefront/app/mall/api"
	"github.com/dmitrymomot/storefront/core/config"
	"github.com/dmitrymomot/storefront/core/dom/jsdom"
	"github.com/dmitrymomot/storefront/core/logger"
)

func main() {
	var cfg mall.Config
	if err := config.ParseFrom(&cfg, pageSettings()); err != nil {
		logger.New().Error("invalid storefront config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithLevelString(cfg.LogLevel),
		logger.WithTextFormatter(),
	)

	client, err := api.NewClient(resolveAPIBase(cfg.APIBaseURL), api.WithLogger(log))
	if err != nil {
		log.Error("invalid api base url", logger.Error(err))
		os.Exit(1)
	}

	app, err := mall.NewApp(
		mall.WithConfig(cfg),
		mall.WithLogger(log),
		mall.WithDocument(jsdom.New()),
		mall.WithHistory(jsdom.NewHistory()),
		mall.WithStorage(jsdom.NewLocalStorage()),
		mall.WithCatalog(client),
	)
	if err != nil {
		log.Error("failed to create storefront", logger.Error(err))
		os.Exit(1)
	}

	// The page owns the lifetime; the loop runs until the tab goes away.
	if err := app.Run(context.Background())(); err != nil {
		log.Error("storefront stopped", logger.Error(err))
		os.Exit(1)
	}
}

// pageSettings flattens window.STOREFRONT_CONFIG into string values.
func pageSettings() map[string]string {
	out := map[string]string{}
	v := js.Global().Get("STOREFRONT_CONFIG")
	if v.IsUndefined() || v.IsNull() {
		return out
	}
	keys := js.Global().Get("Object").Call("keys", v)
	for i := range keys.Length() {
		k := keys.Index(i).String()
		out[k] = v.Get(k).String()
	}
	return out
}

// resolveAPIBase makes a relative base absolute against location.origin, since
// requests from Go need a full URL.
func resolveAPIBase(base string) string {
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		return base
	}
	origin, err := url.Parse(js.Global().Get("location").Get("origin").String())
	if err != nil {
		return base
	}
	return origin.JoinPath(base).String()
}
