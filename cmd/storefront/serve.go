package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/storefront/core/config"
	"github.com/dmitrymomot/storefront/core/health"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/server"
	"github.com/dmitrymomot/storefront/core/static"
)

// DefaultConfigFile is read from the working directory unless --config says otherwise.
const DefaultConfigFile = "storefront.yaml"

type serveConfig struct {
	Server server.Config `yaml:"server"`

	AppName     string `env:"APP_NAME" envDefault:"storefront" yaml:"app_name"`
	Env         string `env:"APP_ENV" envDefault:"development" yaml:"env"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	Dir         string `env:"STOREFRONT_DIR" envDefault:"dist" yaml:"dir"`
	BasePath    string `env:"STOREFRONT_BASE_PATH" envDefault:"/" yaml:"base_path"`
	APIPrefix   string `env:"STOREFRONT_API_PREFIX" envDefault:"/api" yaml:"api_prefix"`
	APIUpstream string `env:"STOREFRONT_API_UPSTREAM" yaml:"api_upstream"`
}

// loadServeConfig resolves settings: environment, then the YAML file, then any
// flag set explicitly on the command line.
func loadServeConfig(args []string, out io.Writer) (serveConfig, bool, error) {
	var cfg serveConfig
	if err := config.Parse(&cfg); err != nil {
		return cfg, false, err
	}

	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	file := fs.StringP("config", "c", DefaultConfigFile, "YAML settings file")
	addr := fs.StringP("addr", "a", cfg.Server.Addr, "listen address")
	dir := fs.StringP("dir", "d", cfg.Dir, "directory with the built client")
	base := fs.String("base-path", cfg.BasePath, "path prefix the client is served under")
	prefix := fs.String("api-prefix", cfg.APIPrefix, "path prefix forwarded to the API upstream")
	upstream := fs.String("api-upstream", cfg.APIUpstream, "product API origin, e.g. http://localhost:3000")
	level := fs.String("log-level", cfg.LogLevel, "debug, info, warn or error")

	if handled, err := parseFlags(fs, args, out); handled || err != nil {
		return cfg, handled, err
	}

	if err := config.LoadYAML(*file, &cfg); err != nil {
		return cfg, false, err
	}

	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("addr", &cfg.Server.Addr, *addr)
	set("dir", &cfg.Dir, *dir)
	set("base-path", &cfg.BasePath, *base)
	set("api-prefix", &cfg.APIPrefix, *prefix)
	set("api-upstream", &cfg.APIUpstream, *upstream)
	set("log-level", &cfg.LogLevel, *level)

	return cfg, false, nil
}

func runServe(ctx context.Context, args []string, out io.Writer) error {
	cfg, handled, err := loadServeConfig(args, out)
	if handled || err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithLevelString(cfg.LogLevel),
	)

	handler, err := newHandler(cfg, os.DirFS(cfg.Dir), log)
	if err != nil {
		return err
	}

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log.With(logger.Component("http.server"))))
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, handler))
	eg.Go(func() error {
		select {
		case <-srv.Ready():
			log.Info("storefront is being served",
				slog.String("url", "http://"+srv.Addr()+strings.TrimRight(cfg.BasePath, "/")+"/"),
				slog.String("dir", cfg.Dir),
				slog.String("api_upstream", cfg.APIUpstream),
			)
		case <-ctx.Done():
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		log.Error("server stopped", logger.Error(err))
		return err
	}
	return nil
}

// newHandler routes health probes, the optional API proxy and the client files.
func newHandler(cfg serveConfig, fsys fs.FS, log *slog.Logger) (http.Handler, error) {
	prefix := "/" + strings.Trim(cfg.APIPrefix, "/")
	if prefix == "/" {
		return nil, errors.New("api prefix must not be empty")
	}
	mux := http.NewServeMux()

	var checks []health.Check
	if cfg.APIUpstream != "" {
		target, err := url.Parse(cfg.APIUpstream)
		if err != nil || target.Scheme == "" || target.Host == "" {
			return nil, fmt.Errorf("invalid api upstream %q", cfg.APIUpstream)
		}
		mux.Handle(prefix+"/", apiProxy(target, log))
		checks = append(checks, health.HTTPCheck(&http.Client{Timeout: 5 * time.Second}, target.String()))
	}

	mux.HandleFunc("GET /health/live", health.Liveness)
	mux.Handle("GET /health/ready", health.Readiness(log, checks...))

	spa, err := static.SPA(fsys,
		static.WithBasePath(cfg.BasePath),
		static.WithExcludePaths(prefix, "/health"),
	)
	if err != nil {
		return nil, err
	}
	mux.Handle("/", spa)

	return logRequests(log.With(logger.Component("http.request")), mux), nil
}

func apiProxy(target *url.URL, log *slog.Logger) http.Handler {
	proxy := httputil.NewSingleHostReverseProxy(target)
	director := proxy.Director
	proxy.Director = func(r *http.Request) {
		director(r)
		r.Host = target.Host
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "api upstream unavailable", logger.Path(r.URL.Path), logger.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `{"error":"api upstream unavailable"}`)
	}
	return proxy
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func logRequests(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.DebugContext(r.Context(), "request served",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.StatusCode(rec.status),
			logger.Elapsed(start),
		)
	})
}
