package mall

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/storefront/app/mall/api"
	"github.com/dmitrymomot/storefront/app/mall/cart"
	"github.com/dmitrymomot/storefront/app/mall/components"
	"github.com/dmitrymomot/storefront/app/mall/pages"
	"github.com/dmitrymomot/storefront/core/component"
	"github.com/dmitrymomot/storefront/core/config"
	"github.com/dmitrymomot/storefront/core/dom"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/loop"
	"github.com/dmitrymomot/storefront/core/router"
	"github.com/dmitrymomot/storefront/core/storage"
)

type App struct {
	config  Config
	doc     dom.Document
	history router.History
	storage storage.Storage
	catalog components.Catalog
	loop    *loop.Loop
	runtime *component.Runtime
	routes  *router.Manager
	cart    *cart.Cart
	outlet  *Outlet
	logger  *slog.Logger
}

type AppOption func(*App) error

// NewApp wires the storefront. A document is required; everything else has an
// in-memory or config-derived default.
func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{config: cfg}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.doc == nil {
		return nil, errors.New("document is required")
	}

	if app.logger == nil {
		app.logger = logger.New(
			logger.WithEnvironment(app.config.Env, app.config.AppName),
			logger.WithLevelString(app.config.LogLevel),
		)
	}

	if app.history == nil {
		app.history = router.NewMemoryHistory("/")
	}

	if app.storage == nil {
		app.storage = storage.NewMemory()
	}

	if app.catalog == nil {
		client, err := api.NewClient(app.config.APIBaseURL, api.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.catalog = client
	}

	if app.loop == nil {
		app.loop = loop.New(loop.WithLogger(app.logger))
	}

	app.runtime = component.NewRuntime(app.doc, component.WithLoop(app.loop), component.WithLogger(app.logger))
	app.routes = router.NewManager()
	app.outlet = NewOutlet(app.runtime)
	app.cart = cart.New(context.Background(), app.storage,
		cart.WithStorageKey(app.config.CartStorageKey),
		cart.WithLogger(app.logger),
	)

	return app, nil
}

func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		return nil
	}
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithDocument(doc dom.Document) AppOption {
	return func(app *App) error {
		if doc == nil {
			return errors.New("document cannot be nil")
		}
		app.doc = doc
		return nil
	}
}

func WithHistory(history router.History) AppOption {
	return func(app *App) error {
		if history == nil {
			return errors.New("history cannot be nil")
		}
		app.history = history
		return nil
	}
}

func WithStorage(st storage.Storage) AppOption {
	return func(app *App) error {
		if st == nil {
			return errors.New("storage cannot be nil")
		}
		app.storage = st
		return nil
	}
}

func WithCatalog(catalog components.Catalog) AppOption {
	return func(app *App) error {
		if catalog == nil {
			return errors.New("catalog cannot be nil")
		}
		app.catalog = catalog
		return nil
	}
}

func WithLoop(l *loop.Loop) AppOption {
	return func(app *App) error {
		if l == nil {
			return errors.New("loop cannot be nil")
		}
		app.loop = l
		return nil
	}
}

// Routes returns the route table. "/*" must stay last.
func (app *App) Routes() []router.Route {
	deps := app.deps()
	product := app.outlet.Page(pages.Product(deps))
	notFound := app.outlet.Page(pages.NotFound(deps))
	return []router.Route{
		{Path: "/", Page: app.outlet.Page(pages.Home(deps))},
		{Path: "/product", Page: product},
		{Path: "/product/:productId", Page: product},
		{Path: pages.NotFoundPath, Page: notFound},
		{Path: "/*", Page: notFound},
	}
}

// Start initializes the router and renders the current location. It must run on
// the UI loop once the loop is started.
func (app *App) Start() error {
	_, err := app.routes.Init(app.history, app.Routes(),
		router.WithBasePath(app.config.BasePath),
		router.WithRootSelector(app.config.RootSelector),
		router.WithLogger(app.logger),
		router.WithDispatcher(app.runtime.Dispatch),
	)
	if err != nil {
		return err
	}
	app.logger.Info("storefront started",
		logger.Path(app.history.Location()),
		logger.Count("items_in_cart", app.cart.Len()),
	)
	return nil
}

// Run provides errgroup compatibility. It starts the app on the loop and drives
// the loop until ctx is done, then tears the app down.
func (app *App) Run(ctx context.Context) func() error {
	return func() error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		var startErr error
		app.loop.Dispatch(func() {
			if startErr = app.Start(); startErr != nil {
				app.logger.Error("storefront start failed", logger.Error(startErr))
				cancel()
			}
		})
		err := app.loop.Run(ctx)()
		app.Stop()
		if startErr != nil {
			return startErr
		}
		return err
	}
}

// Stop destroys the mounted page and the router and detaches cart persistence.
// Call it on the loop, or after the loop has exited.
func (app *App) Stop() {
	app.outlet.Destroy()
	app.routes.Destroy()
	app.cart.Stop()
}

func (app *App) Config() Config {
	return app.config
}

func (app *App) Logger() *slog.Logger {
	return app.logger
}

func (app *App) Runtime() *component.Runtime {
	return app.runtime
}

func (app *App) Cart() *cart.Cart {
	return app.cart
}

func (app *App) Outlet() *Outlet {
	return app.outlet
}

// Router returns the live router, or router.ErrNotInitialized before Start.
func (app *App) Router() (*router.Router, error) {
	return app.routes.Router()
}

func (app *App) deps() *components.Deps {
	return &components.Deps{
		Catalog:  app.catalog,
		Cart:     app.cart,
		Routes:   app.routes,
		PageSize: app.config.PageSize,
	}
}
