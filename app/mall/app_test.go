package mall_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/app/mall"
	"github.com/dmitrymomot/storefront/app/mall/api"
	"github.com/dmitrymomot/storefront/app/mall/cart"
	"github.com/dmitrymomot/storefront/core/dom/memdom"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/router"
	"github.com/dmitrymomot/storefront/core/storage"
)

type catalog struct{}

func (catalog) Products(_ context.Context, q api.ProductsQuery) (*api.ProductsPage, error) {
	return &api.ProductsPage{
		Products:   []api.Product{{ProductID: "7", Title: "수건", LowPrice: "3000"}},
		Pagination: api.Pagination{Page: q.Page, Limit: q.Limit, Total: 1},
	}, nil
}

func (catalog) Product(_ context.Context, id string) (*api.ProductDetail, error) {
	if id != "7" {
		return nil, api.ErrProductNotFound
	}
	return &api.ProductDetail{Product: api.Product{ProductID: "7", Title: "수건", LowPrice: "3000"}}, nil
}

func (catalog) Categories(context.Context) (api.Categories, error) {
	return api.Categories{}, nil
}

func testConfig() mall.Config {
	return mall.Config{
		AppName:        "storefront",
		BasePath:       "/",
		RootSelector:   "#root",
		APIBaseURL:     "/api",
		CartStorageKey: "cart_test",
		PageSize:       20,
	}
}

func newApp(t *testing.T, location string, opts ...mall.AppOption) (*mall.App, *memdom.Document, *router.MemoryHistory) {
	t.Helper()
	doc := memdom.MustNew(`<div id="root"></div>`)
	history := router.NewMemoryHistory(location)
	app, err := mall.NewApp(append([]mall.AppOption{
		mall.WithConfig(testConfig()),
		mall.WithLogger(logger.Discard()),
		mall.WithDocument(doc),
		mall.WithHistory(history),
		mall.WithCatalog(catalog{}),
	}, opts...)...)
	require.NoError(t, err)
	return app, doc, history
}

func settle(t *testing.T, app *mall.App) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, app.Runtime().Settle(ctx))
}

func TestNewAppOptions(t *testing.T) {
	t.Parallel()

	_, err := mall.NewApp(mall.WithConfig(testConfig()))
	assert.Error(t, err, "document is required")

	tests := []struct {
		name string
		opt  mall.AppOption
	}{
		{"logger", mall.WithLogger(nil)},
		{"document", mall.WithDocument(nil)},
		{"history", mall.WithHistory(nil)},
		{"storage", mall.WithStorage(nil)},
		{"catalog", mall.WithCatalog(nil)},
		{"loop", mall.WithLoop(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := mall.NewApp(mall.WithDocument(memdom.MustNew(`<div id="root"></div>`)), tt.opt)
			assert.ErrorContains(t, err, "cannot be nil")
		})
	}
}

func TestNewAppRejectsBadAPIBaseURL(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.APIBaseURL = ""
	_, err := mall.NewApp(mall.WithConfig(cfg), mall.WithDocument(memdom.MustNew(`<div id="root"></div>`)))
	assert.ErrorIs(t, err, api.ErrInvalidBaseURL)
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	app, _, _ := newApp(t, "/")
	var paths []string
	for _, r := range app.Routes() {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{"/", "/product", "/product/:productId", "/404", "/*"}, paths)
}

func TestStartNavigatesBetweenPages(t *testing.T) {
	t.Parallel()

	app, doc, history := newApp(t, "/")
	require.NoError(t, app.Start())
	t.Cleanup(app.Stop)
	settle(t, app)

	home := app.Outlet().Current()
	require.NotNil(t, home)
	assert.Equal(t, "Home", home.Name())
	assert.Equal(t, 1, doc.Count(".product-card"))

	require.NoError(t, doc.Click(".product-info"))
	settle(t, app)

	assert.Equal(t, "/product/7", history.Location())
	assert.True(t, home.Destroyed())
	assert.Equal(t, "Product", app.Outlet().Current().Name())
	assert.Contains(t, doc.Text("#product-detail"), "수건")

	r, err := app.Router()
	require.NoError(t, err)
	r.Back()
	settle(t, app)
	assert.Equal(t, "/", history.Location())
	assert.Equal(t, "Home", app.Outlet().Current().Name())
}

func TestStartUnderBasePath(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.BasePath = "/shop/"
	app, doc, history := newApp(t, "/shop/product/7", mall.WithConfig(cfg))
	require.NoError(t, app.Start())
	t.Cleanup(app.Stop)
	settle(t, app)

	assert.Equal(t, "Product", app.Outlet().Current().Name())

	require.NoError(t, doc.Click("#go-to-product-list"))
	settle(t, app)
	assert.Equal(t, "/shop/", history.Location())
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	t.Parallel()

	app, doc, _ := newApp(t, "/no/such/page")
	require.NoError(t, app.Start())
	t.Cleanup(app.Stop)

	assert.Equal(t, "NotFound", app.Outlet().Current().Name())
	assert.True(t, doc.Exists("#not-found-home-btn"))
}

func TestCartPersistsUnderConfiguredKey(t *testing.T) {
	t.Parallel()

	st := storage.NewMemory()
	app, doc, _ := newApp(t, "/", mall.WithStorage(st))
	require.NoError(t, app.Start())
	t.Cleanup(app.Stop)
	settle(t, app)

	require.NoError(t, doc.Click(".add-to-cart-btn"))
	assert.Equal(t, 1, app.Cart().Len())
	assert.Equal(t, "1", doc.Text("#cart-count"))

	var items []cart.Item
	require.NoError(t, storage.LoadJSON(context.Background(), st, "cart_test", &items))
	require.Len(t, items, 1)
	assert.Equal(t, "7", items[0].ProductID)
	assert.Equal(t, 3000, items[0].Price)
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	app, _, _ := newApp(t, "/")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx)() }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return")
	}
	_, err := app.Router()
	assert.ErrorIs(t, err, router.ErrNotInitialized)
}

func TestRunReturnsStartError(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.RootSelector = "#missing"
	app, _, _ := newApp(t, "/", mall.WithConfig(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.Error(t, app.Run(ctx)())
}
