package components_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/app/mall/api"
	"github.com/dmitrymomot/storefront/app/mall/cart"
	"github.com/dmitrymomot/storefront/app/mall/components"
	"github.com/dmitrymomot/storefront/core/component"
	"github.com/dmitrymomot/storefront/core/dom/memdom"
	"github.com/dmitrymomot/storefront/core/router"
	"github.com/dmitrymomot/storefront/core/state"
)

type fakeCatalog struct {
	mu       sync.Mutex
	products []api.Product
	err      error
	queries  []api.ProductsQuery
}

func (f *fakeCatalog) Products(_ context.Context, q api.ProductsQuery) (*api.ProductsPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return &api.ProductsPage{Products: f.products, Pagination: api.Pagination{Total: len(f.products)}}, nil
}

func (f *fakeCatalog) Product(context.Context, string) (*api.ProductDetail, error) {
	return nil, api.ErrProductNotFound
}

func (f *fakeCatalog) Categories(context.Context) (api.Categories, error) {
	return api.Categories{}, nil
}

type fixture struct {
	doc     *memdom.Document
	rt      *component.Runtime
	deps    *components.Deps
	history *router.MemoryHistory
	catalog *fakeCatalog
	visited []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		doc:     memdom.MustNew(`<div id="root"></div>`),
		history: router.NewMemoryHistory("/"),
		catalog: &fakeCatalog{},
	}
	f.rt = component.NewRuntime(f.doc)

	routes := router.NewManager()
	record := func(string) error {
		f.visited = append(f.visited, f.history.Location())
		return nil
	}
	_, err := routes.Init(f.history, []router.Route{{Path: "/*", Page: record}})
	require.NoError(t, err)

	f.deps = &components.Deps{
		Catalog: f.catalog,
		Cart:    cart.New(context.Background(), nil),
		Routes:  routes,
	}
	return f
}

func (f *fixture) mount(t *testing.T, factory *component.Factory, props state.State) *component.Instance {
	t.Helper()
	inst, err := factory.Mount(f.rt, "#root", props)
	require.NoError(t, err)
	return inst
}

func (f *fixture) settle(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, f.rt.Settle(ctx))
}

func TestHeaderFollowsCart(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	inst := f.mount(t, components.Header(f.deps), nil)
	assert.False(t, f.doc.Exists("#cart-count"))

	f.deps.Cart.Add(cart.Item{ProductID: "1", Price: 100})
	f.deps.Cart.Add(cart.Item{ProductID: "2", Price: 100})
	f.deps.Cart.Add(cart.Item{ProductID: "2", Price: 100})
	assert.Equal(t, "2", f.doc.Text("#cart-count"))

	require.NoError(t, f.doc.Click("#cart-icon-btn"))
	assert.True(t, f.deps.Cart.IsOpen())

	inst.Destroy()
	renders := inst.Renders()
	f.deps.Cart.Clear()
	assert.Equal(t, renders, inst.Renders())
}

func TestSearchEmitsFilters(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var got []components.Filters
	f.mount(t, components.Search, state.State{
		components.PropFilters: components.Filters{Sort: api.SortPriceAsc, Limit: 20},
		components.PropCategories: api.Categories{
			"생활/건강":  {"생활용품": map[string]any{}},
			"디지털/가전": {"태블릿PC": map[string]any{}},
		},
		components.PropOnFilters: func(fl components.Filters) { got = append(got, fl) },
	})

	assert.Equal(t, 2, f.doc.Count(".category1-filter-btn"))

	require.NoError(t, f.doc.Input("#search-input", "  towel "))
	require.NoError(t, f.doc.KeyDown("#search-input", "a"))
	require.NoError(t, f.doc.KeyDown("#search-input", "Enter"))
	require.NoError(t, f.doc.Click(`.category1-filter-btn[data-category1="생활/건강"]`))
	require.NoError(t, f.doc.Change("#sort-select", api.SortNameAsc))
	require.NoError(t, f.doc.Change("#limit-select", "50"))

	require.Len(t, got, 4)
	assert.Equal(t, "towel", got[0].Search)
	assert.Equal(t, "생활/건강", got[1].Category1)
	assert.Equal(t, api.SortNameAsc, got[2].Sort)
	assert.Equal(t, 50, got[3].Limit)
}

func TestSearchShowsSecondLevelCategories(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var got components.Filters
	f.mount(t, components.Search, state.State{
		components.PropFilters:    components.Filters{Category1: "생활/건강", Limit: 20},
		components.PropCategories: api.Categories{"생활/건강": {"생활용품": map[string]any{}, "주방용품": map[string]any{}}},
		components.PropOnFilters:  func(fl components.Filters) { got = fl },
	})

	assert.Equal(t, 0, f.doc.Count(".category1-filter-btn"))
	assert.Equal(t, 2, f.doc.Count(".category2-filter-btn"))

	require.NoError(t, f.doc.Click(`.category2-filter-btn[data-category2="주방용품"]`))
	assert.Equal(t, "생활/건강", got.Category1)
	assert.Equal(t, "주방용품", got.Category2)

	require.NoError(t, f.doc.Click(`[data-breadcrumb="reset"]`))
	assert.Empty(t, got.Category1)
	assert.Empty(t, got.Category2)
}

func TestProductListStates(t *testing.T) {
	t.Parallel()

	products := []api.Product{
		{ProductID: "1", Title: "Towel", LowPrice: "8900"},
		{ProductID: "2", Title: "Lamp", LowPrice: "15000"},
	}

	t.Run("loading", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.mount(t, components.ProductList(f.deps), state.State{components.PropLoading: true})
		assert.Equal(t, 4, f.doc.Count(".product-skeleton"))
	})

	t.Run("error with retry", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		retried := 0
		f.mount(t, components.ProductList(f.deps), state.State{
			components.PropError:   "network down",
			components.PropOnRetry: func() { retried++ },
		})
		assert.Contains(t, f.doc.Text(".error-message"), "network down")
		require.NoError(t, f.doc.Click("#product-list-retry-btn"))
		assert.Equal(t, 1, retried)
	})

	t.Run("more pages", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		more := 0
		inst := f.mount(t, components.ProductList(f.deps), state.State{
			components.PropProducts:   products,
			components.PropTotal:      1200,
			components.PropHasNext:    true,
			components.PropOnLoadMore: func() { more++ },
		})
		assert.Len(t, inst.Children(), 2)
		assert.Contains(t, f.doc.Text("#root"), "1,200개")
		assert.Contains(t, f.doc.Text(`[data-product-id="2"]`), "15,000원")
		assert.True(t, f.doc.Exists("#infinite-scroll-trigger"))
		assert.False(t, f.doc.Exists(".all-loaded"))

		require.NoError(t, f.doc.Click("#load-more-btn"))
		assert.Equal(t, 1, more)
	})

	t.Run("all loaded", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.mount(t, components.ProductList(f.deps), state.State{components.PropProducts: products})
		assert.True(t, f.doc.Exists(".all-loaded"))
		assert.False(t, f.doc.Exists("#load-more-btn"))
	})
}

func TestProductCard(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.mount(t, components.ProductList(f.deps), state.State{
		components.PropProducts: []api.Product{{ProductID: "7", Title: "Mug", LowPrice: "3000"}},
	})

	require.NoError(t, f.doc.Click(`.add-to-cart-btn[data-product-id="7"]`))
	require.NoError(t, f.doc.Click(`.add-to-cart-btn[data-product-id="7"]`))
	line, ok := f.deps.Cart.Item("7")
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 3000, line.Price)
	assert.Empty(t, f.visited[1:])

	require.NoError(t, f.doc.Click(`[data-product-id="7"] .product-image img`))
	assert.Equal(t, "/product/7", f.visited[len(f.visited)-1])
}

func TestProductDetailQuantity(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	detail := &api.ProductDetail{
		Product: api.Product{ProductID: "9", Title: "Chair", LowPrice: "50000"},
		Stock:   3,
		Rating:  4,
	}
	f.mount(t, components.ProductDetail(f.deps), state.State{components.PropProduct: detail})

	value := func() string {
		el, err := f.doc.Element("#quantity-input")
		require.NoError(t, err)
		return el.Value()
	}

	require.NoError(t, f.doc.Click("#quantity-decrease"))
	assert.Equal(t, "1", value())

	for range 5 {
		require.NoError(t, f.doc.Click("#quantity-increase"))
	}
	assert.Equal(t, "3", value())

	require.NoError(t, f.doc.Change("#quantity-input", "2"))
	assert.Equal(t, "2", value())

	require.NoError(t, f.doc.Click("#add-to-cart-btn"))
	line, ok := f.deps.Cart.Item("9")
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
}

func TestRelatedProductsExcludesCurrent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.catalog.products = []api.Product{
		{ProductID: "1", Title: "A", Category2: "bath"},
		{ProductID: "2", Title: "B", Category2: "bath"},
		{ProductID: "3", Title: "C", Category2: "bath"},
	}

	f.mount(t, components.RelatedProducts(f.deps), state.State{
		components.PropCategory2:        "bath",
		components.PropCurrentProductID: "2",
	})
	assert.Contains(t, f.doc.Text("#root"), "로딩 중")

	f.settle(t)
	assert.Equal(t, 2, f.doc.Count(".related-product-card"))
	assert.False(t, f.doc.Exists(`.related-product-card[data-product-id="2"]`))
	require.Len(t, f.catalog.queries, 1)
	assert.Equal(t, "bath", f.catalog.queries[0].Category2)
	assert.Equal(t, components.RelatedLimit, f.catalog.queries[0].Limit)

	require.NoError(t, f.doc.Click(`.related-product-card[data-product-id="3"] h3`))
	assert.Equal(t, "/product/3", f.visited[len(f.visited)-1])
}

func TestRelatedProductsFailureShowsEmpty(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.catalog.err = errors.New("offline")
	f.mount(t, components.RelatedProducts(f.deps), state.State{components.PropCategory2: "bath"})
	f.settle(t)

	assert.True(t, f.doc.Exists(".related-empty"))
}

func TestBreadcrumbNavigates(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.mount(t, components.Breadcrumb(f.deps), state.State{
		components.PropCategory1: "생활/건강",
		components.PropCategory2: "생활용품",
	})

	require.NoError(t, f.doc.Click(`.breadcrumb-link[data-category2]`))
	assert.Equal(t, components.CategoryPath("생활/건강", "생활용품"), f.visited[len(f.visited)-1])

	require.NoError(t, f.doc.Click(`[data-breadcrumb="home"]`))
	assert.Equal(t, "/", f.visited[len(f.visited)-1])
}

func TestFiltersQueryRoundTrip(t *testing.T) {
	t.Parallel()

	f := components.FiltersFromQuery(map[string]string{
		"search":    " towel ",
		"category2": "orphan",
		"sort":      "bogus",
		"limit":     "7",
	}, 20)
	assert.Equal(t, components.Filters{Search: "towel", Sort: api.SortPriceAsc, Limit: 20}, f)
	assert.Equal(t, "search=towel", router.EncodeQuery(f.Query(20)))

	f = components.Filters{Category1: "a", Category2: "b", Sort: api.SortNameDesc, Limit: 50}
	assert.Equal(t, "category1=a&category2=b&limit=50&sort=name_desc", router.EncodeQuery(f.Query(20)))
	assert.Equal(t, f, components.FiltersFromQuery(router.ParseQuery(router.EncodeQuery(f.Query(20))), 20))
}
