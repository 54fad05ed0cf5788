package pages

import (
	"context"
	"slices"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/storefront/app/mall/api"
	"github.com/dmitrymomot/storefront/app/mall/components"
	"github.com/dmitrymomot/storefront/app/mall/views"
	"github.com/dmitrymomot/storefront/core/component"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/state"
)

// Home state keys.
const (
	keyProducts          = "products"
	keyPagination        = "pagination"
	keyFilters           = "filters"
	keyPage              = "page"
	keyLoading           = "loading"
	keyLoadingMore       = "loadingMore"
	keyError             = "error"
	keyCategories        = "categories"
	keyCategoriesLoading = "categoriesLoading"
)

const loadFailedMessage = "상품을 불러오는데 실패했습니다."

// Home is the product list page. Filters are restored from the query string on
// setup and written back with a replace whenever they change.
func Home(d *components.Deps) *component.Factory {
	header := components.Header(d)
	list := components.ProductList(d)

	return component.New(component.Definition{
		Name: "Home",
		InitialState: func() state.State {
			return state.State{
				keyProducts:          []api.Product{},
				keyPagination:        api.Pagination{},
				keyFilters:           components.Filters{Sort: api.SortPriceAsc, Limit: d.PageLimit()},
				keyPage:              1,
				keyLoading:           true,
				keyLoadingMore:       false,
				keyError:             "",
				keyCategories:        api.Categories{},
				keyCategoriesLoading: true,
			}
		},
		Template: func(component.View) templ.Component {
			return views.Markup(`<div class="min-h-screen bg-gray-50">` +
				`<header id="header" class="bg-white shadow-sm sticky top-0 z-40"></header>` +
				`<main class="max-w-md mx-auto px-4 py-4">` +
				`<div id="search" class="bg-white rounded-lg shadow-sm border border-gray-200 p-4 mb-4"></div>` +
				`<div id="products-list" class="mb-6"></div>` +
				`</main>` +
				`<footer id="footer" class="bg-white shadow-sm sticky top-0 z-40"></footer>` +
				`</div>`)
		},
		Setup: func(c *component.Context) {
			h := &home{deps: d, c: c}
			update(c, state.State{
				keyFilters:   h.restoreFilters(),
				"onFilters":  h.setFilters,
				"onRetry":    func() { h.load(1) },
				"onLoadMore": h.loadMore,
			})
			h.loadCategories()
			h.load(1)

			c.OnStateChange(
				func(st state.State) []any {
					f := state.Value[components.Filters](st, keyFilters)
					return []any{f.Search, f.Category1, f.Category2, f.Sort, f.Limit}
				},
				func(current, _ state.State) {
					h.syncQuery(state.Value[components.Filters](current, keyFilters))
					h.load(1)
				},
			)
		},
		Children: func(v component.View, m *component.Mounter) {
			st := v.State
			pagination := state.Value[api.Pagination](st, keyPagination)

			m.Mount(header, "#header", nil)
			m.Mount(components.Search, "#search", state.State{
				components.PropFilters:           state.Value[components.Filters](st, keyFilters),
				components.PropCategories:        state.Value[api.Categories](st, keyCategories),
				components.PropCategoriesLoading: st.Bool(keyCategoriesLoading),
				components.PropOnFilters:         st["onFilters"],
			})
			m.Mount(list, "#products-list", state.State{
				components.PropProducts:    state.Value[[]api.Product](st, keyProducts),
				components.PropTotal:       pagination.Total,
				components.PropHasNext:     pagination.HasNext,
				components.PropLoading:     st.Bool(keyLoading),
				components.PropLoadingMore: st.Bool(keyLoadingMore),
				components.PropError:       st.String(keyError),
				components.PropOnRetry:     st["onRetry"],
				components.PropOnLoadMore:  st["onLoadMore"],
			})
			m.Mount(components.Footer, "#footer", nil)
		},
	})
}

// home carries the Setup closures of one Home instance.
type home struct {
	deps *components.Deps
	c    *component.Context
	seq  int
}

func (h *home) restoreFilters() components.Filters {
	r, err := h.deps.Router()
	if err != nil {
		h.c.Logger().Warn("router unavailable, using default filters", logger.Error(err))
		return components.Filters{Sort: api.SortPriceAsc, Limit: h.deps.PageLimit()}
	}
	return components.FiltersFromQuery(r.Query(), h.deps.PageLimit())
}

func (h *home) setFilters(f components.Filters) {
	if f.Limit < 1 {
		f.Limit = h.deps.PageLimit()
	}
	if f.Sort == "" {
		f.Sort = api.SortPriceAsc
	}
	update(h.c, state.State{keyFilters: f})
}

func (h *home) syncQuery(f components.Filters) {
	r, err := h.deps.Router()
	if err != nil {
		return
	}
	r.UpdateQuery(f.Query(h.deps.PageLimit()), true)
}

// load fetches page. Page 1 replaces the list, later pages append to it.
// Responses to superseded requests are dropped.
func (h *home) load(page int) {
	h.seq++
	seq := h.seq
	st := h.c.State()
	f := state.Value[components.Filters](st, keyFilters)
	more := page > 1

	if more {
		update(h.c, state.State{keyLoadingMore: true, keyError: ""})
	} else {
		update(h.c, state.State{keyLoading: true, keyError: ""})
	}

	h.c.Go(func(ctx context.Context) func() {
		res, err := h.deps.Catalog.Products(ctx, f.ProductsQuery(page))
		return func() {
			if seq != h.seq {
				return
			}
			if err != nil {
				h.c.Logger().Error("product list load failed", logger.Count("page", page), logger.Error(err))
				update(h.c, state.State{keyLoading: false, keyLoadingMore: false, keyError: loadFailedMessage})
				return
			}
			products := res.Products
			if more {
				products = slices.Concat(state.Value[[]api.Product](h.c.State(), keyProducts), res.Products)
			}
			update(h.c, state.State{
				keyProducts:    products,
				keyPagination:  res.Pagination,
				keyPage:        page,
				keyLoading:     false,
				keyLoadingMore: false,
			})
		}
	})
}

func (h *home) loadMore() {
	st := h.c.State()
	if st.Bool(keyLoading) || st.Bool(keyLoadingMore) {
		return
	}
	if !state.Value[api.Pagination](st, keyPagination).HasNext {
		return
	}
	h.load(st.Int(keyPage) + 1)
}

func (h *home) loadCategories() {
	h.c.Go(func(ctx context.Context) func() {
		cats, err := h.deps.Catalog.Categories(ctx)
		return func() {
			if err != nil {
				h.c.Logger().Warn("categories load failed", logger.Error(err))
				cats = api.Categories{}
			}
			update(h.c, state.State{keyCategories: cats, keyCategoriesLoading: false})
		}
	})
}
