package pages

import (
	"context"
	"errors"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/storefront/app/mall/api"
	"github.com/dmitrymomot/storefront/app/mall/components"
	"github.com/dmitrymomot/storefront/app/mall/views"
	"github.com/dmitrymomot/storefront/core/component"
	"github.com/dmitrymomot/storefront/core/dom"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/state"
)

// NotFoundPath is where unknown products and routes end up.
const NotFoundPath = "/404"

const (
	productNotFoundMessage   = "상품을 찾을 수 없습니다."
	productLoadFailedMessage = "상품을 불러오는데 실패했습니다."
)

// Product is the detail page for the productId route parameter.
// A missing id replaces the location with NotFoundPath.
func Product(d *components.Deps) *component.Factory {
	header := components.ProductHeader(d)
	breadcrumb := components.Breadcrumb(d)
	detail := components.ProductDetail(d)
	related := components.RelatedProducts(d)

	return component.New(component.Definition{
		Name: "Product",
		InitialState: func() state.State {
			return state.State{"product": nil, "productId": "", "loading": true, "error": ""}
		},
		Template: func(v component.View) templ.Component {
			var body templ.Component
			switch {
			case v.State.Bool("loading"):
				body = views.Spinner("상품 정보를 불러오는 중...")
			case v.State.String("error") != "":
				body = views.ErrorPanel("문제가 발생했습니다", v.State.String("error"),
					views.Button{ID: "product-retry-btn", Label: "다시 시도", Primary: true},
					views.Button{ID: "go-back-btn", Label: "이전 페이지"},
					views.Button{ID: "go-home-btn", Label: "홈으로"},
				)
			default:
				body = views.Markup(`<div id="breadcrumb"></div>` +
					`<div id="product-detail" class="mb-6"></div>` +
					`<div class="mb-6"><button id="go-to-product-list" class="block w-full text-center bg-gray-100 text-gray-700 py-3 px-4 rounded-md">상품 목록으로 돌아가기</button></div>` +
					`<div id="related-products"></div>`)
			}
			return views.Join(
				views.Markup(`<div class="min-h-screen bg-gray-50"><div id="product-header"></div><main class="max-w-md mx-auto px-4 py-4">`),
				body,
				views.Markup(`</main><footer id="footer" class="bg-white shadow-sm sticky top-0 z-40"></footer></div>`),
			)
		},
		Setup: func(c *component.Context) {
			r, err := d.Router()
			if err != nil {
				c.Logger().Error("router unavailable", logger.Error(err))
				update(c, state.State{"loading": false, "error": productLoadFailedMessage})
				return
			}
			id := r.Param("productId")
			if id == "" {
				c.Dispatch(func() {
					if err := r.Replace(NotFoundPath); err != nil {
						c.Logger().Error("redirect failed", logger.Path(NotFoundPath), logger.Error(err))
					}
				})
				return
			}
			update(c, state.State{"productId": id})
			loadProduct(c, d.Catalog, id)
		},
		Children: func(v component.View, m *component.Mounter) {
			m.Mount(header, "#product-header", nil)
			m.Mount(components.Footer, "#footer", nil)

			pr := state.Value[*api.ProductDetail](v.State, "product")
			if pr == nil {
				return
			}
			m.Mount(breadcrumb, "#breadcrumb", state.State{
				components.PropCategory1: pr.Category1,
				components.PropCategory2: pr.Category2,
			})
			m.Mount(detail, "#product-detail", state.State{components.PropProduct: pr})
			m.Mount(related, "#related-products", state.State{
				components.PropCategory2:        pr.Category2,
				components.PropCurrentProductID: pr.ProductID,
			})
		},
		SetEvent: func(ev *component.Events) {
			toList := func(*component.Context, *dom.Event) error { return d.Navigate("/") }
			ev.OnClick("#go-to-product-list", toList)
			ev.OnClick("#go-home-btn", toList)
			ev.OnClick("#go-back-btn", func(*component.Context, *dom.Event) error {
				r, err := d.Router()
				if err != nil {
					return err
				}
				r.Back()
				return nil
			})
			ev.OnClick("#product-retry-btn", func(c *component.Context, _ *dom.Event) error {
				update(c, state.State{"loading": true, "error": ""})
				loadProduct(c, d.Catalog, c.State().String("productId"))
				return nil
			})
		},
	})
}

func loadProduct(c *component.Context, catalog components.Catalog, id string) {
	c.Go(func(ctx context.Context) func() {
		pr, err := catalog.Product(ctx, id)
		return func() {
			switch {
			case errors.Is(err, api.ErrProductNotFound):
				c.Logger().Info("product not found", logger.ID("product_id", id))
				update(c, state.State{"loading": false, "error": productNotFoundMessage})
			case err != nil:
				c.Logger().Error("product load failed", logger.ID("product_id", id), logger.Error(err))
				update(c, state.State{"loading": false, "error": productLoadFailedMessage})
			default:
				update(c, state.State{"loading": false, "error": "", "product": pr})
			}
		}
	})
}

// NotFound is the page for unknown routes.
func NotFound(d *components.Deps) *component.Factory {
	return component.New(component.Definition{
		Name: "NotFound",
		Template: func(component.View) templ.Component {
			return views.Markup(`<main class="max-w-md mx-auto px-4 py-4"><div class="text-center my-4 py-20 shadow-md p-6 bg-white rounded-lg">` +
				`<h1 class="text-6xl font-bold text-blue-600 mb-2">404</h1>` +
				`<p class="text-gray-600 mb-8">요청하신 페이지가 존재하지 않거나 이동되었을 수 있습니다.</p>` +
				`<a href="/" data-link="" id="not-found-home-btn" class="inline-block px-6 py-3 bg-blue-600 text-white rounded-lg">홈으로</a>` +
				`</div></main>`)
		},
		SetEvent: func(ev *component.Events) {
			ev.OnClick("#not-found-home-btn", func(_ *component.Context, e *dom.Event) error {
				e.PreventDefault()
				return d.Navigate("/")
			})
		},
	})
}
