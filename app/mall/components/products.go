package components

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/storefront/app/mall/api"
	"github.com/dmitrymomot/storefront/app/mall/cart"
	"github.com/dmitrymomot/storefront/app/mall/views"
	"github.com/dmitrymomot/storefront/core/component"
	"github.com/dmitrymomot/storefront/core/dom"
	"github.com/dmitrymomot/storefront/core/state"
)

// ProductList props.
const (
	PropProducts    = "products"
	PropTotal       = "total"
	PropLoading     = "loading"
	PropLoadingMore = "loadingMore"
	PropHasNext     = "hasNext"
	PropError       = "error"
	PropOnRetry     = "onRetry"
	PropOnLoadMore  = "onLoadMore"
	PropProduct     = "product"
)

// skeletonCount is the number of placeholder cards shown while loading.
const skeletonCount = 4

// ProductList renders the product grid with its loading, error and pagination states.
// Cards are mounted as children, one per product.
func ProductList(d *Deps) *component.Factory {
	card := ProductCard(d)

	return component.New(component.Definition{
		Name: "ProductList",
		Template: func(v component.View) templ.Component {
			p := v.Props
			products := state.Value[[]api.Product](p, PropProducts)
			loadingMore := p.Bool(PropLoadingMore)
			hasNext := p.Bool(PropHasNext)

			if msg := p.String(PropError); msg != "" && !loadingMore {
				_, retry := state.Get[func()](p, PropOnRetry)
				var buttons []views.Button
				if retry {
					buttons = append(buttons, views.Button{ID: "product-list-retry-btn", Label: "다시 시도", Primary: true})
				}
				return views.ErrorPanel("문제가 발생했습니다", msg, buttons...)
			}

			if p.Bool(PropLoading) {
				return views.Join(
					views.Markup(`<div class="grid grid-cols-2 gap-4 mb-6" id="products-grid">`),
					views.Repeat(skeletonCount, views.ProductSkeleton()),
					views.Markup(`</div>`),
				)
			}

			return views.Join(
				views.Markup(`<div>`),
				views.If(len(products) > 0, views.Markup(
					`<div class="mb-4 text-sm text-gray-600">총 <span class="font-medium text-gray-900">%s개</span>의 상품</div>`,
					views.Number(p.Int(PropTotal)))),
				views.Markup(`<div class="grid grid-cols-2 gap-4 mb-6" id="products-grid">`),
				views.Each(products, func(_ int, pr api.Product) templ.Component {
					return views.Markup(`<div class="bg-white rounded-lg shadow-sm border border-gray-200 overflow-hidden product-card" data-product-id="%s"></div>`,
						pr.ProductID)
				}),
				views.If(loadingMore, views.Repeat(skeletonCount, views.ProductSkeleton())),
				views.Markup(`</div>`),
				views.If(len(products) == 0, views.Markup(
					`<div class="text-center py-12 text-gray-500 empty-products">검색 결과가 없습니다.</div>`)),
				views.If(hasNext && !loadingMore, views.Markup(
					`<div id="infinite-scroll-trigger" class="h-10 text-center">`+
						`<button id="load-more-btn" class="text-sm text-blue-600">더 보기</button></div>`)),
				views.If(loadingMore, views.InlineLoading("상품을 불러오는 중...")),
				views.If(!hasNext && len(products) > 0, views.Markup(
					`<div class="text-center py-4 text-gray-500 text-sm all-loaded">모든 상품을 불러왔습니다.</div>`)),
				views.Markup(`</div>`),
			)
		},
		Children: func(v component.View, m *component.Mounter) {
			if v.Props.String(PropError) != "" && !v.Props.Bool(PropLoadingMore) {
				return
			}
			for _, pr := range state.Value[[]api.Product](v.Props, PropProducts) {
				m.Mount(card, fmt.Sprintf(`[data-product-id="%s"]`, cssString(pr.ProductID)), state.State{PropProduct: pr})
			}
		},
		SetEvent: func(ev *component.Events) {
			ev.OnClick("#product-list-retry-btn", func(c *component.Context, _ *dom.Event) error {
				if retry, ok := state.Get[func()](c.Props(), PropOnRetry); ok {
					retry()
				}
				return nil
			})
			ev.OnClick("#load-more-btn", func(c *component.Context, _ *dom.Event) error {
				if more, ok := state.Get[func()](c.Props(), PropOnLoadMore); ok {
					more()
				}
				return nil
			})
		},
	})
}

// ProductCard renders one product of the grid into its placeholder.
// Clicking the image or the title opens the detail page; the cart button adds one unit.
func ProductCard(d *Deps) *component.Factory {
	return component.New(component.Definition{
		Name: "ProductCard",
		Template: func(v component.View) templ.Component {
			pr := state.Value[api.Product](v.Props, PropProduct)
			return views.Join(
				views.Markup(`<div class="aspect-square bg-gray-100 overflow-hidden cursor-pointer product-image">`+
					`<img src="%s" alt="%s" class="w-full h-full object-cover" loading="lazy"></div>`,
					pr.Image, pr.Title),
				views.Markup(`<div class="p-3"><div class="cursor-pointer product-info mb-3">`+
					`<h3 class="text-sm font-medium text-gray-900 line-clamp-2 mb-1">%s</h3>`+
					`<p class="text-xs text-gray-500 mb-2">%s</p>`+
					`<p class="text-lg font-bold text-gray-900">%s</p></div>`,
					pr.Title, pr.Brand, views.Price(pr.Price())),
				views.Markup(`<button class="w-full bg-blue-600 text-white text-sm py-2 px-3 rounded-md add-to-cart-btn" data-product-id="%s">장바구니 담기</button></div>`,
					pr.ProductID),
			)
		},
		SetEvent: func(ev *component.Events) {
			ev.OnClick(".add-to-cart-btn", func(c *component.Context, e *dom.Event) error {
				e.StopPropagation()
				pr := state.Value[api.Product](c.Props(), PropProduct)
				d.Cart.Add(CartItem(pr, 1))
				return nil
			})
			open := func(c *component.Context, _ *dom.Event) error {
				pr := state.Value[api.Product](c.Props(), PropProduct)
				return d.Navigate(ProductPath(pr.ProductID))
			}
			ev.OnClick(".product-image", open)
			ev.OnClick(".product-info", open)
		},
	})
}

// CartItem converts a product into a cart line.
func CartItem(pr api.Product, quantity int) cart.Item {
	return cart.Item{
		ProductID: pr.ProductID,
		Title:     pr.Title,
		Image:     pr.Image,
		Brand:     pr.Brand,
		Price:     pr.Price(),
		Quantity:  quantity,
	}
}

// cssString escapes s for a double-quoted CSS attribute selector value.
func cssString(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
