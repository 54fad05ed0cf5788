package components

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/storefront/app/mall/api"
	"github.com/dmitrymomot/storefront/app/mall/views"
	"github.com/dmitrymomot/storefront/core/component"
	"github.com/dmitrymomot/storefront/core/dom"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/state"
)

// Detail props.
const (
	PropCategory1        = "category1"
	PropCategory2        = "category2"
	PropCurrentProductID = "currentProductId"
)

// RelatedLimit is the number of products requested for the related list.
const RelatedLimit = 4

// Breadcrumb links the detail page back to the home list filtered by category.
func Breadcrumb(d *Deps) *component.Factory {
	return component.New(component.Definition{
		Name: "Breadcrumb",
		Template: func(v component.View) templ.Component {
			cat1, cat2 := v.Props.String(PropCategory1), v.Props.String(PropCategory2)
			return views.Join(
				views.Markup(`<nav class="mb-4"><div class="flex items-center space-x-2 text-sm text-gray-600">`+
					`<a href="/" data-breadcrumb="home" class="hover:text-blue-600 transition-colors">홈</a>`),
				views.If(cat1 != "", views.Markup(
					`<span>&gt;</span><button class="breadcrumb-link" data-category1="%s">%s</button>`,
					cat1, cat1)),
				views.If(cat1 != "" && cat2 != "", views.Markup(
					`<span>&gt;</span><button class="breadcrumb-link" data-category1="%s" data-category2="%s">%s</button>`,
					cat1, cat2, cat2)),
				views.Markup(`</div></nav>`),
			)
		},
		SetEvent: func(ev *component.Events) {
			ev.OnClick(`[data-breadcrumb="home"]`, func(_ *component.Context, e *dom.Event) error {
				e.PreventDefault()
				return d.Navigate("/")
			})
			ev.OnClick(".breadcrumb-link", func(_ *component.Context, e *dom.Event) error {
				return d.Navigate(CategoryPath(dom.Data(e.CurrentTarget, "category1"), dom.Data(e.CurrentTarget, "category2")))
			})
		},
	})
}

// ProductDetail renders the product with a quantity stepper bounded by stock and
// an add-to-cart button.
func ProductDetail(d *Deps) *component.Factory {
	return component.New(component.Definition{
		Name:         "ProductDetail",
		InitialState: func() state.State { return state.State{"quantity": 1} },
		Template: func(v component.View) templ.Component {
			pr := state.Value[*api.ProductDetail](v.Props, PropProduct)
			if pr == nil {
				return templ.NopComponent
			}
			qty := v.State.Int("quantity")
			return views.Join(
				views.Markup(`<div class="bg-white rounded-lg shadow-sm mb-6"><div class="p-4">`+
					`<div class="aspect-square bg-gray-100 rounded-lg overflow-hidden mb-4">`+
					`<img src="%s" alt="%s" class="w-full h-full object-cover product-detail-image"></div>`,
					pr.Image, pr.Title),
				views.Markup(`<div><p class="text-sm text-gray-600 mb-1">%s</p>`+
					`<h1 class="text-xl font-bold text-gray-900 mb-3">%s</h1>`,
					pr.Brand, pr.Title),
				views.Markup(`<div class="flex items-center mb-3"><div class="flex items-center product-rating" data-rating="%d">%s</div>`+
					`<span class="ml-2 text-sm text-gray-600">%d.0 (%s개 리뷰)</span></div>`,
					pr.Rating, strings.Repeat("★", max(0, min(pr.Rating, 5))), pr.Rating, views.Number(pr.ReviewCount)),
				views.Markup(`<div class="mb-4"><span class="text-2xl font-bold text-blue-600">%s</span></div>`+
					`<div class="text-sm text-gray-600 mb-4">재고 %s개</div>`+
					`<div class="text-sm text-gray-700 leading-relaxed mb-6">%s</div></div></div>`,
					views.Price(pr.Price()), views.Number(pr.Stock), pr.Description),
				views.Markup(`<div class="border-t border-gray-200 p-4"><div class="flex items-center justify-between mb-4">`+
					`<span class="text-sm font-medium text-gray-900">수량</span><div class="flex items-center">`+
					`<button id="quantity-decrease" class="w-8 h-8 border border-gray-300 rounded-l-md bg-gray-50">-</button>`+
					`<input type="number" id="quantity-input" value="%d" min="1" max="%d" class="w-16 h-8 text-center text-sm border-t border-b border-gray-300">`+
					`<button id="quantity-increase" class="w-8 h-8 border border-gray-300 rounded-r-md bg-gray-50">+</button>`+
					`</div></div>`+
					`<button id="add-to-cart-btn" data-product-id="%s" class="w-full bg-blue-600 text-white py-3 px-4 rounded-md font-medium">장바구니 담기</button>`+
					`</div></div>`,
					qty, maxQuantity(pr), pr.ProductID),
			)
		},
		SetEvent: func(ev *component.Events) {
			step := func(delta int) component.Handler {
				return func(c *component.Context, _ *dom.Event) error {
					setQuantity(c, c.State().Int("quantity")+delta)
					return nil
				}
			}
			ev.OnClick("#quantity-decrease", step(-1))
			ev.OnClick("#quantity-increase", step(1))
			ev.Add("#quantity-input", "change", func(c *component.Context, e *dom.Event) error {
				n, err := strconv.Atoi(strings.TrimSpace(e.CurrentTarget.Value()))
				if err != nil {
					n = 1
				}
				setQuantity(c, n)
				return nil
			})
			ev.OnClick("#add-to-cart-btn", func(c *component.Context, _ *dom.Event) error {
				pr := state.Value[*api.ProductDetail](c.Props(), PropProduct)
				if pr == nil {
					return nil
				}
				d.Cart.Add(CartItem(pr.Product, c.State().Int("quantity")))
				c.Logger().Debug("added to cart", logger.ID("product_id", pr.ProductID), logger.Action("add_to_cart"))
				return nil
			})
		},
	})
}

// maxQuantity is the stepper upper bound. Unknown stock does not cap it.
func maxQuantity(pr *api.ProductDetail) int {
	if pr == nil || pr.Stock < 1 {
		return 999
	}
	return pr.Stock
}

func setQuantity(c *component.Context, n int) {
	pr := state.Value[*api.ProductDetail](c.Props(), PropProduct)
	n = max(1, min(n, maxQuantity(pr)))
	update(c, state.State{"quantity": n})
}

// RelatedProducts lists other products of the same second-level category.
func RelatedProducts(d *Deps) *component.Factory {
	return component.New(component.Definition{
		Name:         "RelatedProducts",
		InitialState: func() state.State { return state.State{"loading": true, "products": []api.Product{}} },
		Template: func(v component.View) templ.Component {
			products := state.Value[[]api.Product](v.State, "products")
			var body templ.Component
			switch {
			case v.State.Bool("loading"):
				body = views.Markup(`<div class="text-center py-8 text-gray-500">로딩 중...</div>`)
			case len(products) == 0:
				body = views.Markup(`<div class="text-center py-8 text-gray-500 related-empty">관련 상품이 없습니다.</div>`)
			default:
				body = views.Join(
					views.Markup(`<div class="grid grid-cols-2 gap-3">`),
					views.Each(products, func(_ int, pr api.Product) templ.Component {
						return views.Markup(`<div class="bg-gray-50 rounded-lg p-3 related-product-card cursor-pointer" data-product-id="%s">`+
							`<div class="aspect-square bg-white rounded-md overflow-hidden mb-2">`+
							`<img src="%s" alt="%s" class="w-full h-full object-cover" loading="lazy"></div>`+
							`<h3 class="text-sm font-medium text-gray-900 mb-1 line-clamp-2">%s</h3>`+
							`<p class="text-sm font-bold text-blue-600">%s</p></div>`,
							pr.ProductID, pr.Image, pr.Title, pr.Title, views.Price(pr.Price()))
					}),
					views.Markup(`</div>`),
				)
			}
			return views.Join(
				views.Markup(`<div class="bg-white rounded-lg shadow-sm"><div class="p-4 border-b border-gray-200">`+
					`<h2 class="text-lg font-bold text-gray-900">관련 상품</h2>`+
					`<p class="text-sm text-gray-600">같은 카테고리의 다른 상품들</p></div><div class="p-4">`),
				body,
				views.Markup(`</div></div>`),
			)
		},
		Setup: func(c *component.Context) {
			props := c.Props()
			category2 := props.String(PropCategory2)
			current := props.String(PropCurrentProductID)
			if category2 == "" {
				update(c, state.State{"loading": false, "products": []api.Product{}})
				return
			}
			c.Go(func(ctx context.Context) func() {
				page, err := d.Catalog.Products(ctx, api.ProductsQuery{Category2: category2, Limit: RelatedLimit})
				return func() {
					if err != nil {
						c.Logger().Warn("related products load failed", logger.Error(err))
						update(c, state.State{"loading": false, "products": []api.Product{}})
						return
					}
					related := slices.DeleteFunc(slices.Clone(page.Products), func(pr api.Product) bool {
						return pr.ProductID == current
					})
					update(c, state.State{"loading": false, "products": related})
				}
			})
		},
		SetEvent: func(ev *component.Events) {
			ev.OnClick(".related-product-card", func(_ *component.Context, e *dom.Event) error {
				return d.Navigate(ProductPath(dom.Data(e.CurrentTarget, "product-id")))
			})
		},
	})
}
