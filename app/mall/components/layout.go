package components

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/storefront/app/mall/cart"
	"github.com/dmitrymomot/storefront/app/mall/views"
	"github.com/dmitrymomot/storefront/core/component"
	"github.com/dmitrymomot/storefront/core/dom"
	"github.com/dmitrymomot/storefront/core/state"
)

// Header is the home header with the cart badge. The badge follows the cart store
// for as long as the header is mounted.
func Header(d *Deps) *component.Factory {
	return component.New(component.Definition{
		Name: "Header",
		InitialState: func() state.State {
			return state.State{"count": d.Cart.Len()}
		},
		Template: func(v component.View) templ.Component {
			count := v.State.Int("count")
			return views.Join(
				views.Markup(`<div class="max-w-md mx-auto px-4 py-4"><div class="flex items-center justify-between">`+
					`<h1 class="text-xl font-bold text-gray-900"><a href="/" data-link="">쇼핑몰</a></h1>`+
					`<button id="cart-icon-btn" class="relative p-2 text-gray-700 hover:text-gray-900 transition-colors">장바구니`),
				views.If(count > 0, views.Markup(
					`<span id="cart-count" class="absolute -top-1 -right-1 bg-red-500 text-white text-xs rounded-full h-5 w-5 flex items-center justify-center">%d</span>`,
					count)),
				views.Markup(`</button></div></div>`),
			)
		},
		Setup: func(c *component.Context) {
			sub := d.Cart.Subscribe(func(st state.State) {
				update(c, state.State{"count": len(cart.ItemsOf(st))})
			})
			c.OnDispose(sub.Unsubscribe)
		},
		SetEvent: func(ev *component.Events) {
			ev.OnClick("#cart-icon-btn", func(*component.Context, *dom.Event) error {
				d.Cart.Open()
				return nil
			})
			ev.OnClick(`a[data-link]`, func(_ *component.Context, e *dom.Event) error {
				e.PreventDefault()
				return d.Navigate("/")
			})
		},
	})
}

// ProductHeader is the detail page header with a back button.
func ProductHeader(d *Deps) *component.Factory {
	return component.New(component.Definition{
		Name: "ProductHeader",
		Template: func(component.View) templ.Component {
			return views.Markup(`<header class="bg-white shadow-sm sticky top-0 z-40">` +
				`<div class="max-w-md mx-auto px-4 py-4"><div class="flex items-center space-x-3">` +
				`<button id="back-btn" class="p-2 text-gray-700 hover:text-gray-900 transition-colors">&lt;</button>` +
				`<h1 class="text-lg font-bold text-gray-900">상품 상세</h1>` +
				`</div></div></header>`)
		},
		SetEvent: func(ev *component.Events) {
			ev.OnClick("#back-btn", func(*component.Context, *dom.Event) error {
				return d.Navigate("/")
			})
		},
	})
}

// Footer is the static page footer.
var Footer = component.New(component.Definition{
	Name: "Footer",
	Template: func(component.View) templ.Component {
		return views.Markup(`<div class="max-w-md mx-auto py-8 text-center text-gray-500">` +
			`<p>© 2025 항해플러스 프론트엔드 쇼핑몰</p></div>`)
	},
})
