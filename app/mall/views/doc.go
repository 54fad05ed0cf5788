// Package views holds markup fragments shared by the storefront components.
//
// Fragments are templ components. They compose with Join, Each, If and Repeat.
// Markup escapes string arguments; wrap trusted markup in Safe:
//
//	views.Join(
//		views.Markup(`<h2>%s</h2>`, product.Title),
//		views.Markup(`<p%s>%s</p>`, views.Safe(` class="price"`), views.Price(product.Price())),
//	)
package views
