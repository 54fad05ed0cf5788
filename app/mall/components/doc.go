// Package components contains the storefront building blocks: headers, footer,
// search and filters, the product grid and cards, and the detail page parts.
//
// Components that navigate, read the catalog or touch the cart are built from a
// *Deps. Parent components pass data and callbacks down as props; callbacks are plain
// funcs stored under the Prop* keys.
package components
