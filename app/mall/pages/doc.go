// Package pages defines the storefront pages mounted by the router: Home at "/",
// Product at "/product" and "/product/:productId", and NotFound at "/404" and "/*".
package pages
