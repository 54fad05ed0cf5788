package components

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/storefront/app/mall/api"
	"github.com/dmitrymomot/storefront/app/mall/cart"
	"github.com/dmitrymomot/storefront/core/component"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/router"
	"github.com/dmitrymomot/storefront/core/state"
)

// Catalog is the product source components read from. *api.Client implements it.
type Catalog interface {
	Products(ctx context.Context, q api.ProductsQuery) (*api.ProductsPage, error)
	Product(ctx context.Context, id string) (*api.ProductDetail, error)
	Categories(ctx context.Context) (api.Categories, error)
}

// Deps are the collaborators shared by every storefront component.
type Deps struct {
	Catalog  Catalog
	Cart     *cart.Cart
	Routes   *router.Manager
	PageSize int
}

// Router returns the live router.
func (d *Deps) Router() (*router.Router, error) {
	return d.Routes.Router()
}

// Navigate pushes path onto the live router.
func (d *Deps) Navigate(path string) error {
	r, err := d.Router()
	if err != nil {
		return err
	}
	return r.Push(path)
}

// ProductPath is the detail path of a product.
func ProductPath(id string) string {
	return "/product/" + id
}

// CategoryPath is the home path filtered by category. An empty category2 filters by category1 only.
func CategoryPath(category1, category2 string) string {
	qs := router.EncodeQuery(map[string]any{
		"category1": category1,
		"category2": category2,
	})
	if qs == "" {
		return "/"
	}
	return fmt.Sprintf("/?%s", qs)
}

// PageLimit is the configured page size or api.DefaultLimit.
func (d *Deps) PageLimit() int {
	if d.PageSize > 0 {
		return d.PageSize
	}
	return api.DefaultLimit
}

// update applies partial and logs render failures.
func update(c *component.Context, partial state.State) {
	if err := c.SetState(partial); err != nil {
		c.Logger().Error("state update failed", logger.Error(err))
	}
}
