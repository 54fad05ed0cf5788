package pages

import (
	"github.com/dmitrymomot/storefront/core/component"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/state"
)

func update(c *component.Context, partial state.State) {
	if err := c.SetState(partial); err != nil {
		c.Logger().Error("state update failed", logger.Error(err))
	}
}
