package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/core/router"
)

func TestMemoryHistory(t *testing.T) {
	t.Parallel()

	h := router.NewMemoryHistory("")
	pops := 0
	remove := h.OnPopState(func() { pops++ })

	h.Push("/a")
	h.Push("/b")
	assert.Equal(t, "/b", h.Location())
	assert.Equal(t, 0, pops)

	h.Back()
	h.Back()
	h.Back()
	assert.Equal(t, "/", h.Location())
	assert.Equal(t, 2, pops)

	h.Forward()
	assert.Equal(t, "/a", h.Location())

	h.Push("/c")
	assert.Equal(t, []string{"/", "/a", "/c"}, h.Entries())
	h.Forward()
	assert.Equal(t, 3, pops)

	h.Go(-2)
	assert.Equal(t, "/", h.Location())
	assert.Equal(t, 4, pops)

	remove()
	h.Go(1)
	assert.Equal(t, 4, pops)
	assert.Equal(t, 0, h.ListenerCount())
}
