package memdom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/dom"
	"github.com/dmitrymomot/storefront/core/dom/memdom"
)

func TestQuerySelector(t *testing.T) {
	t.Parallel()

	doc := memdom.MustNew(`<div id="root"><ul><li class="item" data-id="1">One</li><li class="item" data-id="2">Two</li></ul></div>`)

	el, err := doc.QuerySelector(".item")
	require.NoError(t, err)
	assert.Equal(t, "1", dom.Data(el, "id"))
	assert.Equal(t, 2, doc.Count("li.item"))
	assert.Equal(t, "Two", doc.Text(`[data-id="2"]`))

	_, err = doc.QuerySelector("#missing")
	assert.ErrorIs(t, err, dom.ErrNotFound)

	_, err = doc.QuerySelector("[[")
	assert.ErrorIs(t, err, dom.ErrInvalidSelector)
}

func TestSetInnerHTML(t *testing.T) {
	t.Parallel()

	doc := memdom.MustNew(`<div id="root"><p>old</p></div>`)
	root, err := doc.Element("#root")
	require.NoError(t, err)

	require.NoError(t, root.SetInnerHTML(`<section id="a"><span>hi</span></section><b>x</b>`))
	assert.Equal(t, `<section id="a"><span>hi</span></section><b>x</b>`, root.InnerHTML())
	assert.Equal(t, "hix", root.TextContent())
	assert.False(t, doc.Exists("p"))

	inner, err := root.QuerySelector("span")
	require.NoError(t, err)
	assert.True(t, root.Contains(inner))
	assert.False(t, inner.Contains(root))

	closest, err := inner.Closest("section")
	require.NoError(t, err)
	id, _ := closest.Attribute("id")
	assert.Equal(t, "a", id)
}

func TestSetInnerHTMLDropsListenersOfRemovedNodes(t *testing.T) {
	t.Parallel()

	doc := memdom.MustNew(`<div id="root"><button id="btn">x</button></div>`)
	btn, err := doc.Element("#btn")
	require.NoError(t, err)
	btn.AddEventListener("click", func(*dom.Event) {})
	require.Equal(t, 1, doc.ListenerCount())

	root, err := doc.Element("#root")
	require.NoError(t, err)
	require.NoError(t, root.SetInnerHTML(`<button id="btn">y</button>`))
	assert.Equal(t, 0, doc.ListenerCount())
}

func TestEventBubbling(t *testing.T) {
	t.Parallel()

	doc := memdom.MustNew(`<div id="root"><div id="list"><button id="btn" data-id="7">go</button></div></div>`)
	root, _ := doc.Element("#root")
	list, _ := doc.Element("#list")

	var order []string
	removeRoot := root.AddEventListener("click", func(e *dom.Event) {
		order = append(order, "root")
		assert.Equal(t, "7", dom.Data(e.Target, "id"))
	})
	list.AddEventListener("click", func(e *dom.Event) {
		order = append(order, "list")
		assert.True(t, list.Contains(e.CurrentTarget))
	})
	list.AddEventListener("input", func(*dom.Event) {
		order = append(order, "input")
	})

	require.NoError(t, doc.Click("#btn"))
	assert.Equal(t, []string{"list", "root"}, order)

	removeRoot()
	removeRoot()
	order = nil
	require.NoError(t, doc.Click("#btn"))
	assert.Equal(t, []string{"list"}, order)
}

func TestStopPropagation(t *testing.T) {
	t.Parallel()

	doc := memdom.MustNew(`<div id="root"><button id="btn">go</button></div>`)
	root, _ := doc.Element("#root")
	btn, _ := doc.Element("#btn")

	reached := false
	btn.AddEventListener("click", func(e *dom.Event) { e.StopPropagation() })
	root.AddEventListener("click", func(*dom.Event) { reached = true })

	require.NoError(t, doc.Click("#btn"))
	assert.False(t, reached)
}

func TestFormValues(t *testing.T) {
	t.Parallel()

	doc := memdom.MustNew(`<div id="root">
		<input id="search" value="">
		<select id="sort"><option value="price_asc">asc</option><option value="price_desc" selected>desc</option></select>
		<select id="limit"><option>10</option><option>20</option></select>
	</div>`)

	var got []string
	root, _ := doc.Element("#root")
	root.AddEventListener("change", func(e *dom.Event) { got = append(got, e.Value()) })
	root.AddEventListener("keydown", func(e *dom.Event) { got = append(got, e.Key+":"+e.Value()) })

	sortEl, _ := doc.Element("#sort")
	assert.Equal(t, "price_desc", sortEl.Value())
	limitEl, _ := doc.Element("#limit")
	assert.Equal(t, "10", limitEl.Value())

	require.NoError(t, doc.Change("#sort", "price_asc"))
	require.NoError(t, doc.Change("#limit", "20"))
	require.NoError(t, doc.Input("#search", "shoe"))
	require.NoError(t, doc.KeyDown("#search", "Enter"))

	assert.Equal(t, []string{"price_asc", "20", "Enter:shoe"}, got)
	assert.ErrorIs(t, doc.Click("#nope"), dom.ErrNotFound)
}
