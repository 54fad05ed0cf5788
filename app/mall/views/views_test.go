package views_test

import (
	"context"
	"errors"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/app/mall/views"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	out, err := views.Render(context.Background(), c)
	require.NoError(t, err)
	return out
}

func TestPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "0원"},
		{990, "990원"},
		{12900, "12,900원"},
		{1234567, "1,234,567원"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, views.Price(tt.in))
	}
}

func TestComposition(t *testing.T) {
	t.Parallel()

	out := render(t, views.Join(
		views.Markup(`<h1>%s</h1>`, `<b>"x"</b>`),
		views.If(false, views.Markup(`<p>hidden</p>`)),
		views.Each([]string{"a", "b"}, func(i int, s string) templ.Component {
			return views.Markup(`<i data-i="%d">%s</i>`, i, s)
		}),
		views.Repeat(2, views.Markup(`<br>`)),
	))

	assert.Equal(t, `<h1>&lt;b&gt;&#34;x&#34;&lt;/b&gt;</h1><i data-i="0">a</i><i data-i="1">b</i><br><br>`, out)
}

func TestMarkupEscapesByDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    templ.Component
		want string
	}{
		{"string", views.Markup(`<p title="%s">%s</p>`, `"><script>`, `<script>alert(1)</script>`),
			`<p title="&#34;&gt;&lt;script&gt;">&lt;script&gt;alert(1)&lt;/script&gt;</p>`},
		{"stringer", views.Markup(`<b>%s</b>`, stringer("a&b")), `<b>a&amp;b</b>`},
		{"error", views.Markup(`<b>%s</b>`, errors.New("<nil>")), `<b>&lt;nil&gt;</b>`},
		{"number", views.Markup(`<i data-n="%d">%d</i>`, 3, 12900), `<i data-n="3">12900</i>`},
		{"safe", views.Markup(`<option%s>x</option>`, views.Safe(` selected=""`)), `<option selected="">x</option>`},
		{"no args", views.Markup(`<br>`), `<br>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, render(t, tt.c))
		})
	}
}

func TestFragmentsEscapeText(t *testing.T) {
	t.Parallel()

	out := render(t, views.Join(
		views.Spinner("<img src=x>"),
		views.ErrorPanel("<b>t</b>", "m&m", views.Button{ID: `x"y`, Label: "<i>go</i>"}),
		views.Slot("slot", `a" onclick="bad`),
	))

	assert.NotContains(t, out, "<img src=x>")
	assert.NotContains(t, out, "<b>t</b>")
	assert.NotContains(t, out, "<i>go</i>")
	assert.NotContains(t, out, `onclick="bad"`)
	assert.Contains(t, out, "m&amp;m")
	assert.Contains(t, out, `id="x&#34;y"`)
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestErrorPanel(t *testing.T) {
	t.Parallel()

	out := render(t, views.ErrorPanel("문제가 발생했습니다", "network down",
		views.Button{ID: "retry-btn", Label: "다시 시도", Primary: true},
	))

	assert.Contains(t, out, `id="retry-btn"`)
	assert.Contains(t, out, "network down")
	assert.Contains(t, out, "bg-blue-600")
}
