package components

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/storefront/app/mall/api"
	"github.com/dmitrymomot/storefront/app/mall/views"
	"github.com/dmitrymomot/storefront/core/component"
	"github.com/dmitrymomot/storefront/core/dom"
	"github.com/dmitrymomot/storefront/core/state"
)

// Search props.
const (
	PropFilters           = "filters"
	PropCategories        = "categories"
	PropCategoriesLoading = "categoriesLoading"
	PropOnFilters         = "onFilters"
)

// Search renders the search box, category navigation and list options.
// Every change is reported through the PropOnFilters callback, a func(Filters).
var Search = component.New(component.Definition{
	Name: "Search",
	Template: func(v component.View) templ.Component {
		f := state.Value[Filters](v.Props, PropFilters)
		cats := state.Value[api.Categories](v.Props, PropCategories)

		return views.Join(
			views.Markup(`<div class="mb-4"><div class="relative">`+
				`<input type="text" id="search-input" placeholder="상품명을 검색해보세요..." value="%s" `+
				`class="w-full pl-10 pr-4 py-2 border border-gray-300 rounded-lg"></div></div>`, f.Search),
			views.Markup(`<div class="space-y-2"><div class="flex items-center gap-2" id="category-breadcrumb">`+
				`<label class="text-sm text-gray-600">카테고리:</label>`+
				`<button data-breadcrumb="reset" class="text-xs hover:text-blue-800 hover:underline">전체</button>`),
			views.If(f.Category1 != "", views.Markup(
				`<span class="text-xs text-gray-500">&gt;</span>`+
					`<button data-breadcrumb="category1" data-category1="%s" class="text-xs hover:text-blue-800 hover:underline">%s</button>`,
				f.Category1, f.Category1)),
			views.If(f.Category2 != "", views.Markup(
				`<span class="text-xs text-gray-500">&gt;</span><span class="text-xs text-gray-600 cursor-default">%s</span>`,
				f.Category2)),
			views.Markup(`</div>`),
			categoryButtons(f, cats, v.Props.Bool(PropCategoriesLoading)),
			views.Markup(`</div>`),
			listOptions(f),
		)
	},
	SetEvent: func(ev *component.Events) {
		ev.Add("#search-input", "keydown", func(c *component.Context, e *dom.Event) error {
			if e.Key != "Enter" {
				return nil
			}
			return emitFilters(c, func(f *Filters) {
				f.Search = strings.TrimSpace(e.CurrentTarget.Value())
			})
		})
		ev.OnClick(".category1-filter-btn", func(c *component.Context, e *dom.Event) error {
			return emitFilters(c, func(f *Filters) {
				f.Category1 = dom.Data(e.CurrentTarget, "category1")
				f.Category2 = ""
			})
		})
		ev.OnClick(".category2-filter-btn", func(c *component.Context, e *dom.Event) error {
			return emitFilters(c, func(f *Filters) {
				if cat1 := dom.Data(e.CurrentTarget, "category1"); cat1 != "" {
					f.Category1 = cat1
				}
				f.Category2 = dom.Data(e.CurrentTarget, "category2")
			})
		})
		ev.OnClick(`[data-breadcrumb="reset"]`, func(c *component.Context, _ *dom.Event) error {
			return emitFilters(c, func(f *Filters) {
				f.Category1, f.Category2 = "", ""
			})
		})
		ev.OnClick(`[data-breadcrumb="category1"]`, func(c *component.Context, _ *dom.Event) error {
			return emitFilters(c, func(f *Filters) {
				f.Category2 = ""
			})
		})
		ev.Add("#limit-select", "change", func(c *component.Context, e *dom.Event) error {
			n, err := strconv.Atoi(e.CurrentTarget.Value())
			if err != nil {
				return err
			}
			return emitFilters(c, func(f *Filters) { f.Limit = n })
		})
		ev.Add("#sort-select", "change", func(c *component.Context, e *dom.Event) error {
			return emitFilters(c, func(f *Filters) { f.Sort = e.CurrentTarget.Value() })
		})
	},
})

func emitFilters(c *component.Context, change func(*Filters)) error {
	props := c.Props()
	onFilters, ok := state.Get[func(Filters)](props, PropOnFilters)
	if !ok {
		return nil
	}
	f := state.Value[Filters](props, PropFilters)
	change(&f)
	onFilters(f)
	return nil
}

func categoryButtons(f Filters, cats api.Categories, loading bool) templ.Component {
	if loading {
		return views.Markup(`<div class="flex flex-wrap gap-2"><div class="text-sm text-gray-500 italic">카테고리 로딩 중...</div></div>`)
	}
	if f.Category1 == "" {
		return views.Join(
			views.Markup(`<div class="flex flex-wrap gap-2">`),
			views.Each(cats.Primary(), func(_ int, name string) templ.Component {
				return views.Markup(`<button data-category1="%s" class="category1-filter-btn text-left px-3 py-2 text-sm rounded-md border bg-white border-gray-300 text-gray-700">%s</button>`,
					name, name)
			}),
			views.Markup(`</div>`),
		)
	}
	return views.Join(
		views.Markup(`<div class="flex flex-wrap gap-2">`),
		views.Each(cats.Secondary(f.Category1), func(_ int, name string) templ.Component {
			class := "bg-white border-gray-300 text-gray-700"
			if name == f.Category2 {
				class = "bg-blue-100 border-blue-300 text-blue-800"
			}
			return views.Markup(`<button data-category1="%s" data-category2="%s" class="category2-filter-btn text-left px-3 py-2 text-sm rounded-md border %s">%s</button>`,
				f.Category1, name, class, name)
		}),
		views.Markup(`</div>`),
	)
}

func listOptions(f Filters) templ.Component {
	return views.Join(
		views.Markup(`<div class="flex gap-2 items-center justify-between">`+
			`<div class="flex items-center gap-2"><label class="text-sm text-gray-600">개수:</label>`+
			`<select id="limit-select" class="text-sm border border-gray-300 rounded px-2 py-1">`),
		views.Each(PageSizes, func(_ int, n int) templ.Component {
			return views.Markup(`<option value="%d"%s>%d개</option>`, n, selected(n == f.Limit), n)
		}),
		views.Markup(`</select></div>`+
			`<div class="flex items-center gap-2"><label class="text-sm text-gray-600">정렬:</label>`+
			`<select id="sort-select" class="text-sm border border-gray-300 rounded px-2 py-1">`),
		views.Each(SortOptions, func(_ int, o SortOption) templ.Component {
			return views.Markup(`<option value="%s"%s>%s</option>`, o.Value, selected(o.Value == f.Sort), o.Label)
		}),
		views.Markup(`</select></div></div>`),
	)
}

func selected(ok bool) views.Safe {
	if ok {
		return ` selected=""`
	}
	return ""
}
