package components

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/storefront/app/mall/api"
)

// PageSizes are the page sizes offered by the limit select.
var PageSizes = []int{10, 20, 50, 100}

// SortOption is an entry of the sort select.
type SortOption struct {
	Value string
	Label string
}

// SortOptions are the orders offered by the sort select, in display order.
var SortOptions = []SortOption{
	{api.SortPriceAsc, "가격 낮은순"},
	{api.SortPriceDesc, "가격 높은순"},
	{api.SortNameAsc, "이름순"},
	{api.SortNameDesc, "이름 역순"},
}

// Filters is the product list filter set mirrored in the home query string.
type Filters struct {
	Search    string
	Category1 string
	Category2 string
	Sort      string
	Limit     int
}

// FiltersFromQuery restores filters from a query mapping. Unknown sort orders and
// page sizes fall back to the defaults.
func FiltersFromQuery(q map[string]string, defaultLimit int) Filters {
	f := Filters{
		Search:    strings.TrimSpace(q["search"]),
		Category1: q["category1"],
		Category2: q["category2"],
		Sort:      api.SortPriceAsc,
		Limit:     defaultLimit,
	}
	if f.Category1 == "" {
		f.Category2 = ""
	}
	if s := q["sort"]; slices.ContainsFunc(SortOptions, func(o SortOption) bool { return o.Value == s }) {
		f.Sort = s
	}
	if n, err := strconv.Atoi(q["limit"]); err == nil && slices.Contains(PageSizes, n) {
		f.Limit = n
	}
	return f
}

// Query renders f for router.UpdateQuery. Empty filters, the default sort order
// and the default page size are omitted.
func (f Filters) Query(defaultLimit int) map[string]any {
	q := map[string]any{
		"search":    f.Search,
		"category1": f.Category1,
		"category2": f.Category2,
	}
	if f.Sort != "" && f.Sort != api.SortPriceAsc {
		q["sort"] = f.Sort
	}
	if f.Limit > 0 && f.Limit != defaultLimit {
		q["limit"] = f.Limit
	}
	return q
}

// ProductsQuery builds the API query for page.
func (f Filters) ProductsQuery(page int) api.ProductsQuery {
	return api.ProductsQuery{
		Page:      page,
		Limit:     f.Limit,
		Search:    f.Search,
		Category1: f.Category1,
		Category2: f.Category2,
		Sort:      f.Sort,
	}
}
