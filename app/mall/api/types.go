package api

import (
	"slices"
	"strconv"
	"strings"
)

// Sort orders accepted by the products endpoint.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
)

// DefaultLimit is the page size used when a query does not set one.
const DefaultLimit = 20

// Product is a catalog entry as listed by the products endpoint.
// Prices arrive as decimal strings; hprice may be empty.
type Product struct {
	ProductID   string `json:"productId"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	LowPrice    string `json:"lprice"`
	HighPrice   string `json:"hprice"`
	MallName    string `json:"mallName"`
	ProductType string `json:"productType"`
	Brand       string `json:"brand"`
	Maker       string `json:"maker"`
	Category1   string `json:"category1"`
	Category2   string `json:"category2"`
	Category3   string `json:"category3"`
	Category4   string `json:"category4"`
}

// Price returns the lowest price as an integer, 0 when it cannot be parsed.
func (p Product) Price() int {
	n, err := strconv.Atoi(strings.TrimSpace(p.LowPrice))
	if err != nil {
		return 0
	}
	return n
}

// ProductDetail is a product with the fields only the detail endpoint returns.
type ProductDetail struct {
	Product
	Description string   `json:"description"`
	Rating      int      `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
}

// Pagination describes the page a list response covers.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Filters are the filters the server applied to a list response.
type Filters struct {
	Search    string `json:"search"`
	Category1 string `json:"category1"`
	Category2 string `json:"category2"`
	Sort      string `json:"sort"`
}

// ProductsQuery selects a page of products. Zero values fall back to page 1,
// DefaultLimit and SortPriceAsc; empty filters are not sent.
type ProductsQuery struct {
	Page      int
	Limit     int
	Search    string
	Category1 string
	Category2 string
	Sort      string
}

// ProductsPage is the products endpoint response.
type ProductsPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
	Filters    Filters    `json:"filters"`
}

// Categories maps each first-level category to its second-level categories.
type Categories map[string]map[string]any

// Primary returns the first-level categories sorted.
func (c Categories) Primary() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Secondary returns the second-level categories of category1 sorted.
func (c Categories) Secondary(category1 string) []string {
	sub := c[category1]
	out := make([]string, 0, len(sub))
	for k := range sub {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
