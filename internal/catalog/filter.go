package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nordixdotma/kamano/internal/models"
)

// SortKey enumerates the listing orders the storefront offers.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
	SortBrand     SortKey = "brand"
)

// PriceRange bounds the current price, inclusive on both ends.
// The zero value means no price restriction.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r PriceRange) restricted() bool {
	return r.Min != 0 || r.Max != 0
}

func (r PriceRange) contains(amount float64) bool {
	if !r.restricted() {
		return true
	}
	return amount >= r.Min && amount <= r.Max
}

// Selection is one transient set of listing filters. An empty dimension
// means no restriction on that dimension, never "exclude all".
type Selection struct {
	Query      string
	Categories []string
	Brands     []string
	PriceRange PriceRange
	SortBy     SortKey
}

// Apply returns the ordered subset of products matching the selection.
// A non-empty fixedCategory additionally restricts the listing to that exact
// category (category landing pages). The input slice is never mutated and the
// function has no other state: the zero Selection returns the catalog as-is.
func Apply(products []models.Product, sel Selection, fixedCategory string) []models.Product {
	query := strings.ToLower(strings.TrimSpace(sel.Query))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if fixedCategory != "" && p.Category != fixedCategory {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if len(sel.Categories) > 0 && !contains(sel.Categories, p.Category) {
			continue
		}
		if len(sel.Brands) > 0 && (p.Brand == "" || !contains(sel.Brands, p.Brand)) {
			continue
		}
		if !sel.PriceRange.contains(p.Price.Amount) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, sel.SortBy)
	return filtered
}

func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Amount < products[j].Price.Amount
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Amount > products[j].Price.Amount
		})
	case SortName:
		c := collate.New(language.Arabic)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortBrand:
		// Products without a brand sort first, as the empty string.
		c := collate.New(language.Arabic)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Brand, products[j].Brand) < 0
		})
	case "":
		// No sort requested: keep the catalog order.
	default:
		// Newest, and the fallback for unrecognized keys. Higher id means
		// newer, there is no timestamp in the catalog.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
