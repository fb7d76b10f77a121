package place

import (
	"fmt"
	"strconv"
)

// MaxPriceAll means the price filter is unbounded.
const MaxPriceAll = 0

// FilterChoices are the selectable max-price thresholds, in cycle order.
var FilterChoices = []string{"all", "10", "50", "100"}

// Filter returns the places with price <= maxPrice. A maxPrice of
// MaxPriceAll returns every place.
func Filter(places []*Place, maxPrice float64) []*Place {
	if maxPrice <= MaxPriceAll {
		return places
	}
	var out []*Place
	for _, p := range places {
		if p.Price <= maxPrice {
			out = append(out, p)
		}
	}
	return out
}

// ParseMaxPrice converts a filter choice ("all", "10", ...) into a bound
// for Filter. Empty input and "all" mean unbounded.
func ParseMaxPrice(s string) (float64, error) {
	if s == "" || s == "all" {
		return MaxPriceAll, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid max price: %q", s)
	}
	return v, nil
}

// FilterLabel describes a filter choice for display, e.g. "≤ $50".
func FilterLabel(choice string) string {
	if choice == "" || choice == "all" {
		return "all prices"
	}
	return "≤ $" + choice
}
