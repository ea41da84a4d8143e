package client

import "strings"

// FilterProducts keeps the products whose name, brand or notes contain term
// (case-insensitive) and whose category matches. An empty category or "All"
// matches every category.
func FilterProducts(ps []Product, term, category string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if category != "" && category != "All" && string(p.Category) != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) &&
			!strings.Contains(strings.ToLower(p.Notes), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Interests returns the products whose id is in viewed, in catalog order and
// each at most once.
func Interests(ps []Product, viewed []int64) []Product {
	seen := make(map[int64]bool, len(viewed))
	for _, id := range viewed {
		seen[id] = true
	}
	out := make([]Product, 0)
	for _, p := range ps {
		if seen[p.ID] {
			out = append(out, p)
			seen[p.ID] = false
		}
	}
	return out
}
