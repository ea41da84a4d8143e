package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"essencia/internal/domain"
)

var catalog = []Product{
	{ID: 1, Name: "Rosa Noturna", Brand: "Essência Negra", Category: domain.Feminine, Notes: "Rosa, Baunilha"},
	{ID: 2, Name: "Obsidiana Wood", Brand: "Essência Negra", Category: domain.Masculine, Notes: "Cedro, Couro"},
	{ID: 3, Name: "Aurum Citrus", Brand: "Luxe Edition", Category: domain.Unisex, Notes: "Bergamota"},
}

func names(ps []Product) []string {
	out := []string{}
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	assert.Len(t, FilterProducts(catalog, "", ""), 3)
	assert.Len(t, FilterProducts(catalog, "", "All"), 3)
	assert.Equal(t, []string{"Aurum Citrus"}, names(FilterProducts(catalog, "LUXE", "")))
	assert.Equal(t, []string{"Obsidiana Wood"}, names(FilterProducts(catalog, "couro", "Masculine")))
	assert.Empty(t, FilterProducts(catalog, "couro", "Feminine"))
	assert.Equal(t, []string{"Rosa Noturna", "Obsidiana Wood"}, names(FilterProducts(catalog, " negra ", "All")))
}

func TestInterests(t *testing.T) {
	assert.Equal(t, []string{"Rosa Noturna", "Aurum Citrus"}, names(Interests(catalog, []int64{3, 1, 3, 42})))
	assert.Empty(t, Interests(catalog, nil))
}
