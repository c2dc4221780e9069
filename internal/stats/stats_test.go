package stats

import (
	"testing"

	"pizzaria-be/internal/catalog"
	"pizzaria-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(name string, cat catalog.Category, price float64, qty int, size string) order.OrderItem {
	return order.OrderItem{Name: name, Category: cat, UnitPrice: price, Quantity: qty, Size: size, Crust: catalog.CrustTraditional}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Orders)
	assert.Zero(t, s.Revenue)
	assert.NotNil(t, s.Categories)
	assert.Empty(t, s.TopRevenue)
}

func TestSummarize(t *testing.T) {
	backend := 100.0
	known := item("Portuguesa", catalog.CategoryPizza, 50, 2, catalog.SizeMedium)
	known.BackendTotal = &backend

	items := []order.OrderItem{
		item("Pudim", catalog.CategoryDessert, 8, 3, catalog.SizeStandard),
		item("Calabresa", catalog.CategoryPizza, 40, 1, catalog.SizeLarge),
		known,
		item("Calabresa", catalog.CategoryPizza, 40, 1, catalog.SizeMedium),
		item("Suco Natural", catalog.CategoryBeverage, 8, 2, catalog.SizeLarge),
	}

	s := Summarize(items)
	assert.Equal(t, 5, s.Orders)

	require.Len(t, s.Categories, 3)
	assert.Equal(t, CategoryShare{Name: catalog.CategoryDessert, Quantity: 3}, s.Categories[0])
	assert.Equal(t, CategoryShare{Name: catalog.CategoryPizza, Quantity: 4}, s.Categories[1])
	assert.Equal(t, CategoryShare{Name: catalog.CategoryBeverage, Quantity: 2}, s.Categories[2])

	require.Len(t, s.TopRevenue, 4)
	assert.Equal(t, ItemRevenue{Name: "Portuguesa", Revenue: 100}, s.TopRevenue[0])
	assert.Equal(t, ItemRevenue{Name: "Calabresa", Revenue: 88}, s.TopRevenue[1])
	assert.Equal(t, ItemRevenue{Name: "Pudim", Revenue: 24}, s.TopRevenue[2])
	assert.Equal(t, ItemRevenue{Name: "Suco Natural", Revenue: 24}, s.TopRevenue[3])

	assert.Equal(t, 236.0, s.Revenue)
}

func TestSummarize_KeepsTopFive(t *testing.T) {
	var items []order.OrderItem
	for i, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		items = append(items, item(name, catalog.CategoryDessert, float64(i+1), 1, catalog.SizeStandard))
	}

	s := Summarize(items)
	require.Len(t, s.TopRevenue, TopN)
	assert.Equal(t, "G", s.TopRevenue[0].Name)
	assert.Equal(t, "C", s.TopRevenue[4].Name)
	assert.Equal(t, 28.0, s.Revenue)
}
