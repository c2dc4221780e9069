package stats

import (
	"sort"

	"pizzaria-be/internal/catalog"
	"pizzaria-be/internal/order"
	"pizzaria-be/internal/pricing"
)

// TopN is the number of items kept in the revenue ranking.
const TopN = 5

type CategoryShare struct {
	Name     catalog.Category `json:"name"`
	Quantity int              `json:"value"`
}

type ItemRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// Summary is the sales dashboard of a list of orders.
type Summary struct {
	Categories []CategoryShare `json:"categorias"`
	TopRevenue []ItemRevenue   `json:"topReceita"`
	Orders     int             `json:"pedidos"`
	Revenue    float64         `json:"receita"`
}

// Summarize aggregates quantities per category, in first seen order, and
// revenue per item name. An order counts with its stored total when known
// and its estimate otherwise.
func Summarize(items []order.OrderItem) Summary {
	sum := Summary{
		Categories: []CategoryShare{},
		TopRevenue: []ItemRevenue{},
		Orders:     len(items),
	}

	catIdx := map[catalog.Category]int{}
	revIdx := map[string]int{}

	for _, it := range items {
		i, ok := catIdx[it.Category]
		if !ok {
			i = len(sum.Categories)
			catIdx[it.Category] = i
			sum.Categories = append(sum.Categories, CategoryShare{Name: it.Category})
		}
		sum.Categories[i].Quantity += it.Quantity

		total := it.Total()
		sum.Revenue += total

		j, ok := revIdx[it.Name]
		if !ok {
			j = len(sum.TopRevenue)
			revIdx[it.Name] = j
			sum.TopRevenue = append(sum.TopRevenue, ItemRevenue{Name: it.Name})
		}
		sum.TopRevenue[j].Revenue += total
	}

	for i := range sum.TopRevenue {
		sum.TopRevenue[i].Revenue = pricing.Round(sum.TopRevenue[i].Revenue)
	}
	sum.Revenue = pricing.Round(sum.Revenue)

	sort.SliceStable(sum.TopRevenue, func(a, b int) bool {
		return sum.TopRevenue[a].Revenue > sum.TopRevenue[b].Revenue
	})
	if len(sum.TopRevenue) > TopN {
		sum.TopRevenue = sum.TopRevenue[:TopN]
	}
	return sum
}
