package pricing

import (
	"math"

	"pizzaria-be/internal/catalog"
)

// CrustSurcharge is added to every filled-crust pizza unit.
const CrustSurcharge = 5.0

var pizzaSizeFactors = map[string]float64{
	catalog.SizeSmall:  0.8,
	catalog.SizeMedium: 1.0,
	catalog.SizeLarge:  1.2,
	catalog.SizeFamily: 1.4,
}

// PizzaSizeFactor returns the multiplier for a pizza size. Unknown sizes
// are priced as Média.
func PizzaSizeFactor(size string) float64 {
	if f, ok := pizzaSizeFactors[size]; ok {
		return f
	}
	return 1.0
}

// BeverageSizeFactor returns 1.5 for a large beverage and 1 otherwise.
func BeverageSizeFactor(size string) float64 {
	if size == catalog.SizeLarge {
		return 1.5
	}
	return 1.0
}

// Estimate is the price the customer sees before the order reaches the
// store. The crust surcharge is added per unit, before the quantity is
// applied, so it scales with quantity. Unknown categories get no modifiers.
// The result is not rounded; callers round with Round when showing it.
func Estimate(base float64, quantity int, category catalog.Category, size, crust string) float64 {
	unit := base

	switch category {
	case catalog.CategoryPizza:
		unit *= PizzaSizeFactor(size)
		if crust == catalog.CrustFilled {
			unit += CrustSurcharge
		}
	case catalog.CategoryBeverage:
		unit *= BeverageSizeFactor(size)
	}

	return unit * float64(quantity)
}

// Round rounds v to cents.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
