package pricing

import "pizzaria-be/internal/catalog"

// Fallback prices used when an item name is not in the book.
const (
	DefaultPizzaPrice    = 40.0
	DefaultBeveragePrice = 8.0
	DefaultDessertPrice  = 10.0
)

// Charge carries the flat, category-specific fields of a stored order that
// take part in pricing.
type Charge struct {
	PizzaName     string
	PizzaSize     string
	PizzaQuantity int
	CrustFilled   bool

	BeverageName     string
	BeverageSize     string
	BeverageQuantity int

	DessertName     string
	DessertQuantity int

	ExtraItemPrice float64
}

// PriceBook is the server side price authority. It never looks at a price
// sent by the client, only at names, sizes and quantities.
type PriceBook struct {
	Pizzas    map[string]float64
	Beverages map[string]float64
	Desserts  map[string]float64

	// PizzaSizes prices pizzas whose name is not in Pizzas.
	PizzaSizes map[string]float64
}

// DefaultPriceBook builds the book from the menu.
func DefaultPriceBook() *PriceBook {
	book := &PriceBook{
		Pizzas:    map[string]float64{},
		Beverages: map[string]float64{},
		Desserts: map[string]float64{
			"Pudim":             8,
			"Sorvete":           10,
			"Brigadeiro":        4,
			"Brownie":           12,
			"Bolo de Chocolate": 9,
		},
		PizzaSizes: map[string]float64{
			catalog.SizeSmall:  30,
			catalog.SizeMedium: 40,
			catalog.SizeLarge:  50,
			catalog.SizeFamily: 60,
		},
	}

	for _, p := range catalog.All() {
		switch p.Category {
		case catalog.CategoryPizza:
			book.Pizzas[p.Name] = p.Price
		case catalog.CategoryBeverage:
			book.Beverages[p.Name] = p.Price
		case catalog.CategoryDessert:
			book.Desserts[p.Name] = p.Price
		}
	}
	return book
}

// Quote computes the authoritative total of a charge.
func (b *PriceBook) Quote(c Charge) float64 {
	total := 0.0

	if c.PizzaQuantity > 0 {
		total += b.pizzaUnit(c.PizzaName, c.PizzaSize, c.CrustFilled) * float64(c.PizzaQuantity)
	}

	if c.BeverageQuantity > 0 {
		unit := DefaultBeveragePrice
		if base, ok := b.Beverages[c.BeverageName]; ok {
			unit = base * BeverageSizeFactor(c.BeverageSize)
		}
		total += unit * float64(c.BeverageQuantity)
	}

	if c.DessertQuantity > 0 {
		unit, ok := b.Desserts[c.DessertName]
		if !ok {
			unit = DefaultDessertPrice
		}
		total += unit * float64(c.DessertQuantity)
	}

	if c.ExtraItemPrice > 0 {
		total += c.ExtraItemPrice
	}

	return Round(total)
}

func (b *PriceBook) pizzaUnit(name, size string, filled bool) float64 {
	var unit float64
	if base, ok := b.Pizzas[name]; ok {
		unit = base * PizzaSizeFactor(size)
	} else if bySize, ok := b.PizzaSizes[size]; ok {
		unit = bySize
	} else {
		unit = DefaultPizzaPrice
	}

	if filled {
		unit += CrustSurcharge
	}
	return unit
}
