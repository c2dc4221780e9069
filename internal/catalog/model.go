package catalog

type Category string

const (
	CategoryPizza    Category = "pizza"
	CategoryDessert  Category = "sobremesa"
	CategoryBeverage Category = "bebida"
)

// Valid reports whether c is one of the three menu categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPizza, CategoryDessert, CategoryBeverage:
		return true
	}
	return false
}

// Size vocabulary. Pizzas use the first four, desserts and beverages
// default to SizeStandard and beverages may be ordered SizeLarge.
const (
	SizeSmall    = "Pequena"
	SizeMedium   = "Média"
	SizeLarge    = "Grande"
	SizeFamily   = "Família"
	SizeStandard = "Padrão"
)

// Crust types, only meaningful for pizzas.
const (
	CrustThin        = "Fina"
	CrustTraditional = "Tradicional"
	CrustFilled      = "Recheada"
)

// Product is an immutable menu entry.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"nome"`
	Price       float64  `json:"preco"`
	Category    Category `json:"categoria"`
	Image       string   `json:"img"`
	Ingredients []string `json:"ingredientes"`
}

// HasIngredient reports whether name is part of the product recipe.
func (p Product) HasIngredient(name string) bool {
	for _, ing := range p.Ingredients {
		if ing == name {
			return true
		}
	}
	return false
}
