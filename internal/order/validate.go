package order

import (
	"strings"

	"pizzaria-be/internal/catalog"
)

// ValidateItem checks an order before it is submitted: customer name, phone
// and address are required, the quantity must be positive and every removed
// ingredient must belong to the product recipe.
func ValidateItem(item OrderItem) error {
	switch {
	case strings.TrimSpace(item.Customer) == "":
		return &ValidationError{Field: "cliente", Message: "customer name is required"}
	case strings.TrimSpace(item.Phone) == "":
		return &ValidationError{Field: "telefone", Message: "phone is required"}
	case strings.TrimSpace(item.Address) == "":
		return &ValidationError{Field: "endereco", Message: "delivery address is required"}
	case !item.Category.Valid():
		return &ValidationError{Field: "categoria", Message: "unknown category " + string(item.Category)}
	case strings.TrimSpace(item.Name) == "":
		return &ValidationError{Field: "nome", Message: "item name is required"}
	case item.Quantity < 1:
		return &ValidationError{Field: "quantidade", Message: "quantity must be at least 1"}
	}

	if len(item.RemovedIngredients) == 0 {
		return nil
	}

	product, ok := catalog.ByID(item.ProductID)
	if !ok {
		product, ok = catalog.ByName(item.Category, item.Name)
	}
	if !ok {
		return &ValidationError{Field: "removedIngredients", Message: "product not on the menu"}
	}
	for _, ing := range item.RemovedIngredients {
		if !product.HasIngredient(ing) {
			return &ValidationError{Field: "removedIngredients", Message: ing + " is not an ingredient of " + product.Name}
		}
	}
	return nil
}
