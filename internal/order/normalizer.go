package order

import (
	"pizzaria-be/internal/catalog"
	"pizzaria-be/internal/pricing"
	"pizzaria-be/internal/utils"
)

const (
	unknownItemName  = "Item Desconhecido"
	unknownProductID = "backend-item"
)

// ToStorage flattens a client order into the creation payload. The matching
// category slot receives the item name and quantity, the others hold
// NotApplicable and zero. EstimatedTotal carries the client side price; the
// store recomputes the total it persists.
func ToStorage(item OrderItem) CreateOrderInput {
	in := CreateOrderInput{
		Customer:      item.Customer,
		Phone:         item.Phone,
		Address:       item.Address,
		PaymentMethod: item.PaymentMethod,

		PizzaName:    NotApplicable,
		PizzaSize:    catalog.SizeMedium,
		BeverageName: NotApplicable,
		DessertName:  NotApplicable,

		ExtraItem:      FormatExtraNote(item.RemovedIngredients),
		ExtraItemPrice: 0,
	}
	if item.TaxID != "" {
		in.TaxID = utils.StrPtr(item.TaxID)
	}

	switch l := item.Line().(type) {
	case PizzaLine:
		in.PizzaName = l.Name
		in.PizzaSize = l.Size
		in.PizzaQuantity = l.Quantity
		in.CrustFilled = l.Crust == catalog.CrustFilled
	case DessertLine:
		in.DessertName = l.Name
		in.DessertQuantity = l.Quantity
	case BeverageLine:
		in.BeverageName = l.Name
		in.BeverageQuantity = l.Quantity
		in.BeverageSize = l.Size
	}

	in.EstimatedTotal = pricing.Estimate(item.UnitPrice, item.Quantity, item.Category, item.Size, item.Crust)
	return in
}

// FromStorage rebuilds the client view of a stored record. See
// StoredOrder.Line for how the category is chosen. The unit price is the
// stored total divided by the quantity, and removed ingredients are left
// empty; use FromStorageWithNote to decode them from the extra item note.
func FromStorage(s StoredOrder) OrderItem {
	item := OrderItem{
		ID:                 s.ID,
		ProductID:          unknownProductID,
		Name:               unknownItemName,
		Category:           catalog.CategoryPizza,
		Quantity:           1,
		Size:               catalog.SizeMedium,
		Crust:              catalog.CrustTraditional,
		RemovedIngredients: []string{},
		Customer:           s.Customer,
		Phone:              s.Phone,
		Address:            s.Address,
		PaymentMethod:      s.PaymentMethod,
	}
	if s.CrustFilled {
		item.Crust = catalog.CrustFilled
	}

	switch l := s.Line().(type) {
	case PizzaLine:
		item.Category, item.Name, item.Quantity, item.Size = l.Category(), l.Name, l.Quantity, l.Size
	case DessertLine:
		item.Category, item.Name, item.Quantity, item.Size = l.Category(), l.Name, l.Quantity, catalog.SizeStandard
	case BeverageLine:
		item.Category, item.Name, item.Quantity, item.Size = l.Category(), l.Name, l.Quantity, l.Size
	}

	if p, ok := catalog.ByName(item.Category, item.Name); ok {
		item.ProductID = p.ID
	}

	divisor := item.Quantity
	if divisor < 1 {
		divisor = 1
	}
	item.UnitPrice = s.TotalPrice / float64(divisor)

	total := s.TotalPrice
	item.BackendTotal = &total
	createdAt := s.CreatedAt
	item.CreatedAt = &createdAt

	item.TaxID = utils.PtrString(s.TaxID)
	item.InvoiceURL = utils.PtrString(s.InvoiceURL)
	return item
}

// FromStorageWithNote is FromStorage plus the removed ingredients decoded
// from the extra item note.
func FromStorageWithNote(s StoredOrder) OrderItem {
	item := FromStorage(s)
	item.RemovedIngredients = ParseExtraNote(s.ExtraItem)
	return item
}
