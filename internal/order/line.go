package order

import (
	"pizzaria-be/internal/catalog"
)

// Line is the category specific part of an order. It is one of PizzaLine,
// DessertLine or BeverageLine.
type Line interface {
	Category() catalog.Category
	ItemName() string
	Count() int
	isLine()
}

type PizzaLine struct {
	Name     string
	Quantity int
	Size     string
	Crust    string
}

type DessertLine struct {
	Name     string
	Quantity int
}

type BeverageLine struct {
	Name     string
	Quantity int
	Size     string
}

func (PizzaLine) Category() catalog.Category    { return catalog.CategoryPizza }
func (DessertLine) Category() catalog.Category  { return catalog.CategoryDessert }
func (BeverageLine) Category() catalog.Category { return catalog.CategoryBeverage }

func (l PizzaLine) ItemName() string    { return l.Name }
func (l DessertLine) ItemName() string  { return l.Name }
func (l BeverageLine) ItemName() string { return l.Name }

func (l PizzaLine) Count() int    { return l.Quantity }
func (l DessertLine) Count() int  { return l.Quantity }
func (l BeverageLine) Count() int { return l.Quantity }

func (PizzaLine) isLine()    {}
func (DessertLine) isLine()  {}
func (BeverageLine) isLine() {}

// Line returns the tagged line of the item, or nil for an unknown category.
func (o OrderItem) Line() Line {
	switch o.Category {
	case catalog.CategoryPizza:
		return PizzaLine{Name: o.Name, Quantity: o.Quantity, Size: o.Size, Crust: o.Crust}
	case catalog.CategoryDessert:
		return DessertLine{Name: o.Name, Quantity: o.Quantity}
	case catalog.CategoryBeverage:
		return BeverageLine{Name: o.Name, Quantity: o.Quantity, Size: o.Size}
	}
	return nil
}

// Line decodes the category slots of the record. Slots are inspected in
// fixed priority order, pizza then dessert then beverage, and the first one
// not holding NotApplicable wins. A malformed record with several populated
// slots therefore reads as its highest priority entry only. Nil is returned
// when every slot is empty.
func (s StoredOrder) Line() Line {
	switch {
	case populated(s.PizzaName):
		crust := catalog.CrustTraditional
		if s.CrustFilled {
			crust = catalog.CrustFilled
		}
		return PizzaLine{Name: s.PizzaName, Quantity: s.PizzaQuantity, Size: s.PizzaSize, Crust: crust}
	case populated(s.DessertName):
		return DessertLine{Name: s.DessertName, Quantity: s.DessertQuantity}
	case populated(s.BeverageName):
		size := s.BeverageSize
		if size == "" {
			size = catalog.SizeStandard
		}
		return BeverageLine{Name: s.BeverageName, Quantity: s.BeverageQuantity, Size: size}
	}
	return nil
}

func populated(slot string) bool {
	return slot != "" && slot != NotApplicable
}
