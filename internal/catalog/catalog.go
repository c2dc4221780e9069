package catalog

import (
	"fmt"
	"strings"
)

// FilterAll disables category filtering in Filter.
const FilterAll = "all"

func img(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/400/300", id)
}

var pizzas = []Product{
	{ID: "p1", Name: "4 Queijos", Price: 48, Category: CategoryPizza, Image: img("p1"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Parmesão", "Provolone", "Gorgonzola", "Orégano"}},
	{ID: "p2", Name: "Atum", Price: 42, Category: CategoryPizza, Image: img("p2"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Atum Sólido", "Cebola", "Orégano"}},
	{ID: "p3", Name: "Banana com Doce de Leite", Price: 44, Category: CategoryPizza, Image: img("p3"), Ingredients: []string{"Muçarela", "Banana", "Doce de Leite", "Canela"}},
	{ID: "p4", Name: "Brócolis com Catupiry", Price: 42, Category: CategoryPizza, Image: img("p4"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Brócolis", "Catupiry", "Alho Frito"}},
	{ID: "p5", Name: "Calabresa", Price: 40, Category: CategoryPizza, Image: img("p5"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Calabresa Fatiada", "Cebola", "Azeitona"}},
	{ID: "p6", Name: "Camarão com Catupiry", Price: 55, Category: CategoryPizza, Image: img("p6"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Camarão", "Catupiry", "Salsinha"}},
	{ID: "p7", Name: "Chocolate", Price: 38, Category: CategoryPizza, Image: img("p7"), Ingredients: []string{"Muçarela", "Chocolate ao Leite", "Granulado"}},
	{ID: "p8", Name: "Frango com Catupiry", Price: 45, Category: CategoryPizza, Image: img("p8"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Frango Desfiado", "Catupiry", "Milho"}},
	{ID: "p9", Name: "Milho com Bacon", Price: 44, Category: CategoryPizza, Image: img("p9"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Milho Verde", "Bacon Crocante"}},
	{ID: "p10", Name: "Moda da Casa", Price: 48, Category: CategoryPizza, Image: img("p10"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Presunto", "Ovo", "Ervilha", "Palmito", "Cebola"}},
	{ID: "p11", Name: "Muçarela", Price: 35, Category: CategoryPizza, Image: img("p11"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Rodelas de Tomate", "Orégano"}},
	{ID: "p12", Name: "Napolitana", Price: 40, Category: CategoryPizza, Image: img("p12"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Rodelas de Tomate", "Parmesão", "Alho"}},
	{ID: "p13", Name: "Pepperoni", Price: 48, Category: CategoryPizza, Image: img("p13"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Pepperoni", "Orégano"}},
	{ID: "p14", Name: "Portuguesa", Price: 50, Category: CategoryPizza, Image: img("p14"), Ingredients: []string{"Molho de Tomate", "Muçarela", "Presunto", "Ovo", "Cebola", "Ervilha", "Azeitona"}},
}

var desserts = []Product{
	{ID: "s1", Name: "Brownie", Price: 12, Category: CategoryDessert, Image: img("s1"), Ingredients: []string{"Chocolate", "Nozes"}},
	{ID: "s2", Name: "Sorvete", Price: 10, Category: CategoryDessert, Image: img("s2"), Ingredients: []string{"Leite", "Baunilha"}},
	{ID: "s3", Name: "Pudim", Price: 8, Category: CategoryDessert, Image: img("s3"), Ingredients: []string{"Leite Condensado", "Ovos"}},
	{ID: "s4", Name: "Bolo de Chocolate", Price: 9, Category: CategoryDessert, Image: img("s4"), Ingredients: []string{"Chocolate", "Farinha"}},
	{ID: "s7", Name: "Brigadeiro", Price: 4, Category: CategoryDessert, Image: img("s7"), Ingredients: []string{"Chocolate", "Leite Condensado"}},
}

var beverages = []Product{
	{ID: "b1", Name: "Coca-Cola Lata", Price: 6, Category: CategoryBeverage, Image: img("b1"), Ingredients: []string{}},
	{ID: "b5", Name: "Suco Natural", Price: 8, Category: CategoryBeverage, Image: img("b5"), Ingredients: []string{"Laranja", "Gelo"}},
	{ID: "b6", Name: "Água Mineral", Price: 4, Category: CategoryBeverage, Image: img("b6"), Ingredients: []string{}},
}

// All returns a copy of the full menu: pizzas, then desserts, then beverages.
func All() []Product {
	out := make([]Product, 0, len(pizzas)+len(desserts)+len(beverages))
	out = append(out, pizzas...)
	out = append(out, desserts...)
	out = append(out, beverages...)
	return out
}

func ByID(id string) (Product, bool) {
	for _, p := range All() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ByName looks a product up by its display name within a category.
func ByName(category Category, name string) (Product, bool) {
	for _, p := range All() {
		if p.Category == category && p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// Filter returns the products of category (or every category for FilterAll)
// whose name, category and ingredients contain every whitespace separated
// term of search, case-insensitively.
func Filter(category string, search string) []Product {
	terms := strings.Fields(strings.ToLower(search))

	out := make([]Product, 0)
	for _, p := range All() {
		if category != "" && category != FilterAll && string(p.Category) != category {
			continue
		}
		if len(terms) == 0 {
			out = append(out, p)
			continue
		}

		searchable := strings.ToLower(p.Name + " " + string(p.Category) + " " + strings.Join(p.Ingredients, " "))
		matches := true
		for _, term := range terms {
			if !strings.Contains(searchable, term) {
				matches = false
				break
			}
		}
		if matches {
			out = append(out, p)
		}
	}
	return out
}
