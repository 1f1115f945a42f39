// Package schemas converts catalog records to and from their JSON shapes.
//
// Every entity has a plain form holding only its own fields and a full form
// that adds the related entities in their plain form. The full form never
// nests a back-reference, so encoding always terminates.
package schemas

import (
	"github.com/shopfront/catalog-service/models"
)

type PlainCategory struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PlainProduct struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
}

// Product is the full product form.
type Product struct {
	PlainProduct
	Categories []PlainCategory `json:"categories"`
}

// Category is the full category form.
type Category struct {
	PlainCategory
	Products []PlainProduct `json:"products"`
}

func DumpPlainProduct(p models.Product) PlainProduct {
	return PlainProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Qty:         p.Qty,
	}
}

func DumpPlainCategory(c models.Category) PlainCategory {
	return PlainCategory{
		ID:   c.ID,
		Name: c.Name,
	}
}

// DumpProduct returns the full form of p. A product without categories gets
// an empty, non-nil list.
func DumpProduct(p models.Product) Product {
	categories := make([]PlainCategory, len(p.Categories))
	for i, c := range p.Categories {
		categories[i] = DumpPlainCategory(c)
	}
	return Product{
		PlainProduct: DumpPlainProduct(p),
		Categories:   categories,
	}
}

// DumpCategory returns the full form of c. A category without products gets
// an empty, non-nil list.
func DumpCategory(c models.Category) Category {
	products := make([]PlainProduct, len(c.Products))
	for i, p := range c.Products {
		products[i] = DumpPlainProduct(p)
	}
	return Category{
		PlainCategory: DumpPlainCategory(c),
		Products:      products,
	}
}

// DumpProducts keeps the order of products.
func DumpProducts(products []models.Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = DumpProduct(p)
	}
	return out
}

// DumpCategories keeps the order of categories.
func DumpCategories(categories []models.Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = DumpCategory(c)
	}
	return out
}
