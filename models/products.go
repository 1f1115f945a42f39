package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
// It includes a unique name, a description, price, stock quantity and the
// categories it is filed under.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:100;uniqueIndex;not null"`
	Description string          `gorm:"size:200"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)"`
	Qty         int
	Categories  []Category `gorm:"many2many:product_categories;"`
}

func (p *Product) TableName() string {
	return "product"
}
