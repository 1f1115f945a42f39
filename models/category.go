package models

// Category represents a product category.
// Its name is unique across all categories.
type Category struct {
	ID       uint      `gorm:"primaryKey"`
	Name     string    `gorm:"size:100;uniqueIndex;not null"`
	Products []Product `gorm:"many2many:product_categories;"`
}

func (c *Category) TableName() string {
	return "category"
}
