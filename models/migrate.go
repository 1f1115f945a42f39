package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates the catalog tables. The join table is registered
// explicitly on both sides so product_categories carries a composite primary
// key and foreign keys to product and category.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Product{}, "Categories", &ProductCategory{}); err != nil {
		return fmt.Errorf("setup product join table: %w", err)
	}
	if err := db.SetupJoinTable(&Category{}, "Products", &ProductCategory{}); err != nil {
		return fmt.Errorf("setup category join table: %w", err)
	}
	if err := db.AutoMigrate(&Product{}, &Category{}, &ProductCategory{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
