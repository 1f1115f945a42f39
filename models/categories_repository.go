package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{db: db}
}

// GetAllCategories returns every category with its products.
func (r *CategoriesRepository) GetAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).
		Preload("Products", orderByID).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepository) GetByName(ctx context.Context, name string) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).
		Preload("Products", orderByID).
		Where("name = ?", name).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoriesRepository) CreateCategory(ctx context.Context, category *Category) error {
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(category).Error; err != nil {
		return fmt.Errorf("create category %q: %w", category.Name, classify(err))
	}
	return nil
}

// Products re-reads the products currently linked to a category.
func (r *CategoriesRepository) Products(ctx context.Context, categoryID uint) ([]Product, error) {
	if err := categoryExists(ctx, r.db, categoryID); err != nil {
		return nil, err
	}

	products := []Product{}
	if err := r.db.WithContext(ctx).
		Joins("JOIN product_categories ON product_categories.product_id = product.id").
		Where("product_categories.category_id = ?", categoryID).
		Order("product.id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func categoryExists(ctx context.Context, db *gorm.DB, id uint) error {
	var count int64
	if err := db.WithContext(ctx).Model(&Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
