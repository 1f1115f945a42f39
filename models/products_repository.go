package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// orderByID keeps preloaded relations stable between identical reads.
func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// GetAllProducts returns every product with its categories, in the store's
// natural order.
func (r *ProductsRepository) GetAllProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).
		Preload("Categories", orderByID).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Categories", orderByID).
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductsRepository) GetByName(ctx context.Context, name string) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Categories", orderByID).
		Where("name = ?", name).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts the product row only; associations are managed with
// AddCategory and RemoveCategory.
func (r *ProductsRepository) CreateProduct(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(product).Error; err != nil {
		return fmt.Errorf("create product %q: %w", product.Name, classify(err))
	}
	return nil
}

// Categories re-reads the categories currently linked to a product.
func (r *ProductsRepository) Categories(ctx context.Context, productID uint) ([]Category, error) {
	if err := r.exists(ctx, productID); err != nil {
		return nil, err
	}

	categories := []Category{}
	if err := r.db.WithContext(ctx).
		Joins("JOIN product_categories ON product_categories.category_id = category.id").
		Where("product_categories.product_id = ?", productID).
		Order("category.id").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// AddCategory links a product to a category. Linking an already linked pair
// is a no-op.
func (r *ProductsRepository) AddCategory(ctx context.Context, productID, categoryID uint) error {
	if err := r.exists(ctx, productID); err != nil {
		return err
	}
	if err := categoryExists(ctx, r.db, categoryID); err != nil {
		return err
	}

	link := ProductCategory{ProductID: productID, CategoryID: categoryID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error; err != nil {
		return fmt.Errorf("link product %d to category %d: %w", productID, categoryID, classify(err))
	}
	return nil
}

// RemoveCategory deletes the link between a product and a category, if any.
func (r *ProductsRepository) RemoveCategory(ctx context.Context, productID, categoryID uint) error {
	if err := r.exists(ctx, productID); err != nil {
		return err
	}
	if err := categoryExists(ctx, r.db, categoryID); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND category_id = ?", productID, categoryID).
		Delete(&ProductCategory{}).Error; err != nil {
		return fmt.Errorf("unlink product %d from category %d: %w", productID, categoryID, err)
	}
	return nil
}

func (r *ProductsRepository) exists(ctx context.Context, id uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrProductNotFound
	}
	return nil
}
