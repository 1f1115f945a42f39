// Package seed loads catalog fixtures and manages product/category links
// outside the HTTP surface.
package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopfront/catalog-service/models"
	"github.com/shopfront/catalog-service/schemas"
)

// Fixture is a set of categories and products to create, with each product
// naming the categories it belongs to.
type Fixture struct {
	Categories []*models.Category
	Products   []ProductFixture
}

type ProductFixture struct {
	Product    *models.Product
	Categories []string
}

type fixtureDoc struct {
	Categories []json.RawMessage `json:"categories"`
	Products   []json.RawMessage `json:"products"`
}

// Parse reads a fixture document. Every entry is validated with the same
// schemas the HTTP handlers use.
func Parse(r io.Reader) (*Fixture, error) {
	var doc fixtureDoc
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	f := &Fixture{}
	for i, raw := range doc.Categories {
		c, err := schemas.LoadCategory(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("categories[%d]: %w", i, err)
		}
		f.Categories = append(f.Categories, c)
	}

	for i, raw := range doc.Products {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}

		var categoryNames []string
		if links, ok := fields["categories"]; ok {
			if err := json.Unmarshal(links, &categoryNames); err != nil {
				return nil, fmt.Errorf("products[%d].categories: %w", i, err)
			}
			delete(fields, "categories")
		}

		plain, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		p, err := schemas.LoadProduct(bytes.NewReader(plain))
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		f.Products = append(f.Products, ProductFixture{Product: p, Categories: categoryNames})
	}

	return f, nil
}

// Result counts what Apply changed.
type Result struct {
	Categories int
	Products   int
	Links      int
}

type Seeder struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewSeeder(db *gorm.DB, log logrus.FieldLogger) *Seeder {
	return &Seeder{db: db, log: log}
}

// writer runs catalog writes against one handle, either the store or an open
// transaction.
type writer struct {
	products   *models.ProductsRepository
	categories *models.CategoriesRepository
}

func newWriter(db *gorm.DB) *writer {
	return &writer{
		products:   models.NewProductsRepository(db),
		categories: models.NewCategoriesRepository(db),
	}
}

// Apply creates the fixture's rows in a single transaction: either every
// entry is applied or the store is left untouched. Rows whose name already
// exists are reused, so applying the same fixture twice changes nothing.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (Result, error) {
	var res Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = newWriter(tx).apply(ctx, f)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	s.log.WithFields(logrus.Fields{
		"categories": res.Categories,
		"products":   res.Products,
		"links":      res.Links,
	}).Info("fixture applied")
	return res, nil
}

func (w *writer) apply(ctx context.Context, f *Fixture) (Result, error) {
	var res Result

	for _, c := range f.Categories {
		created, err := w.ensureCategory(ctx, c)
		if err != nil {
			return res, err
		}
		if created {
			res.Categories++
		}
	}

	for _, pf := range f.Products {
		product, created, err := w.ensureProduct(ctx, pf.Product)
		if err != nil {
			return res, err
		}
		if created {
			res.Products++
		}

		linked := make(map[uint]bool, len(product.Categories))
		for _, c := range product.Categories {
			linked[c.ID] = true
		}
		for _, name := range pf.Categories {
			category, err := w.categories.GetByName(ctx, name)
			if err != nil {
				return res, fmt.Errorf("product %q: category %q: %w", product.Name, name, err)
			}
			if linked[category.ID] {
				continue
			}
			if err := w.products.AddCategory(ctx, product.ID, category.ID); err != nil {
				return res, err
			}
			linked[category.ID] = true
			res.Links++
		}
	}

	return res, nil
}

func (w *writer) ensureCategory(ctx context.Context, c *models.Category) (bool, error) {
	_, err := w.categories.GetByName(ctx, c.Name)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, models.ErrCategoryNotFound):
		if err := w.categories.CreateCategory(ctx, c); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, fmt.Errorf("find category %q: %w", c.Name, err)
	}
}

func (w *writer) ensureProduct(ctx context.Context, p *models.Product) (*models.Product, bool, error) {
	existing, err := w.products.GetByName(ctx, p.Name)
	switch {
	case err == nil:
		return existing, false, nil
	case errors.Is(err, models.ErrProductNotFound):
		if err := w.products.CreateProduct(ctx, p); err != nil {
			return nil, false, err
		}
		return p, true, nil
	default:
		return nil, false, fmt.Errorf("find product %q: %w", p.Name, err)
	}
}

// Link associates the named product and category.
func (s *Seeder) Link(ctx context.Context, productName, categoryName string) error {
	w := newWriter(s.db)
	productID, categoryID, err := w.resolve(ctx, productName, categoryName)
	if err != nil {
		return err
	}
	return w.products.AddCategory(ctx, productID, categoryID)
}

// Unlink removes the association between the named product and category.
func (s *Seeder) Unlink(ctx context.Context, productName, categoryName string) error {
	w := newWriter(s.db)
	productID, categoryID, err := w.resolve(ctx, productName, categoryName)
	if err != nil {
		return err
	}
	return w.products.RemoveCategory(ctx, productID, categoryID)
}

func (w *writer) resolve(ctx context.Context, productName, categoryName string) (uint, uint, error) {
	product, err := w.products.GetByName(ctx, productName)
	if err != nil {
		return 0, 0, fmt.Errorf("product %q: %w", productName, err)
	}
	category, err := w.categories.GetByName(ctx, categoryName)
	if err != nil {
		return 0, 0, fmt.Errorf("category %q: %w", categoryName, err)
	}
	return product.ID, category.ID, nil
}
