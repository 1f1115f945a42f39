package models

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateName is returned when a product or category name is already taken.
	ErrDuplicateName = errors.New("name already exists")
	// ErrInvalidReference is returned when an association points at a missing row.
	ErrInvalidReference = errors.New("invalid reference")
)

// PostgreSQL SQLSTATE classes reported by lib/pq.
const (
	pqUniqueViolation     = "unique_violation"
	pqForeignKeyViolation = "foreign_key_violation"
)

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == pqUniqueViolation
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == pqForeignKeyViolation
	}
	return false
}

// classify maps driver constraint errors onto the package sentinels, keeping
// the original error in the chain.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrDuplicateName, err)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	default:
		return err
	}
}
