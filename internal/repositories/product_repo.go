package repositories

import (
	"errors"

	"estore/internal/models"
)

// ErrNotFound is returned when a record with the requested id does not
// exist. It is a normal outcome, distinct from a transient store failure.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	// UpdateFields merges the supplied column->value pairs into the record
	// and returns the post-update state.
	UpdateFields(id string, fields map[string]interface{}) (*models.Product, error)
	Delete(id string) error
}
