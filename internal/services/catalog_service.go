package services

import (
	"estore/internal/models"
	"estore/internal/repositories"
)

// CatalogService handles business logic for the product catalog.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetAllProducts retrieves every product in the catalog.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product. The store assigns the id and
// timestamps.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct merges the supplied fields into the product with the given
// id and returns the post-update record. Fields the request did not supply
// are left untouched.
func (s *CatalogService) UpdateProduct(id string, update models.ProductUpdate) (*models.Product, error) {
	fields := update.Fields()
	if len(fields) == 0 {
		// Nothing to merge; the current record is the post-update state.
		return s.repo.GetByID(id)
	}
	return s.repo.UpdateFields(id, fields)
}

// DeleteProduct removes a product by its ID. Deleting an id that does not
// exist reports repositories.ErrNotFound, not success.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
