package services

import (
	"stylehub/internal/models"
	"stylehub/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// CreateProduct creates a new product. Fields are stored as supplied;
// no validation beyond type coercion at the handler.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}
