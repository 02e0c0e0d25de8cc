package repositories

import "stylehub/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	Create(product *models.Product) error
}
