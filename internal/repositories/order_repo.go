package repositories

import "stylehub/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByUserID(userID string) ([]models.Order, error)
}
