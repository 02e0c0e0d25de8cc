package models

import "time"

// OrderItem represents a single line item within an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // Price at the time of order
}

// Order represents a customer order. The total is taken from the client
// as-is and is not recomputed from the line items.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string      `json:"userId" gorm:"index;type:varchar(36)"`
	Products  []OrderItem `json:"products" gorm:"serializer:json"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}
