package services

import (
	"encoding/json"
	"fmt"
	"log"

	"stylehub/internal/models"
	"stylehub/internal/repositories"
	"stylehub/pkg/mailer"
)

// EventPublisher publishes order lifecycle events for downstream
// consumers (inventory, analytics).
type EventPublisher interface {
	PublishOrderCreated(body []byte) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	mail      mailer.Mailer
	publisher EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil when
// no message broker is configured.
func NewOrderService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, mail mailer.Mailer, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		mail:      mail,
		publisher: publisher,
	}
}

// PlaceOrder persists an order for the given user and sends a
// confirmation email. The total is taken from the caller as-is, without
// recomputation from the line items or any stock check.
//
// The order is persisted before the email is sent; a failure in the
// email step still fails the whole call even though the order already
// exists. There is no compensating rollback.
func (s *OrderService) PlaceOrder(userID string, items []models.OrderItem, total float64) (*models.Order, error) {
	order := &models.Order{
		UserID:   userID,
		Products: items,
		Total:    total,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishOrderCreated(order)

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user for confirmation email: %w", err)
	}

	body := fmt.Sprintf("Thank you for your order! Order total: $%v.", total/100)
	if err := s.mail.Send(user.Email, "Order Confirmation", body); err != nil {
		return nil, fmt.Errorf("order %s placed but confirmation email failed: %w", order.ID, err)
	}

	return order, nil
}

// publishOrderCreated emits an order.created event. Publishing is
// best-effort; failures are logged and never affect the order.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		log.Println("Message broker is not configured. Skipping order event publication.")
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"total":   order.Total,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return
	}
	if err := s.publisher.PublishOrderCreated(body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
	}
}

// ListOrders returns all orders owned by the given user.
func (s *OrderService) ListOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}
