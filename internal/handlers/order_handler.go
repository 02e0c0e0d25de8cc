package handlers

import (
	"log"

	"stylehub/internal/models"
	"stylehub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes. Both require a valid token.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/orders", auth, h.HandlePlaceOrder)
	router.Get("/orders", auth, h.HandleListOrders)
}

// OrderRequest represents the request body for placing an order. The
// total is taken as supplied; it is not recomputed from the items.
type OrderRequest struct {
	Products []models.OrderItem `json:"products"`
	Total    float64            `json:"total"`
}

// HandlePlaceOrder persists an order for the authenticated user and
// sends a confirmation email. A failure in the email step fails the
// request even though the order was already persisted.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Access denied",
		})
	}

	var req OrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if _, err := h.service.PlaceOrder(userID, req.Products, req.Total); err != nil {
		log.Printf("Error placing order for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error placing order: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed and confirmation email sent",
	})
}

// HandleListOrders returns all orders owned by the authenticated user.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Access denied",
		})
	}

	orders, err := h.service.ListOrders(userID)
	if err != nil {
		log.Printf("Error fetching orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching orders: " + err.Error(),
		})
	}
	return c.JSON(orders)
}
