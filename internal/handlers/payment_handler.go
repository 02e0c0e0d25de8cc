package handlers

import (
	"log"

	"stylehub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for payment intents.
type PaymentHandler struct {
	service *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/create-payment-intent", h.HandleCreatePaymentIntent)
}

// PaymentIntentRequest represents the request body for creating a
// payment intent. Amount is in cents and trusted from the client.
type PaymentIntentRequest struct {
	Amount int64 `json:"amount"`
}

// HandleCreatePaymentIntent creates a USD card payment intent and
// returns the client secret.
func (h *PaymentHandler) HandleCreatePaymentIntent(c *fiber.Ctx) error {
	var req PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment intent request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	clientSecret, err := h.service.CreateIntent(req.Amount)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"clientSecret": clientSecret,
	})
}
