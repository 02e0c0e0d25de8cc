package handlers

import (
	"log"

	"stylehub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles HTTP requests for contact-form submissions.
type ContactHandler struct {
	service *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

// RegisterRoutes registers the contact routes with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleContact)
}

// ContactRequest represents the request body for a contact submission.
// None of the fields are validated.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// HandleContact persists the submission. The notification email is
// best-effort inside the service; a mail failure never fails this
// request.
func (h *ContactHandler) HandleContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.service.Submit(req.Name, req.Email, req.Message); err != nil {
		log.Printf("Error saving contact form submission: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Message received successfully!",
	})
}
