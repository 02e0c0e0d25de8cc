package handlers

import (
	"log"

	"stylehub/internal/models"
	"stylehub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes. Listing is public;
// adding requires a valid token. Any valid token suffices today (see
// DESIGN.md on the missing admin role check).
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/products", h.HandleListProducts)
	router.Post("/products", auth, h.HandleAddProduct)
}

// ProductRequest represents the request body for adding a product.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

// HandleAddProduct creates a product from the supplied fields. No field
// validation beyond type coercion.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := h.service.CreateProduct(product); err != nil {
		log.Printf("Error adding product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error adding product: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product added",
	})
}

// HandleListProducts returns all products, no pagination or filtering.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching products: " + err.Error(),
		})
	}
	return c.JSON(products)
}
