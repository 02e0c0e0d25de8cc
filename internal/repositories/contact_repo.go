package repositories

import "stylehub/internal/models"

// ContactRepository defines the interface for contact-form data access.
type ContactRepository interface {
	Create(contact *models.Contact) error
}
