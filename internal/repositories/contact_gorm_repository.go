package repositories

import (
	"fmt"
	"time"

	"stylehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMContactRepository is a GORM implementation of ContactRepository.
type GORMContactRepository struct {
	db *gorm.DB
}

// NewGORMContactRepository creates a new instance of GORMContactRepository.
func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{
		db: db,
	}
}

// Create creates a new contact submission in the database.
func (r *GORMContactRepository) Create(contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}
	if err := r.db.Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact submission: %w", err)
	}
	return nil
}
