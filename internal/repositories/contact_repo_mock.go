package repositories

import (
	"sync"
	"time"

	"stylehub/internal/models"

	"github.com/google/uuid"
)

// MockContactRepository is an in-memory implementation of ContactRepository.
type MockContactRepository struct {
	contacts []models.Contact
	mu       sync.Mutex
}

// NewMockContactRepository creates a new instance of MockContactRepository.
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{}
}

// Create adds a new contact submission.
func (r *MockContactRepository) Create(contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}
	r.contacts = append(r.contacts, *contact)
	return nil
}
