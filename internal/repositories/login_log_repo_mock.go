package repositories

import (
	"sync"
	"time"

	"stylehub/internal/models"

	"github.com/google/uuid"
)

// MockLoginLogRepository is an in-memory implementation of LoginLogRepository.
type MockLoginLogRepository struct {
	entries []models.LoginLog
	mu      sync.Mutex
}

// NewMockLoginLogRepository creates a new instance of MockLoginLogRepository.
func NewMockLoginLogRepository() *MockLoginLogRepository {
	return &MockLoginLogRepository{}
}

// Create appends a login attempt record.
func (r *MockLoginLogRepository) Create(entry *models.LoginLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.LoginTime.IsZero() {
		entry.LoginTime = time.Now()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

// Entries returns a copy of all recorded attempts.
func (r *MockLoginLogRepository) Entries() []models.LoginLog {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.LoginLog, len(r.entries))
	copy(out, r.entries)
	return out
}
