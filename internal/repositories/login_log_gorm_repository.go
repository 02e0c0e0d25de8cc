package repositories

import (
	"fmt"
	"time"

	"stylehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMLoginLogRepository is a GORM implementation of LoginLogRepository.
type GORMLoginLogRepository struct {
	db *gorm.DB
}

// NewGORMLoginLogRepository creates a new instance of GORMLoginLogRepository.
func NewGORMLoginLogRepository(db *gorm.DB) *GORMLoginLogRepository {
	return &GORMLoginLogRepository{
		db: db,
	}
}

// Create appends a login attempt record.
func (r *GORMLoginLogRepository) Create(entry *models.LoginLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.LoginTime.IsZero() {
		entry.LoginTime = time.Now()
	}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create login log entry: %w", err)
	}
	return nil
}
