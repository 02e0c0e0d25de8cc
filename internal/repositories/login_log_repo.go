package repositories

import "stylehub/internal/models"

// LoginLogRepository defines the interface for the login audit log.
// The log is append-only; records are never updated or deleted.
type LoginLogRepository interface {
	Create(entry *models.LoginLog) error
}
