package models

import "time"

// Login outcomes recorded in the audit log.
const (
	LoginSuccess = "Success"
	LoginFailure = "Failure"
)

// LoginLog is an append-only audit record. Exactly one is written per
// login call, whatever the outcome.
type LoginLog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" gorm:"type:varchar(255)"`
	LoginTime time.Time `json:"loginTime"`
	Status    string    `json:"status" gorm:"type:varchar(10)"` // Success or Failure
}
