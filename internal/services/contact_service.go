package services

import (
	"fmt"
	"log"

	"stylehub/internal/models"
	"stylehub/internal/repositories"
	"stylehub/pkg/mailer"
)

// ContactService handles contact-form submissions.
type ContactService struct {
	contactRepo repositories.ContactRepository
	mail        mailer.Mailer
	notifyAddr  string // recipient of new-submission notifications
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo repositories.ContactRepository, mail mailer.Mailer, notifyAddr string) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		mail:        mail,
		notifyAddr:  notifyAddr,
	}
}

// Submit persists the submission and sends a notification email.
// Unlike order confirmation, the email here is best-effort: a send
// failure is logged and the submission still succeeds.
func (s *ContactService) Submit(name, email, message string) error {
	contact := &models.Contact{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return fmt.Errorf("failed to save contact submission: %w", err)
	}

	body := fmt.Sprintf("You have a new contact form submission:\nName: %s\nEmail: %s\nMessage: %s", name, email, message)
	if err := s.mail.Send(s.notifyAddr, "New Contact Form Submission", body); err != nil {
		log.Printf("Error sending contact notification email: %v", err)
	}

	return nil
}
