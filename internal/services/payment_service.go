package services

import (
	"fmt"

	"stylehub/pkg/payments"
)

// PaymentService creates payment intents with the card processor. The
// amount is trusted from the client and not recomputed from an order.
type PaymentService struct {
	gateway payments.IntentCreator
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(gateway payments.IntentCreator) *PaymentService {
	return &PaymentService{
		gateway: gateway,
	}
}

// CreateIntent creates a payment intent for the given amount in cents
// and returns the client secret.
func (s *PaymentService) CreateIntent(amount int64) (string, error) {
	secret, err := s.gateway.CreateIntent(amount)
	if err != nil {
		return "", fmt.Errorf("payment gateway error: %w", err)
	}
	return secret, nil
}
