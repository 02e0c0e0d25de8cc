package payments

import (
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// IntentCreator creates a payment intent with an external card processor
// and returns the client-side secret needed to complete the payment.
type IntentCreator interface {
	CreateIntent(amount int64) (string, error)
}

// StripeGateway is the Stripe implementation of IntentCreator.
// All intents are created in USD and restricted to card payments.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a new StripeGateway using the given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{
		api: api,
	}
}

// CreateIntent creates a payment intent for the given amount in cents.
func (g *StripeGateway) CreateIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
