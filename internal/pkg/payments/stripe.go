package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/quillacademy/api/internal/pkg/apperrors"
)

// IntentCreator creates a payment intent with the processor and returns the
// client secret the frontend completes the charge with.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

// StripeGateway is the Stripe-backed IntentCreator. Payments are card-only
// and priced in USD.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a Stripe client from the account's secret key
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreatePaymentIntent creates a payment intent for the given amount in minor
// units and returns its client secret.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		// Processor failures surface as 502 through the error translator
		return "", fmt.Errorf("%w: %v", apperrors.ErrPaymentGateway, err)
	}
	return intent.ClientSecret, nil
}

// MinorUnits converts a decimal USD price into integer cents, truncating any
// sub-cent fraction. The small offset keeps binary float artifacts
// (19.99*100 = 1998.99999...) from truncating a full cent away.
func MinorUnits(price float64) int64 {
	return int64(math.Floor(price*100 + 1e-9))
}
