package payments

import "context"

// PaymentGateway defines a common interface for all payment providers
type PaymentGateway interface {
	CreatePaymentRedirect(ctx context.Context, intent PaymentIntent) (PaymentRedirect, error)
}
