package contracts

import "context"

type PaymentGatewayService interface {
	// CreatePaymentIntent charges are denominated in the smallest currency
	// unit; the returned secret is handed to the browser-side payment form.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}
