package payment

import (
	"context"
	"errors"
)

const EventPaymentSucceeded = "payment_intent.succeeded"

var ErrInvalidSignature = errors.New("invalid webhook signature")

type IntentParams struct {
	AmountCents int64
	Currency    string
	Metadata    map[string]string
}

type Intent struct {
	ID           string
	ClientSecret string
}

// PaymentIntent is the payment intent carried by a webhook event.
type PaymentIntent struct {
	ID          string
	AmountCents int64
	Currency    string
	Metadata    map[string]string
}

type Event struct {
	ID   string
	Type string
	// Intent is set for payment_intent.* events.
	Intent *PaymentIntent
}

// Gateway creates payments and authenticates provider callbacks.
type Gateway interface {
	CreateIntent(ctx context.Context, params IntentParams) (Intent, error)
	ParseEvent(payload []byte, signature string) (Event, error)
}
