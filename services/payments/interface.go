// File: services/payments/interface.go
package payments

import (
	"context"

	"barberbook/models"

	"github.com/stripe/stripe-go/v76"
)

// CheckoutService creates hosted payment sessions and answers payment
// queries, always scoped to the requesting user.
type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, callerID uint, req models.CheckoutSessionRequest) (*models.CheckoutSessionResponse, error)
	PaymentStatus(callerID, appointmentID uint) (*models.PaymentStatusResponse, error)
	PaymentHistory(callerID uint) ([]models.PaymentHistoryEntry, error)
}

// EventReconciler applies verified provider events to appointment state.
type EventReconciler interface {
	HandleEvent(event stripe.Event) error
}
