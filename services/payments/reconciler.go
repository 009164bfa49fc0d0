// File: services/payments/reconciler.go
package payments

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"barberbook/database/repository"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// TestEventPrefix marks Stripe CLI / dashboard test events. Verified test
// events are acknowledged without touching appointment state.
const TestEventPrefix = "evt_test_"

// IsTestEvent reports whether the event id carries the test prefix.
func IsTestEvent(event stripe.Event) bool {
	return strings.HasPrefix(event.ID, TestEventPrefix)
}

// StripeReconciler applies verified Stripe webhook events to appointment
// payment state. Handlers are idempotent: replaying an event sets the same
// terminal state again.
type StripeReconciler struct {
	logger *zap.Logger
	appts  repository.AppointmentRepository
}

func NewStripeReconciler(logger *zap.Logger, appts repository.AppointmentRepository) *StripeReconciler {
	return &StripeReconciler{logger: logger, appts: appts}
}

// HandleEvent dispatches one verified event. A non-nil return means the
// payload could not be decoded and the delivery should be retried; store
// write failures are logged and acknowledged so Stripe does not redeliver
// an event we already understood.
func (r *StripeReconciler) HandleEvent(event stripe.Event) error {
	if event.Data == nil {
		return fmt.Errorf("event %s has no payload", event.ID)
	}

	switch string(event.Type) {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("decode checkout.session.completed payload: %w", err)
		}
		apptID := parseAppointmentID(sess.ClientReferenceID)
		if apptID == 0 {
			r.logger.Warn("checkout session completed without usable client reference, skipping",
				zap.String("eventID", event.ID), zap.String("sessionID", sess.ID))
			return nil
		}
		if err := r.appts.MarkCheckoutCompleted(apptID, sess.ID); err != nil {
			r.logger.Error("failed to record completed checkout",
				zap.Uint("appointmentID", apptID), zap.String("eventID", event.ID), zap.Error(err))
			return nil
		}
		r.logger.Info("checkout completed",
			zap.Uint("appointmentID", apptID), zap.String("sessionID", sess.ID))

	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("decode payment_intent.succeeded payload: %w", err)
		}
		apptID := parseAppointmentID(intent.Metadata["appointment_id"])
		if apptID == 0 {
			r.logger.Warn("payment intent succeeded without appointment metadata, skipping",
				zap.String("eventID", event.ID), zap.String("intentID", intent.ID))
			return nil
		}
		if err := r.appts.MarkPaymentSucceeded(apptID, intent.ID); err != nil {
			r.logger.Error("failed to record successful payment",
				zap.Uint("appointmentID", apptID), zap.String("eventID", event.ID), zap.Error(err))
			return nil
		}
		r.logger.Info("payment succeeded",
			zap.Uint("appointmentID", apptID), zap.String("intentID", intent.ID))

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("decode payment_intent.payment_failed payload: %w", err)
		}
		apptID := parseAppointmentID(intent.Metadata["appointment_id"])
		if apptID == 0 {
			r.logger.Warn("payment intent failed without appointment metadata, skipping",
				zap.String("eventID", event.ID), zap.String("intentID", intent.ID))
			return nil
		}
		if err := r.appts.MarkPaymentFailed(apptID, intent.ID); err != nil {
			r.logger.Error("failed to record failed payment",
				zap.Uint("appointmentID", apptID), zap.String("eventID", event.ID), zap.Error(err))
			return nil
		}
		r.logger.Info("payment failed",
			zap.Uint("appointmentID", apptID), zap.String("intentID", intent.ID))

	case "charge.refunded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return fmt.Errorf("decode charge.refunded payload: %w", err)
		}
		apptID := parseAppointmentID(charge.Metadata["appointment_id"])
		if apptID == 0 {
			r.logger.Warn("refunded charge without appointment metadata, skipping",
				zap.String("eventID", event.ID), zap.String("chargeID", charge.ID))
			return nil
		}
		if err := r.appts.MarkPaymentRefunded(apptID); err != nil {
			r.logger.Error("failed to record refund",
				zap.Uint("appointmentID", apptID), zap.String("eventID", event.ID), zap.Error(err))
			return nil
		}
		r.logger.Info("payment refunded", zap.Uint("appointmentID", apptID))

	default:
		r.logger.Debug("ignoring unhandled stripe event",
			zap.String("eventID", event.ID), zap.String("type", string(event.Type)))
	}

	return nil
}

// parseAppointmentID turns a correlation string into an appointment id.
// Empty, malformed, or zero values all come back as zero.
func parseAppointmentID(raw string) uint {
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
