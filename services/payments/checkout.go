// File: services/payments/checkout.go
package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"barberbook/config"
	"barberbook/database/repository"
	"barberbook/models"
	"barberbook/services/catalog"
	"barberbook/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"go.uber.org/zap"
)

// StripeCheckoutService implements CheckoutService against Stripe.
type StripeCheckoutService struct {
	logger *zap.Logger
	users  repository.UserRepository
	appts  repository.AppointmentRepository
}

// NewStripeCheckoutService wires the checkout flow. The Stripe API key is
// taken from package-level configuration at startup.
func NewStripeCheckoutService(logger *zap.Logger, users repository.UserRepository, appts repository.AppointmentRepository) *StripeCheckoutService {
	return &StripeCheckoutService{
		logger: logger,
		users:  users,
		appts:  appts,
	}
}

// InitStripe sets the global Stripe API key; call once at startup.
func InitStripe() {
	stripe.Key = config.AppConfig.StripeSecretKey
}

// CreateCheckoutSession builds a hosted Stripe Checkout session for the
// given appointment and stamps the appointment with the session id and
// price. The appointment must belong to the caller.
func (s *StripeCheckoutService) CreateCheckoutSession(ctx context.Context, callerID uint, req models.CheckoutSessionRequest) (*models.CheckoutSessionResponse, error) {
	appt, err := s.appts.GetByID(req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appt.UserID != callerID {
		return nil, utils.ErrUnauthorized.WithMessage("appointment %d does not belong to the caller", appt.ID)
	}

	svc, ok := catalog.GetServiceByID(req.ServiceID)
	if !ok {
		return nil, utils.ErrNotFound.WithMessage("unknown service %q", req.ServiceID)
	}

	custID, err := s.ensureCustomer(ctx, callerID)
	if err != nil {
		return nil, err
	}

	apptRef := strconv.FormatUint(uint64(appt.ID), 10)
	meta := map[string]string{
		"user_id":        strconv.FormatUint(uint64(callerID), 10),
		"appointment_id": apptRef,
		"service_id":     svc.ID,
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		Customer:          stripe.String(custID),
		SuccessURL:        stripe.String(fmt.Sprintf("%s/appointments/%d?payment=success", config.AppConfig.FrontendURL, appt.ID)),
		CancelURL:         stripe.String(fmt.Sprintf("%s/appointments/%d?payment=cancelled", config.AppConfig.FrontendURL, appt.ID)),
		ClientReferenceID: stripe.String(apptRef),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(svc.Currency),
					UnitAmount: stripe.Int64(svc.Price),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(svc.Name),
						Description: stripe.String(svc.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: meta,
		// The payment intent needs its own copy so intent and charge
		// events can be correlated back to the appointment.
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: meta,
		},
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(uuid.New().String())

	sess, err := checkoutsession.New(params)
	if err != nil {
		s.logger.Error("stripe checkout session create failed",
			zap.Uint("appointmentID", appt.ID), zap.Error(err))
		return nil, fmt.Errorf("payment provider rejected checkout session: %w", err)
	}

	if err := s.appts.StampCheckoutSession(appt.ID, sess.ID, svc.Price); err != nil {
		return nil, err
	}

	s.logger.Info("checkout session created",
		zap.Uint("appointmentID", appt.ID),
		zap.String("sessionID", sess.ID),
		zap.Int64("amount", svc.Price))

	return &models.CheckoutSessionResponse{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}

// ensureCustomer returns the user's Stripe customer id, creating the
// customer on first use. The id is persisted on the user exactly once.
func (s *StripeCheckoutService) ensureCustomer(ctx context.Context, userID uint) (string, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return "", err
	}
	if u.StripeCustomerID != "" {
		return u.StripeCustomerID, nil
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(u.Email),
		Name:  stripe.String(u.Name),
	}
	params.Context = ctx
	params.AddMetadata("user_id", strconv.FormatUint(uint64(u.ID), 10))

	cust, err := customer.New(params)
	if err != nil {
		s.logger.Error("stripe customer create failed", zap.Uint("userID", u.ID), zap.Error(err))
		return "", fmt.Errorf("payment provider rejected customer creation: %w", err)
	}

	if err := s.users.SetStripeCustomerID(u.ID, cust.ID); err != nil {
		return "", err
	}

	s.logger.Info("stripe customer created", zap.Uint("userID", u.ID), zap.String("customerID", cust.ID))
	return cust.ID, nil
}

// PaymentStatus answers the payment-status query for one appointment,
// rejecting callers who do not own it.
func (s *StripeCheckoutService) PaymentStatus(callerID, appointmentID uint) (*models.PaymentStatusResponse, error) {
	appt, err := s.appts.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.UserID != callerID {
		return nil, utils.ErrUnauthorized.WithMessage("appointment %d does not belong to the caller", appt.ID)
	}

	return &models.PaymentStatusResponse{
		AppointmentID:   appt.ID,
		PaymentStatus:   appt.PaymentStatus,
		Status:          appt.Status,
		Price:           appt.Price,
		FormattedPrice:  catalog.FormatPrice(appt.Price),
		StripeSessionID: appt.StripeSessionID,
	}, nil
}

// PaymentHistory lists the caller's appointments with payment activity.
// When the store is unreachable the read degrades to an empty collection.
func (s *StripeCheckoutService) PaymentHistory(callerID uint) ([]models.PaymentHistoryEntry, error) {
	appts, err := s.appts.ListWithPayments(callerID)
	if err != nil {
		if errors.Is(err, utils.ErrBackendUnavailable) {
			s.logger.Warn("payment history unavailable, returning empty", zap.Uint("userID", callerID))
			return []models.PaymentHistoryEntry{}, nil
		}
		return nil, err
	}

	entries := make([]models.PaymentHistoryEntry, 0, len(appts))
	for _, a := range appts {
		entries = append(entries, models.PaymentHistoryEntry{
			AppointmentID:  a.ID,
			ServiceID:      a.ServiceID,
			Price:          a.Price,
			FormattedPrice: catalog.FormatPrice(a.Price),
			PaymentStatus:  a.PaymentStatus,
			ScheduledAt:    a.ScheduledAt.Format(time.RFC3339),
		})
	}
	return entries, nil
}
