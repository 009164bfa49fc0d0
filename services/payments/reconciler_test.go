package payments

import (
	"encoding/json"
	"errors"
	"testing"

	"barberbook/models"
	"barberbook/utils"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

type markCall struct {
	apptID uint
	ref    string
}

// fakeApptRepo records reconciler writes and serves canned reads for the
// checkout service tests.
type fakeApptRepo struct {
	byID     map[uint]*models.Appointment
	payments []models.Appointment
	listErr  error
	markErr  error

	completed []markCall
	succeeded []markCall
	failed    []markCall
	refunded  []uint
	stamped   []markCall
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{byID: make(map[uint]*models.Appointment)}
}

func (f *fakeApptRepo) Create(appt *models.Appointment) error { return nil }

func (f *fakeApptRepo) GetByID(id uint) (*models.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, utils.ErrNotFound.WithMessage("appointment %d not found", id)
	}
	return appt, nil
}

func (f *fakeApptRepo) ListByUser(userID uint) ([]models.Appointment, error) { return nil, nil }
func (f *fakeApptRepo) ListAll() ([]models.Appointment, error)               { return nil, nil }

func (f *fakeApptRepo) ListWithPayments(userID uint) ([]models.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.payments, nil
}

func (f *fakeApptRepo) Update(appt *models.Appointment) error { return nil }

func (f *fakeApptRepo) StampCheckoutSession(id uint, sessionID string, price int64) error {
	f.stamped = append(f.stamped, markCall{apptID: id, ref: sessionID})
	return f.markErr
}

func (f *fakeApptRepo) MarkCheckoutCompleted(id uint, sessionID string) error {
	f.completed = append(f.completed, markCall{apptID: id, ref: sessionID})
	return f.markErr
}

func (f *fakeApptRepo) MarkPaymentSucceeded(id uint, intentID string) error {
	f.succeeded = append(f.succeeded, markCall{apptID: id, ref: intentID})
	return f.markErr
}

func (f *fakeApptRepo) MarkPaymentFailed(id uint, intentID string) error {
	f.failed = append(f.failed, markCall{apptID: id, ref: intentID})
	return f.markErr
}

func (f *fakeApptRepo) MarkPaymentRefunded(id uint) error {
	f.refunded = append(f.refunded, id)
	return f.markErr
}

func (f *fakeApptRepo) mutations() int {
	return len(f.completed) + len(f.succeeded) + len(f.failed) + len(f.refunded)
}

func makeEvent(id, eventType string, payload any) stripe.Event {
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return stripe.Event{
		ID:   id,
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestHandleEventCheckoutCompleted(t *testing.T) {
	repo := newFakeApptRepo()
	rec := NewStripeReconciler(zap.NewNop(), repo)

	evt := makeEvent("evt_1", "checkout.session.completed", map[string]any{
		"id":                  "cs_123",
		"client_reference_id": "42",
	})
	if err := rec.HandleEvent(evt); err != nil {
		t.Fatalf("HandleEvent failed: %v", err)
	}
	if len(repo.completed) != 1 {
		t.Fatalf("expected 1 checkout completion, got %d", len(repo.completed))
	}
	if got := repo.completed[0]; got.apptID != 42 || got.ref != "cs_123" {
		t.Fatalf("unexpected completion call: %+v", got)
	}
}

func TestHandleEventPaymentIntentSucceeded(t *testing.T) {
	repo := newFakeApptRepo()
	rec := NewStripeReconciler(zap.NewNop(), repo)

	evt := makeEvent("evt_2", "payment_intent.succeeded", map[string]any{
		"id":       "pi_1",
		"metadata": map[string]string{"appointment_id": "7"},
	})
	if err := rec.HandleEvent(evt); err != nil {
		t.Fatalf("HandleEvent failed: %v", err)
	}
	if len(repo.succeeded) != 1 {
		t.Fatalf("expected 1 success record, got %d", len(repo.succeeded))
	}
	if got := repo.succeeded[0]; got.apptID != 7 || got.ref != "pi_1" {
		t.Fatalf("unexpected success call: %+v", got)
	}
}

func TestHandleEventPaymentIntentFailed(t *testing.T) {
	repo := newFakeApptRepo()
	rec := NewStripeReconciler(zap.NewNop(), repo)

	evt := makeEvent("evt_3", "payment_intent.payment_failed", map[string]any{
		"id":       "pi_2",
		"metadata": map[string]string{"appointment_id": "9"},
	})
	if err := rec.HandleEvent(evt); err != nil {
		t.Fatalf("HandleEvent failed: %v", err)
	}
	if len(repo.failed) != 1 || repo.failed[0].apptID != 9 || repo.failed[0].ref != "pi_2" {
		t.Fatalf("unexpected failure calls: %+v", repo.failed)
	}
}

func TestHandleEventChargeRefunded(t *testing.T) {
	repo := newFakeApptRepo()
	rec := NewStripeReconciler(zap.NewNop(), repo)

	evt := makeEvent("evt_4", "charge.refunded", map[string]any{
		"id":       "ch_1",
		"metadata": map[string]string{"appointment_id": "3"},
	})
	if err := rec.HandleEvent(evt); err != nil {
		t.Fatalf("HandleEvent failed: %v", err)
	}
	if len(repo.refunded) != 1 || repo.refunded[0] != 3 {
		t.Fatalf("unexpected refund calls: %+v", repo.refunded)
	}
}

func TestHandleEventMissingCorrelation(t *testing.T) {
	cases := []struct {
		name  string
		event stripe.Event
	}{
		{
			name: "checkout without client reference",
			event: makeEvent("evt_5", "checkout.session.completed", map[string]any{
				"id": "cs_999",
			}),
		},
		{
			name: "intent without metadata",
			event: makeEvent("evt_6", "payment_intent.succeeded", map[string]any{
				"id": "pi_999",
			}),
		},
		{
			name: "intent with malformed appointment id",
			event: makeEvent("evt_7", "payment_intent.succeeded", map[string]any{
				"id":       "pi_998",
				"metadata": map[string]string{"appointment_id": "not-a-number"},
			}),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeApptRepo()
			rec := NewStripeReconciler(zap.NewNop(), repo)
			if err := rec.HandleEvent(tc.event); err != nil {
				t.Fatalf("expected ack, got error: %v", err)
			}
			if n := repo.mutations(); n != 0 {
				t.Fatalf("expected no mutations, got %d", n)
			}
		})
	}
}

func TestHandleEventUnknownTypeAcked(t *testing.T) {
	repo := newFakeApptRepo()
	rec := NewStripeReconciler(zap.NewNop(), repo)

	evt := makeEvent("evt_8", "customer.created", map[string]any{"id": "cus_1"})
	if err := rec.HandleEvent(evt); err != nil {
		t.Fatalf("expected ack for unhandled type, got: %v", err)
	}
	if n := repo.mutations(); n != 0 {
		t.Fatalf("expected no mutations, got %d", n)
	}
}

func TestHandleEventStoreFailureStillAcked(t *testing.T) {
	repo := newFakeApptRepo()
	repo.markErr = errors.New("connection reset")
	rec := NewStripeReconciler(zap.NewNop(), repo)

	evt := makeEvent("evt_9", "payment_intent.succeeded", map[string]any{
		"id":       "pi_3",
		"metadata": map[string]string{"appointment_id": "5"},
	})
	if err := rec.HandleEvent(evt); err != nil {
		t.Fatalf("store failure must not surface to the webhook: %v", err)
	}
	if len(repo.succeeded) != 1 {
		t.Fatalf("expected the write attempt to be made, got %d", len(repo.succeeded))
	}
}

func TestHandleEventBadPayload(t *testing.T) {
	repo := newFakeApptRepo()
	rec := NewStripeReconciler(zap.NewNop(), repo)

	evt := stripe.Event{
		ID:   "evt_10",
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: json.RawMessage(`{"id":`)},
	}
	if err := rec.HandleEvent(evt); err == nil {
		t.Fatal("expected decode error for truncated payload")
	}
	if n := repo.mutations(); n != 0 {
		t.Fatalf("expected no mutations, got %d", n)
	}
}

func TestHandleEventReplayIdempotent(t *testing.T) {
	repo := newFakeApptRepo()
	rec := NewStripeReconciler(zap.NewNop(), repo)

	evt := makeEvent("evt_11", "checkout.session.completed", map[string]any{
		"id":                  "cs_replay",
		"client_reference_id": "12",
	})
	for i := 0; i < 2; i++ {
		if err := rec.HandleEvent(evt); err != nil {
			t.Fatalf("replay %d failed: %v", i, err)
		}
	}
	if len(repo.completed) != 2 {
		t.Fatalf("expected both deliveries applied, got %d", len(repo.completed))
	}
	for _, call := range repo.completed {
		if call.apptID != 12 || call.ref != "cs_replay" {
			t.Fatalf("replay diverged: %+v", call)
		}
	}
}

func TestIsTestEvent(t *testing.T) {
	if !IsTestEvent(stripe.Event{ID: "evt_test_abc123"}) {
		t.Error("expected evt_test_ prefix to be recognized")
	}
	if IsTestEvent(stripe.Event{ID: "evt_1Nxyz"}) {
		t.Error("live event ids must not be treated as test events")
	}
}

func TestParseAppointmentID(t *testing.T) {
	cases := []struct {
		in   string
		want uint
	}{
		{"42", 42},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"12.5", 0},
	}
	for _, tc := range cases {
		if got := parseAppointmentID(tc.in); got != tc.want {
			t.Errorf("parseAppointmentID(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
