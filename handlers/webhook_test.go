package handlers

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"barberbook/config"
	"barberbook/models"
	"barberbook/services/payments"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

type fakeApptStore struct {
	completed []string
	succeeded []string
	failed    []string
	refunded  []uint
}

func (f *fakeApptStore) Create(appt *models.Appointment) error { return nil }
func (f *fakeApptStore) GetByID(id uint) (*models.Appointment, error) {
	return &models.Appointment{ID: id}, nil
}
func (f *fakeApptStore) ListByUser(userID uint) ([]models.Appointment, error) { return nil, nil }
func (f *fakeApptStore) ListAll() ([]models.Appointment, error)               { return nil, nil }
func (f *fakeApptStore) ListWithPayments(userID uint) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptStore) Update(appt *models.Appointment) error { return nil }
func (f *fakeApptStore) StampCheckoutSession(id uint, sessionID string, price int64) error {
	return nil
}
func (f *fakeApptStore) MarkCheckoutCompleted(id uint, sessionID string) error {
	f.completed = append(f.completed, fmt.Sprintf("%d:%s", id, sessionID))
	return nil
}
func (f *fakeApptStore) MarkPaymentSucceeded(id uint, intentID string) error {
	f.succeeded = append(f.succeeded, fmt.Sprintf("%d:%s", id, intentID))
	return nil
}
func (f *fakeApptStore) MarkPaymentFailed(id uint, intentID string) error {
	f.failed = append(f.failed, fmt.Sprintf("%d:%s", id, intentID))
	return nil
}
func (f *fakeApptStore) MarkPaymentRefunded(id uint) error {
	f.refunded = append(f.refunded, id)
	return nil
}

func (f *fakeApptStore) mutations() int {
	return len(f.completed) + len(f.succeeded) + len(f.failed) + len(f.refunded)
}

const testWebhookSecret = "whsec_test_secret"

func webhookRouter(store *fakeApptStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &WebhookHandler{Reconciler: payments.NewStripeReconciler(zap.NewNop(), store)}
	r := gin.New()
	r.POST("/api/stripe/webhook", h.StripeWebhookHandler)
	return r
}

// signedHeader builds a Stripe-Signature header the verifier accepts.
func signedHeader(payload []byte, secret string) string {
	ts := time.Now()
	sig := webhook.ComputeSignature(ts, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(sig))
}

func postWebhook(r *gin.Engine, payload []byte, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", bytes.NewReader(payload))
	if header != "" {
		req.Header.Set("Stripe-Signature", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStripeWebhookMissingSecret(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = ""
	store := &fakeApptStore{}
	r := webhookRouter(store)

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{}}}`)
	w := postWebhook(r, payload, signedHeader(payload, testWebhookSecret))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if store.mutations() != 0 {
		t.Errorf("expected no store mutations, got %d", store.mutations())
	}
}

func TestStripeWebhookMissingSignature(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	store := &fakeApptStore{}
	r := webhookRouter(store)

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{}}}`)
	w := postWebhook(r, payload, "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if store.mutations() != 0 {
		t.Errorf("expected no store mutations, got %d", store.mutations())
	}
}

func TestStripeWebhookBadSignature(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	store := &fakeApptStore{}
	r := webhookRouter(store)

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1","client_reference_id":"7"}}}`)
	w := postWebhook(r, payload, signedHeader(payload, "whsec_wrong_secret"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if store.mutations() != 0 {
		t.Errorf("tampered event must not reach the store, got %d mutations", store.mutations())
	}
}

func TestStripeWebhookTestEventAcked(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	store := &fakeApptStore{}
	r := webhookRouter(store)

	payload := []byte(`{"id":"evt_test_abc","type":"checkout.session.completed","data":{"object":{"id":"cs_1","client_reference_id":"7"}}}`)
	w := postWebhook(r, payload, signedHeader(payload, testWebhookSecret))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if store.mutations() != 0 {
		t.Errorf("test event must not touch the store, got %d mutations", store.mutations())
	}
	if !strings.Contains(w.Body.String(), `"received":true`) {
		t.Errorf("expected received ack, got %s", w.Body.String())
	}
}

func TestStripeWebhookCheckoutCompleted(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	store := &fakeApptStore{}
	r := webhookRouter(store)

	payload := []byte(`{"id":"evt_ok","type":"checkout.session.completed","data":{"object":{"id":"cs_7","client_reference_id":"7"}}}`)
	w := postWebhook(r, payload, signedHeader(payload, testWebhookSecret))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(store.completed) != 1 || store.completed[0] != "7:cs_7" {
		t.Errorf("expected completed mark 7:cs_7, got %v", store.completed)
	}
}

func TestStripeWebhookUndecodablePayload(t *testing.T) {
	config.AppConfig.StripeWebhookSecret = testWebhookSecret
	store := &fakeApptStore{}
	r := webhookRouter(store)

	// client_reference_id as a number cannot decode into the session type.
	payload := []byte(`{"id":"evt_bad","type":"checkout.session.completed","data":{"object":{"client_reference_id":42}}}`)
	w := postWebhook(r, payload, signedHeader(payload, testWebhookSecret))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 so the event is redelivered, got %d", w.Code)
	}
	if store.mutations() != 0 {
		t.Errorf("expected no store mutations, got %d", store.mutations())
	}
}
