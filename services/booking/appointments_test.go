package booking

import (
	"errors"
	"testing"
	"time"

	"barberbook/models"
	"barberbook/utils"
)

type fakeApptRepo struct {
	byID    map[uint]*models.Appointment
	next    uint
	listErr error
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{byID: make(map[uint]*models.Appointment), next: 1}
}

func (f *fakeApptRepo) Create(appt *models.Appointment) error {
	appt.ID = f.next
	f.next++
	cp := *appt
	f.byID[appt.ID] = &cp
	return nil
}

func (f *fakeApptRepo) GetByID(id uint) (*models.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, utils.ErrNotFound.WithMessage("appointment %d not found", id)
	}
	cp := *appt
	return &cp, nil
}

func (f *fakeApptRepo) ListByUser(userID uint) ([]models.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Appointment
	for _, a := range f.byID {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) ListAll() ([]models.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Appointment
	for _, a := range f.byID {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeApptRepo) ListWithPayments(userID uint) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeApptRepo) Update(appt *models.Appointment) error {
	if _, ok := f.byID[appt.ID]; !ok {
		return utils.ErrNotFound.WithMessage("appointment %d not found", appt.ID)
	}
	cp := *appt
	f.byID[appt.ID] = &cp
	return nil
}

func (f *fakeApptRepo) StampCheckoutSession(id uint, sessionID string, price int64) error { return nil }
func (f *fakeApptRepo) MarkCheckoutCompleted(id uint, sessionID string) error             { return nil }
func (f *fakeApptRepo) MarkPaymentSucceeded(id uint, intentID string) error               { return nil }
func (f *fakeApptRepo) MarkPaymentFailed(id uint, intentID string) error                  { return nil }
func (f *fakeApptRepo) MarkPaymentRefunded(id uint) error                                 { return nil }

type fakeScheduler struct {
	calls []uint
	err   error
}

func (f *fakeScheduler) ScheduleReminder(appointmentID uint, scheduledAt time.Time) error {
	f.calls = append(f.calls, appointmentID)
	return f.err
}

func TestCreateAppointmentFromCatalog(t *testing.T) {
	repo := newFakeApptRepo()
	sched := &fakeScheduler{}
	svc := &DefaultBookingService{Repo: repo, Scheduler: sched}

	appt, err := svc.CreateAppointment(7, models.CreateAppointmentRequest{
		ServiceID:   "full_service",
		ScheduledAt: "2025-06-03T10:00:00Z",
		BarberName:  "Luis",
		Notes:       "fade on the sides",
	})
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	if appt.Price != 4000 {
		t.Errorf("price = %d, want 4000", appt.Price)
	}
	if appt.DurationMinutes != 60 {
		t.Errorf("duration = %d, want 60", appt.DurationMinutes)
	}
	if appt.Status != models.AppointmentStatusPending || appt.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("new appointment must start pending/pending, got %s/%s", appt.Status, appt.PaymentStatus)
	}
	if !appt.ScheduledAt.Equal(time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("scheduled_at = %v", appt.ScheduledAt)
	}
	if len(sched.calls) != 1 || sched.calls[0] != appt.ID {
		t.Errorf("reminder not scheduled: %v", sched.calls)
	}
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeApptRepo(), Scheduler: &fakeScheduler{}}

	_, err := svc.CreateAppointment(7, models.CreateAppointmentRequest{
		ServiceID:   "scalp_massage",
		ScheduledAt: "2025-06-03T10:00:00Z",
	})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateAppointmentBadTimestamp(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeApptRepo(), Scheduler: &fakeScheduler{}}

	_, err := svc.CreateAppointment(7, models.CreateAppointmentRequest{
		ServiceID:   "haircut",
		ScheduledAt: "next tuesday at ten",
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestCreateAppointmentSurvivesQueueOutage(t *testing.T) {
	repo := newFakeApptRepo()
	sched := &fakeScheduler{err: errors.New("queue down")}
	svc := &DefaultBookingService{Repo: repo, Scheduler: sched}

	appt, err := svc.CreateAppointment(7, models.CreateAppointmentRequest{
		ServiceID:   "haircut",
		ScheduledAt: "2025-06-03T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("booking must not fail on reminder enqueue: %v", err)
	}
	if appt.ID == 0 {
		t.Error("appointment not persisted")
	}
}

func TestGetAppointmentAccess(t *testing.T) {
	repo := newFakeApptRepo()
	repo.byID[1] = &models.Appointment{ID: 1, UserID: 7}
	svc := &DefaultBookingService{Repo: repo}

	if _, err := svc.GetAppointment(7, models.RoleUser, 1); err != nil {
		t.Errorf("owner access failed: %v", err)
	}
	if _, err := svc.GetAppointment(99, models.RoleAdmin, 1); err != nil {
		t.Errorf("admin access failed: %v", err)
	}
	if _, err := svc.GetAppointment(99, models.RoleUser, 1); !errors.Is(err, utils.ErrUnauthorized) {
		t.Errorf("expected unauthorized for foreign caller, got %v", err)
	}
}

func TestUpdateAppointmentReschedule(t *testing.T) {
	repo := newFakeApptRepo()
	repo.byID[1] = &models.Appointment{
		ID:          1,
		UserID:      7,
		ServiceID:   "haircut",
		ScheduledAt: time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
		Status:      models.AppointmentStatusPending,
	}
	sched := &fakeScheduler{}
	svc := &DefaultBookingService{Repo: repo, Scheduler: sched}

	newSlot := "2025-06-04T11:00:00Z"
	notes := "bring reference photo"
	appt, err := svc.UpdateAppointment(7, models.RoleUser, 1, models.UpdateAppointmentRequest{
		ScheduledAt: &newSlot,
		Notes:       &notes,
	})
	if err != nil {
		t.Fatalf("UpdateAppointment failed: %v", err)
	}
	if !appt.ScheduledAt.Equal(time.Date(2025, 6, 4, 11, 0, 0, 0, time.UTC)) {
		t.Errorf("scheduled_at = %v", appt.ScheduledAt)
	}
	if appt.Notes != notes {
		t.Errorf("notes = %q", appt.Notes)
	}
	if len(sched.calls) != 1 {
		t.Errorf("reschedule must re-arm the reminder, calls = %v", sched.calls)
	}
}

func TestUpdateAppointmentCancel(t *testing.T) {
	repo := newFakeApptRepo()
	repo.byID[1] = &models.Appointment{
		ID:            1,
		UserID:        7,
		Status:        models.AppointmentStatusConfirmed,
		PaymentStatus: models.PaymentStatusCompleted,
	}
	svc := &DefaultBookingService{Repo: repo, Scheduler: &fakeScheduler{}}

	appt, err := svc.UpdateAppointment(7, models.RoleUser, 1, models.UpdateAppointmentRequest{Cancel: true})
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if appt.Status != models.AppointmentStatusCancelled {
		t.Errorf("status = %s, want cancelled", appt.Status)
	}
	// Cancelling never rewrites payment state; refunds arrive via webhook.
	if appt.PaymentStatus != models.PaymentStatusCompleted {
		t.Errorf("payment status must be untouched, got %s", appt.PaymentStatus)
	}
}

func TestUpdateAppointmentTerminalStates(t *testing.T) {
	for _, status := range []string{models.AppointmentStatusCancelled, models.AppointmentStatusCompleted} {
		repo := newFakeApptRepo()
		repo.byID[1] = &models.Appointment{ID: 1, UserID: 7, Status: status}
		svc := &DefaultBookingService{Repo: repo, Scheduler: &fakeScheduler{}}

		notes := "too late"
		_, err := svc.UpdateAppointment(7, models.RoleUser, 1, models.UpdateAppointmentRequest{Notes: &notes})
		if !errors.Is(err, utils.ErrInvalidInput) {
			t.Errorf("status %s: expected invalid input, got %v", status, err)
		}
	}
}

func TestAttachReferencePhoto(t *testing.T) {
	repo := newFakeApptRepo()
	repo.byID[1] = &models.Appointment{ID: 1, UserID: 7}
	svc := &DefaultBookingService{Repo: repo}

	appt, err := svc.AttachReferencePhoto(7, 1, "https://res.cloudinary.com/demo/ref.jpg")
	if err != nil {
		t.Fatalf("AttachReferencePhoto failed: %v", err)
	}
	if appt.PhotoURL == "" {
		t.Error("photo url not stored")
	}

	if _, err := svc.AttachReferencePhoto(99, 1, "x"); !errors.Is(err, utils.ErrUnauthorized) {
		t.Errorf("expected unauthorized for foreign caller, got %v", err)
	}
}
