package booking

import (
	"errors"
	"time"

	"barberbook/database/repository"
	"barberbook/models"
	"barberbook/services/catalog"
	"barberbook/services/tasks"
	"barberbook/utils"

	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      repository.AppointmentRepository
	Scheduler tasks.ReminderScheduler
}

func (s *DefaultBookingService) CreateAppointment(userID uint, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	svc, ok := catalog.GetServiceByID(req.ServiceID)
	if !ok {
		return nil, utils.ErrNotFound.WithMessage("unknown service %q", req.ServiceID)
	}

	when, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, utils.ErrInvalidInput.WithMessage("scheduled_at must be RFC 3339, got %q", req.ScheduledAt)
	}

	appt := models.Appointment{
		UserID:          userID,
		ConversationID:  req.ConversationID,
		ServiceID:       svc.ID,
		DurationMinutes: svc.DurationMinutes,
		ScheduledAt:     when,
		Status:          models.AppointmentStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		Price:           svc.Price,
		BarberName:      req.BarberName,
		Notes:           req.Notes,
	}
	if err := s.Repo.Create(&appt); err != nil {
		return nil, err
	}

	s.scheduleReminder(appt.ID, appt.ScheduledAt)
	return &appt, nil
}

func (s *DefaultBookingService) ListAppointments(userID uint) ([]models.Appointment, error) {
	appts, err := s.Repo.ListByUser(userID)
	if err != nil {
		if errors.Is(err, utils.ErrBackendUnavailable) {
			utils.GetLogger().Warn("ListAppointments: store unavailable, returning empty",
				zap.Uint("userID", userID))
			return []models.Appointment{}, nil
		}
		return nil, err
	}
	return appts, nil
}

func (s *DefaultBookingService) ListAllAppointments() ([]models.Appointment, error) {
	appts, err := s.Repo.ListAll()
	if err != nil {
		if errors.Is(err, utils.ErrBackendUnavailable) {
			utils.GetLogger().Warn("ListAllAppointments: store unavailable, returning empty")
			return []models.Appointment{}, nil
		}
		return nil, err
	}
	return appts, nil
}

func (s *DefaultBookingService) GetAppointment(callerID uint, callerRole string, appointmentID uint) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.UserID != callerID && callerRole != models.RoleAdmin {
		return nil, utils.ErrUnauthorized.WithMessage("appointment %d does not belong to the caller", appointmentID)
	}
	return appt, nil
}

func (s *DefaultBookingService) UpdateAppointment(callerID uint, callerRole string, appointmentID uint, req models.UpdateAppointmentRequest) (*models.Appointment, error) {
	appt, err := s.GetAppointment(callerID, callerRole, appointmentID)
	if err != nil {
		return nil, err
	}

	if appt.Status == models.AppointmentStatusCancelled || appt.Status == models.AppointmentStatusCompleted {
		return nil, utils.ErrInvalidInput.WithMessage("appointment %d is %s and can no longer be changed", appt.ID, appt.Status)
	}

	rescheduled := false
	if req.ScheduledAt != nil {
		when, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			return nil, utils.ErrInvalidInput.WithMessage("scheduled_at must be RFC 3339, got %q", *req.ScheduledAt)
		}
		rescheduled = !when.Equal(appt.ScheduledAt)
		appt.ScheduledAt = when
	}
	if req.BarberName != nil {
		appt.BarberName = *req.BarberName
	}
	if req.Notes != nil {
		appt.Notes = *req.Notes
	}
	if req.Cancel {
		appt.Status = models.AppointmentStatusCancelled
	}

	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}

	if rescheduled && !req.Cancel {
		s.scheduleReminder(appt.ID, appt.ScheduledAt)
	}
	return appt, nil
}

func (s *DefaultBookingService) AttachReferencePhoto(callerID, appointmentID uint, photoURL string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.UserID != callerID {
		return nil, utils.ErrUnauthorized.WithMessage("appointment %d does not belong to the caller", appointmentID)
	}

	appt.PhotoURL = photoURL
	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// scheduleReminder enqueues best-effort: a booking never fails because
// the queue is down.
func (s *DefaultBookingService) scheduleReminder(appointmentID uint, scheduledAt time.Time) {
	if s.Scheduler == nil {
		return
	}
	if err := s.Scheduler.ScheduleReminder(appointmentID, scheduledAt); err != nil {
		utils.GetLogger().Error("failed to enqueue reminder task",
			zap.Uint("appointmentID", appointmentID), zap.Error(err))
	}
}
