package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload carries just the appointment id; the worker reloads the
// row so a rescheduled or cancelled appointment is honored at fire time.
type ReminderPayload struct {
	AppointmentID uint `json:"appointment_id"`
}

// NewReminderTask builds a reminder task that fires at fireAt.
func NewReminderTask(appointmentID uint, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ReminderPayload{AppointmentID: appointmentID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// ReminderScheduler enqueues a reminder ahead of an appointment.
type ReminderScheduler interface {
	ScheduleReminder(appointmentID uint, scheduledAt time.Time) error
}

// AsynqReminderScheduler schedules reminders on the asynq queue, firing
// Lead before the appointment. Appointments already inside the lead
// window fire immediately.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

func (s *AsynqReminderScheduler) ScheduleReminder(appointmentID uint, scheduledAt time.Time) error {
	fireAt := FireTime(scheduledAt, s.Lead, time.Now())
	task, opts, err := NewReminderTask(appointmentID, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}

// FireTime computes when a reminder fires: lead before the appointment,
// clamped to now for appointments inside the lead window.
func FireTime(scheduledAt time.Time, lead time.Duration, now time.Time) time.Time {
	fireAt := scheduledAt.Add(-lead)
	if fireAt.Before(now) {
		return now
	}
	return fireAt
}
