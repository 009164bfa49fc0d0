package notification

import (
	"context"
	"fmt"
	"strconv"

	"barberbook/database/repository"
	"barberbook/models"
	"barberbook/services/catalog"
	"barberbook/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPush(ctx context.Context, userID uint, title, body string, data map[string]string) error
	NotifyAppointmentReminder(ctx context.Context, appt *models.Appointment) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	users repository.UserRepository
}

func NewDefaultNotificationService(users repository.UserRepository) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{users: users}, nil
}

// SendUserPush looks up a user's FCM token and sends a push. Users without
// a registered device are skipped silently.
func (s *DefaultNotificationService) SendUserPush(ctx context.Context, userID uint, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return nil // push disabled in this deployment
	}

	u, err := s.users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("SendUserPush: could not find user %d: %w", userID, err)
	}
	if u.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendUserPush: failed to send FCM message to user %d: %w", userID, err)
	}
	return nil
}

// NotifyAppointmentReminder pushes the upcoming-appointment reminder to
// the appointment's owner.
func (s *DefaultNotificationService) NotifyAppointmentReminder(ctx context.Context, appt *models.Appointment) error {
	serviceName := appt.ServiceID
	if svc, ok := catalog.GetServiceByID(appt.ServiceID); ok {
		serviceName = svc.Name
	}

	title := "Upcoming appointment ✂️"
	body := fmt.Sprintf("Your %s is on %s.", serviceName,
		appt.ScheduledAt.Format("Monday, Jan 2 at 3:04 PM"))
	if appt.BarberName != "" {
		body = fmt.Sprintf("Your %s with %s is on %s.", serviceName, appt.BarberName,
			appt.ScheduledAt.Format("Monday, Jan 2 at 3:04 PM"))
	}

	return s.SendUserPush(ctx, appt.UserID, title, body, map[string]string{
		"type":           "appointment_reminder",
		"appointment_id": strconv.FormatUint(uint64(appt.ID), 10),
	})
}
