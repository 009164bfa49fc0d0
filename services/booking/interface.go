package booking

import (
	"barberbook/models"
)

// BookingService defines business logic for appointment operations.
type BookingService interface {
	// CreateAppointment books a slot for the caller and schedules its
	// reminder. Price and duration come from the service catalog.
	CreateAppointment(userID uint, req models.CreateAppointmentRequest) (*models.Appointment, error)
	// ListAppointments returns the caller's appointments ordered by slot.
	ListAppointments(userID uint) ([]models.Appointment, error)
	// ListAllAppointments returns every appointment; admin surface.
	ListAllAppointments() ([]models.Appointment, error)
	// GetAppointment returns one appointment to its owner or an admin.
	GetAppointment(callerID uint, callerRole string, appointmentID uint) (*models.Appointment, error)
	// UpdateAppointment reschedules, edits, or cancels. Payment fields and
	// the confirmed/completed transitions belong to the webhook reconciler
	// and are never touched here.
	UpdateAppointment(callerID uint, callerRole string, appointmentID uint, req models.UpdateAppointmentRequest) (*models.Appointment, error)
	// AttachReferencePhoto stores an uploaded photo URL on the appointment.
	AttachReferencePhoto(callerID, appointmentID uint, photoURL string) (*models.Appointment, error)
}
