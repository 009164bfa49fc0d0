package tasks

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewReminderTaskPayload(t *testing.T) {
	fireAt := time.Now().Add(time.Hour)
	task, opts, err := NewReminderTask(42, fireAt)
	if err != nil {
		t.Fatalf("NewReminderTask failed: %v", err)
	}
	if task.Type() != TypeReminderSend {
		t.Errorf("task type = %q, want %q", task.Type(), TypeReminderSend)
	}
	if len(opts) == 0 {
		t.Error("expected scheduling options")
	}

	var p ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		t.Fatalf("payload did not round-trip: %v", err)
	}
	if p.AppointmentID != 42 {
		t.Errorf("appointment id = %d, want 42", p.AppointmentID)
	}
}

func TestFireTime(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	lead := 24 * time.Hour

	appt := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)
	if got := FireTime(appt, lead, now); !got.Equal(appt.Add(-lead)) {
		t.Errorf("fire time = %v, want %v", got, appt.Add(-lead))
	}

	// Inside the lead window the reminder fires immediately.
	soon := now.Add(2 * time.Hour)
	if got := FireTime(soon, lead, now); !got.Equal(now) {
		t.Errorf("clamped fire time = %v, want %v", got, now)
	}

	past := now.Add(-time.Hour)
	if got := FireTime(past, lead, now); !got.Equal(now) {
		t.Errorf("past appointment fire time = %v, want %v", got, now)
	}
}
