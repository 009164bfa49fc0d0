package models

import (
	"strings"
	"time"
)

// BarbershopConfig is a singleton row describing the shop and its opening
// hours. Slot validation consults it before a booking is accepted.
type BarbershopConfig struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ShopName    string    `json:"shop_name"`
	OpenTime    string    `json:"open_time"`  // "09:00"
	CloseTime   string    `json:"close_time"` // "18:00"
	DaysOpen    string    `json:"days_open"`  // comma list of short weekday names
	SlotMinutes int       `json:"slot_minutes"`
	UpdatedBy   uint      `json:"updated_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultBarbershopConfig seeds the singleton on first start: open Monday
// through Saturday, nine to six, closed Sunday.
func DefaultBarbershopConfig() BarbershopConfig {
	return BarbershopConfig{
		ID:          1,
		ShopName:    "BarberBook",
		OpenTime:    "09:00",
		CloseTime:   "18:00",
		DaysOpen:    "Mon,Tue,Wed,Thu,Fri,Sat",
		SlotMinutes: 30,
	}
}

// OpenOn reports whether the shop opens on the given weekday.
func (c BarbershopConfig) OpenOn(weekday time.Weekday) bool {
	short := weekday.String()[:3]
	for _, d := range strings.Split(c.DaysOpen, ",") {
		if strings.TrimSpace(d) == short {
			return true
		}
	}
	return false
}
