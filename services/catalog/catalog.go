// Package catalog holds the shop's bookable services. The catalog is
// compile-time data; nothing here touches a store.
package catalog

import (
	"fmt"
	"strings"
)

// Currency every catalog price is denominated in.
const Currency = "usd"

// Service is a bookable offering. Prices are minor currency units.
type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int64  `json:"price"`
	Currency        string `json:"currency"`
	DurationMinutes int    `json:"duration_minutes"`
}

var services = []Service{
	{
		ID:              "haircut",
		Name:            "Haircut",
		Description:     "Classic cut with wash and styling",
		Price:           2500,
		Currency:        Currency,
		DurationMinutes: 30,
	},
	{
		ID:              "hair_eyebrow",
		Name:            "Haircut + Eyebrows",
		Description:     "Haircut with eyebrow shaping",
		Price:           3000,
		Currency:        Currency,
		DurationMinutes: 45,
	},
	{
		ID:              "full_service",
		Name:            "Full Service",
		Description:     "Haircut, beard trim and eyebrow shaping",
		Price:           4000,
		Currency:        Currency,
		DurationMinutes: 60,
	},
	{
		ID:              "hair_beard",
		Name:            "Haircut + Beard",
		Description:     "Haircut with a full beard trim",
		Price:           3500,
		Currency:        Currency,
		DurationMinutes: 50,
	},
	{
		ID:              "beard_only",
		Name:            "Beard Trim",
		Description:     "Beard trim and line-up",
		Price:           2000,
		Currency:        Currency,
		DurationMinutes: 20,
	},
}

// Services returns the full catalog in display order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// GetServiceByID looks a service up by its identifier.
func GetServiceByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// GetServiceByName looks a service up by display name, case-insensitively.
func GetServiceByName(name string) (Service, bool) {
	for _, s := range services {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Service{}, false
}

// FormatPrice renders minor currency units for display: 2500 becomes "$25.00".
func FormatPrice(minor int64) string {
	return fmt.Sprintf("$%d.%02d", minor/100, minor%100)
}
