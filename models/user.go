// models/user.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles a user can hold. Admins manage training data, models and shop
// configuration; everything else is per-user scoped.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a platform user.
type User struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `json:"name"`
	Email            string         `gorm:"uniqueIndex" json:"email"`
	PasswordHash     string         `json:"-"`
	PhoneNumber      string         `json:"phone_number"`
	Role             string         `gorm:"default:user" json:"role"`
	StripeCustomerID string         `json:"stripe_customer_id,omitempty"` // set at most once, on first checkout
	FCMToken         string         `json:"-"`                            // push target for reminders
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
