package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User statuses. Only active users may log in.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusPending   = "pending"
	UserStatusSuspended = "suspended"
)

// Cities offered on the registration form.
var PreferredCities = []string{"Delhi", "Mumbai", "Bangalore", "Goa", "Jaipur", "Kerala", "Other"}

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Firstname     string    `gorm:"size:100;not null" json:"firstname"`
	Lastname      string    `gorm:"size:100;not null" json:"lastname"`
	Email         string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone         string    `gorm:"size:20;not null" json:"phone"`
	Password      string    `gorm:"not null" json:"-"` // bcrypt hash
	PreferredCity string    `gorm:"size:50;default:'Delhi'" json:"preferred_city"`
	Status        string    `gorm:"type:varchar(20);default:'active';index" json:"status"`
	IsAdmin       bool      `gorm:"default:false" json:"is_admin"`
	AdminNotes    string    `gorm:"type:text" json:"admin_notes"`
	Bookings      []Booking `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeSave keeps emails lowercase so the unique index is case-insensitive
// in practice, and backfills the city default for rows written without one.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.PreferredCity == "" {
		u.PreferredCity = "Delhi"
	}
	if u.Status == "" {
		u.Status = UserStatusActive
	}
	return nil
}

// FullName is the display name denormalized into sessions and bookings.
func (u *User) FullName() string {
	return u.Firstname + " " + u.Lastname
}
