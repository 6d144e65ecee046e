package models

import "time"

// Session is a server-side login record addressed by an opaque cookie.
// Only the sha256 of the cookie value is stored. The user fields are a
// snapshot taken at login; they go stale if the user record changes and
// are not refreshed for the lifetime of the session.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TokenHash string    `gorm:"uniqueIndex;size:64;not null" json:"-"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Email     string    `gorm:"size:255" json:"email"`
	Name      string    `gorm:"size:200" json:"name"`
	Firstname string    `gorm:"size:100" json:"firstname"`
	Lastname  string    `gorm:"size:100" json:"lastname"`
	Phone     string    `gorm:"size:20" json:"phone"`
	City      string    `gorm:"size:50" json:"city"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// SessionUser is the identity snapshot handed to handlers and returned by
// the session-check endpoint.
type SessionUser struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Snapshot converts the stored session row into the per-request identity.
func (s *Session) Snapshot() SessionUser {
	return SessionUser{
		ID:        s.UserID,
		Email:     s.Email,
		Name:      s.Name,
		Firstname: s.Firstname,
		Lastname:  s.Lastname,
		Phone:     s.Phone,
		City:      s.City,
		IsAdmin:   s.IsAdmin,
	}
}
