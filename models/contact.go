package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Contact message statuses.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// ContactSubjects are the only subjects the contact form accepts.
var ContactSubjects = []string{
	"Booking Inquiry", "Vehicle Information", "Complaint",
	"Feedback", "Partnership", "Other",
}

type Contact struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"size:200;not null" json:"name"`
	Email      string     `gorm:"size:255;not null" json:"email"`
	Phone      string     `gorm:"size:20" json:"phone"`
	Subject    string     `gorm:"size:50;not null" json:"subject"`
	Message    string     `gorm:"type:text;not null" json:"message"`
	Date       time.Time  `gorm:"autoCreateTime;index" json:"date"`
	Status     string     `gorm:"type:varchar(20);default:'new'" json:"status"`
	Read       bool       `gorm:"default:false" json:"read"`
	AdminNotes string     `gorm:"type:text" json:"admin_notes"`
	RepliedAt  *time.Time `json:"replied_at,omitempty"`
	UserID     *uint      `gorm:"index" json:"user_id,omitempty"` // set when the sender was logged in
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (m *Contact) BeforeSave(tx *gorm.DB) error {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	valid := false
	for _, s := range ContactSubjects {
		if m.Subject == s {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid contact subject %q", m.Subject)
	}
	if m.Status == "" {
		m.Status = ContactStatusNew
	}
	return nil
}
