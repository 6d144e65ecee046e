package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. Only Cancelled is set through a dedicated action; the
// rest are reachable through the generic update handlers.
const (
	BookingStatusPending    = "Pending"
	BookingStatusConfirmed  = "Confirmed"
	BookingStatusCancelled  = "Cancelled"
	BookingStatusCompleted  = "Completed"
	BookingStatusInProgress = "In Progress"
)

// Payment statuses.
const (
	PaymentStatusPending       = "Pending"
	PaymentStatusPartiallyPaid = "Partially Paid"
	PaymentStatusPaid          = "Paid"
	PaymentStatusRefunded      = "Refunded"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Requester. UserID is nil for guest bookings; the contact fields are
	// copied from the session or the form at create time and never synced.
	UserID    *uint  `gorm:"index" json:"user_id"`
	UserName  string `gorm:"size:200;not null" json:"user_name"`
	UserEmail string `gorm:"size:255;not null" json:"user_email"`
	UserPhone string `gorm:"size:20;not null" json:"user_phone"`

	// Vehicle, denormalized. VehicleRef is the copied vehicle identifier,
	// not a foreign key.
	VehicleType string `gorm:"size:50" json:"vehicle_type"`
	VehicleName string `gorm:"size:100" json:"vehicle_name"`
	VehicleRef  string `gorm:"size:50" json:"vehicle_ref"`

	PickupCity string    `gorm:"size:50" json:"pickup_city"`
	DropCity   string    `gorm:"size:50" json:"drop_city"`
	PickupDate time.Time `json:"pickup_date"`
	DropDate   time.Time `json:"drop_date"`
	PickupTime string    `gorm:"size:10" json:"pickup_time"`

	TotalDays       int     `json:"total_days"`
	Distance        float64 `json:"distance"`
	TotalPassengers int     `json:"total_passengers"`

	PricePerKm    float64 `gorm:"type:decimal(10,2)" json:"price_per_km"`
	TotalAmount   float64 `gorm:"type:decimal(10,2)" json:"total_amount"`
	AdvancePaid   float64 `gorm:"type:decimal(10,2);default:0" json:"advance_paid"`
	BalanceAmount float64 `gorm:"type:decimal(10,2)" json:"balance_amount"`

	Status        string `gorm:"type:varchar(20);default:'Pending';index" json:"status"`
	PaymentStatus string `gorm:"type:varchar(20);default:'Pending'" json:"payment_status"`

	SpecialRequirements string `gorm:"type:text" json:"special_requirements"`
	DriverRequired      bool   `gorm:"default:true" json:"driver_required"`
	AdminNotes          string `gorm:"type:text" json:"admin_notes"`

	BookingDate time.Time `gorm:"autoCreateTime;index" json:"booking_date"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeSave recomputes the balance on every write, so no code path can
// persist a booking where balance != total - advance.
func (b *Booking) BeforeSave(tx *gorm.DB) error {
	b.BalanceAmount = b.TotalAmount - b.AdvancePaid
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentStatusPending
	}
	return nil
}

// OwnedBy reports whether the booking belongs to the given user. Guest
// bookings are owned by nobody.
func (b *Booking) OwnedBy(userID uint) bool {
	return b.UserID != nil && *b.UserID == userID
}
