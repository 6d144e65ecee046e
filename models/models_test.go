package models

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Vehicle{}, &Booking{}, &Contact{}, &Session{}))
	return db
}

func TestBookingBalanceRecomputedOnEveryWrite(t *testing.T) {
	db := newTestDB(t)

	booking := Booking{
		UserName:  "A",
		UserEmail: "a@b.com",
		UserPhone: "9999999999",
		// Deliberately inconsistent; the hook must fix it.
		TotalAmount:   4000,
		AdvancePaid:   500,
		BalanceAmount: 999,
	}
	require.NoError(t, db.Create(&booking).Error)
	assert.Equal(t, 3500.0, booking.BalanceAmount)

	booking.TotalAmount = 6000
	booking.AdvancePaid = 1000
	require.NoError(t, db.Save(&booking).Error)

	var got Booking
	require.NoError(t, db.First(&got, booking.ID).Error)
	assert.Equal(t, 5000.0, got.BalanceAmount)
}

func TestBookingDefaultsOnCreate(t *testing.T) {
	db := newTestDB(t)

	booking := Booking{UserName: "A", UserEmail: "a@b.com", UserPhone: "9999999999"}
	require.NoError(t, db.Create(&booking).Error)
	assert.Equal(t, BookingStatusPending, booking.Status)
	assert.Equal(t, PaymentStatusPending, booking.PaymentStatus)
	assert.False(t, booking.BookingDate.IsZero())
}

func TestBookingOwnedBy(t *testing.T) {
	id := uint(7)
	owned := Booking{UserID: &id}
	guest := Booking{}

	assert.True(t, owned.OwnedBy(7))
	assert.False(t, owned.OwnedBy(8))
	assert.False(t, guest.OwnedBy(7), "guest bookings are owned by nobody")
}

func TestUserEmailStoredLowercase(t *testing.T) {
	db := newTestDB(t)

	user := User{
		Firstname: "A", Lastname: "B",
		Email: "  MiXeD@CaSe.Com ", Phone: "9999999999", Password: "hash",
	}
	require.NoError(t, db.Create(&user).Error)
	assert.Equal(t, "mixed@case.com", user.Email)
	assert.Equal(t, "Delhi", user.PreferredCity)
	assert.Equal(t, UserStatusActive, user.Status)
}

func TestUserEmailUnique(t *testing.T) {
	db := newTestDB(t)

	first := User{Firstname: "A", Lastname: "B", Email: "a@b.com", Phone: "1", Password: "h"}
	require.NoError(t, db.Create(&first).Error)

	dup := User{Firstname: "C", Lastname: "D", Email: "A@B.com", Phone: "2", Password: "h"}
	assert.Error(t, db.Create(&dup).Error)
}

func TestContactRejectsUnknownSubject(t *testing.T) {
	db := newTestDB(t)

	bad := Contact{Name: "A", Email: "a@b.com", Subject: "Spam", Message: "hi"}
	assert.Error(t, db.Create(&bad).Error)

	good := Contact{Name: "A", Email: "a@b.com", Subject: "Feedback", Message: "hi"}
	require.NoError(t, db.Create(&good).Error)
	assert.Equal(t, ContactStatusNew, good.Status)
}

func TestVehicleRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)

	bad := Vehicle{VehicleType: "Spaceship", VehicleName: "X", VehicleNumber: "V1", RegistrationNumber: "R1"}
	assert.Error(t, db.Create(&bad).Error)

	good := Vehicle{VehicleType: "SUV", VehicleName: "X", VehicleNumber: "V1", RegistrationNumber: "R1"}
	require.NoError(t, db.Create(&good).Error)
	assert.Equal(t, 15.0, good.PricePerKm)
	assert.Equal(t, 4, good.SeatingCapacity)
}

func TestSessionSnapshot(t *testing.T) {
	sess := Session{
		UserID: 3, Email: "a@b.com", Name: "A B",
		Firstname: "A", Lastname: "B", Phone: "9999999999",
		City: "Goa", IsAdmin: true,
	}
	snap := sess.Snapshot()
	assert.Equal(t, uint(3), snap.ID)
	assert.Equal(t, "a@b.com", snap.Email)
	assert.Equal(t, "A B", snap.Name)
	assert.Equal(t, "Goa", snap.City)
	assert.True(t, snap.IsAdmin)
}

func TestUserFullName(t *testing.T) {
	u := User{Firstname: "Asha", Lastname: "Verma"}
	assert.Equal(t, "Asha Verma", u.FullName())
}
