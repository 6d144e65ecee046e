package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vivekkumar001-ops/TripWheels/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}))
	return db
}

func testUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Firstname: "Asha", Lastname: "Verma",
		Email: "asha@b.com", Phone: "9999999999", Password: "hash",
		PreferredCity: "Goa",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestGenerateSessionTokenUnique(t *testing.T) {
	token1, hash1, err := GenerateSessionToken()
	require.NoError(t, err)
	token2, hash2, err := GenerateSessionToken()
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2)
	assert.NotEqual(t, hash1, hash2)
	assert.NotEqual(t, token1, hash1, "the stored hash must differ from the cookie value")
	assert.Len(t, hash1, 64)
}

func TestSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	user := testUser(t, db)

	token, err := CreateSession(db, user, time.Hour)
	require.NoError(t, err)

	sess, err := LookupSession(db, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sess.UserID)
	assert.Equal(t, "Asha Verma", sess.Name)
	assert.Equal(t, "Goa", sess.City)

	require.NoError(t, DestroySession(db, token))
	_, err = LookupSession(db, token)
	assert.Error(t, err)
}

func TestLookupSessionRejectsExpired(t *testing.T) {
	db := newTestDB(t)
	user := testUser(t, db)

	token, err := CreateSession(db, user, -time.Minute)
	require.NoError(t, err)

	_, err = LookupSession(db, token)
	assert.Error(t, err)
}

func TestLookupSessionRejectsGarbage(t *testing.T) {
	db := newTestDB(t)

	_, err := LookupSession(db, "")
	assert.Error(t, err)
	_, err = LookupSession(db, "not-a-real-token")
	assert.Error(t, err)
}

// The snapshot is written at login and deliberately not refreshed when the
// user record changes afterwards.
func TestSessionSnapshotIsStale(t *testing.T) {
	db := newTestDB(t)
	user := testUser(t, db)

	token, err := CreateSession(db, user, time.Hour)
	require.NoError(t, err)

	require.NoError(t, db.Model(user).Update("phone", "8888888888").Error)

	sess, err := LookupSession(db, token)
	require.NoError(t, err)
	assert.Equal(t, "9999999999", sess.Phone)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("admin124", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestSeedAdminUserIdempotent(t *testing.T) {
	db := newTestDB(t)

	SeedAdminUser(db, "admin@tripwheels.com", "admin123")
	SeedAdminUser(db, "admin@tripwheels.com", "admin123")

	var admins []models.User
	require.NoError(t, db.Where("email = ?", "admin@tripwheels.com").Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.True(t, admins[0].IsAdmin)
	assert.Equal(t, models.UserStatusActive, admins[0].Status)
	assert.True(t, CheckPasswordHash("admin123", admins[0].Password))
}
