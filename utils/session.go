package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vivekkumar001-ops/TripWheels/models"
)

// GenerateSessionToken returns the opaque cookie value and the hash that
// gets persisted. The raw token never touches the database.
func GenerateSessionToken() (string, string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}
	token := hex.EncodeToString(b)
	hash := sha256.Sum256([]byte(token))
	return token, hex.EncodeToString(hash[:]), nil
}

// CreateSession stores a login snapshot of the user and returns the cookie
// value for it.
func CreateSession(db *gorm.DB, user *models.User, maxAge time.Duration) (string, error) {
	token, hashed, err := GenerateSessionToken()
	if err != nil {
		return "", err
	}

	sess := models.Session{
		TokenHash: hashed,
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.FullName(),
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Phone:     user.Phone,
		City:      user.PreferredCity,
		IsAdmin:   user.IsAdmin,
		ExpiresAt: time.Now().Add(maxAge),
	}
	if err := db.Create(&sess).Error; err != nil {
		return "", err
	}
	return token, nil
}

// LookupSession resolves a cookie value to its unexpired session row.
func LookupSession(db *gorm.DB, token string) (*models.Session, error) {
	if token == "" {
		return nil, errors.New("missing session token")
	}
	hash := sha256.Sum256([]byte(token))
	hashed := hex.EncodeToString(hash[:])

	var sess models.Session
	err := db.Where("token_hash = ? AND expires_at > ?", hashed, time.Now()).First(&sess).Error
	if err != nil {
		return nil, errors.New("invalid or expired session")
	}
	return &sess, nil
}

// DestroySession deletes the session row for a cookie value.
func DestroySession(db *gorm.DB, token string) error {
	hash := sha256.Sum256([]byte(token))
	hashed := hex.EncodeToString(hash[:])
	return db.Where("token_hash = ?", hashed).Delete(&models.Session{}).Error
}
