package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chairman-shop/chairman/internal/apperr"
	"github.com/chairman-shop/chairman/internal/audit"
	"github.com/chairman-shop/chairman/internal/models"
)

// Local operator authentication. No network involved: passwords are
// bcrypt-hashed in the embedded database and remember-me works through
// a device token file on the operator's machine.

const deviceTokenTTL = 30 * 24 * time.Hour

type Service struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewService(db *gorm.DB, audit *audit.Dispatcher) *Service {
	return &Service{db: db, audit: audit}
}

// Register creates the operator account. A single-user application:
// registering a second account with the same email fails.
func (s *Service) Register(
	ctx context.Context,
	name string,
	email string,
	password string,
) (*models.User, error) {

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperr.InvalidInput("email", "cannot be empty")
	}
	if len(password) < 6 {
		return nil, apperr.InvalidInput("password", "must be at least 6 characters")
	}

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	if count > 0 {
		return nil, apperr.Duplicate("user", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, apperr.Persistence(err)
	}

	s.audit.Dispatch(audit.Event{
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}

func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Persistence(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.InvalidInput("password", "incorrect password")
	}

	return &user, nil
}

// RememberDevice issues a fresh device token for the user and returns
// the raw value. Only its hash is stored.
func (s *Service) RememberDevice(
	ctx context.Context,
	userID uint,
) (string, error) {

	raw := uuid.NewString()

	token := &models.DeviceToken{
		UserID:    userID,
		TokenHash: hashToken(raw),
		ExpiresAt: time.Now().Add(deviceTokenTTL),
	}

	if err := s.db.WithContext(ctx).Create(token).Error; err != nil {
		return "", apperr.Persistence(err)
	}

	return raw, nil
}

// CheckDeviceToken resolves a raw token back to its user. Expired
// tokens are deleted on the way out.
func (s *Service) CheckDeviceToken(
	ctx context.Context,
	raw string,
) (*models.User, error) {

	var token models.DeviceToken
	if err := s.db.WithContext(ctx).
		Where("token_hash = ?", hashToken(raw)).
		First(&token).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("device token")
		}
		return nil, apperr.Persistence(err)
	}

	if time.Now().After(token.ExpiresAt) {
		s.db.WithContext(ctx).Delete(&token)
		return nil, apperr.NotFound("device token")
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, token.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Persistence(err)
	}

	return &user, nil
}

// Logout revokes every device token for the user.
func (s *Service) Logout(ctx context.Context, userID uint) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.DeviceToken{}).Error; err != nil {
		return apperr.Persistence(err)
	}

	s.audit.Dispatch(audit.Event{
		Action:   "user_logged_out",
		Entity:   "user",
		EntityID: &userID,
	})

	return nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
