package auth

import (
	"context"
	"testing"
	"time"

	"github.com/chairman-shop/chairman/internal/apperr"
	"github.com/chairman-shop/chairman/internal/audit"
	dbpkg "github.com/chairman-shop/chairman/internal/db"
	"github.com/chairman-shop/chairman/internal/models"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := dbpkg.Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return NewService(db, audit.NewDispatcher(audit.New(db))), db
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "The Chairman", "  Boss@Shop.COM ", "trimmed1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "boss@shop.com" {
		t.Fatalf("email = %q, want normalized", user.Email)
	}
	if user.PasswordHash == "trimmed1" {
		t.Fatal("password stored in the clear")
	}

	got, err := svc.Authenticate(ctx, "boss@shop.com", "trimmed1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("user id = %d, want %d", got.ID, user.ID)
	}

	_, err = svc.Authenticate(ctx, "boss@shop.com", "wrong")
	if !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("wrong password err = %v, want invalid_input", err)
	}

	_, err = svc.Authenticate(ctx, "nobody@shop.com", "trimmed1")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("unknown email err = %v, want not_found", err)
	}
}

func TestRegister_Invalid(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "X", "", "trimmed1"); !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("empty email err = %v", err)
	}
	if _, err := svc.Register(ctx, "X", "x@y.com", "short"); !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("short password err = %v", err)
	}

	if _, err := svc.Register(ctx, "X", "x@y.com", "trimmed1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(ctx, "Y", "X@Y.com", "trimmed2")
	if !apperr.Is(err, apperr.KindDuplicateEntity) {
		t.Fatalf("duplicate email err = %v, want duplicate_entity", err)
	}
}

func TestDeviceToken(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "The Chairman", "boss@shop.com", "trimmed1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	raw, err := svc.RememberDevice(ctx, user.ID)
	if err != nil {
		t.Fatalf("remember: %v", err)
	}

	// The raw token never touches the database.
	var count int64
	if err := db.Model(&models.DeviceToken{}).
		Where("token_hash = ?", raw).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatal("raw token stored unhashed")
	}

	got, err := svc.CheckDeviceToken(ctx, raw)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("token resolved to user %d, want %d", got.ID, user.ID)
	}

	if _, err := svc.CheckDeviceToken(ctx, "not-a-token"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("bogus token err = %v, want not_found", err)
	}

	if err := svc.Logout(ctx, user.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.CheckDeviceToken(ctx, raw); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("token after logout err = %v, want not_found", err)
	}
}

func TestDeviceToken_Expired(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "The Chairman", "boss@shop.com", "trimmed1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	raw, err := svc.RememberDevice(ctx, user.ID)
	if err != nil {
		t.Fatalf("remember: %v", err)
	}

	if err := db.Model(&models.DeviceToken{}).
		Where("user_id = ?", user.ID).
		Update("expires_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("age token: %v", err)
	}

	if _, err := svc.CheckDeviceToken(ctx, raw); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expired token err = %v, want not_found", err)
	}

	// Expired tokens are purged on first use.
	var count int64
	if err := db.Model(&models.DeviceToken{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expired token left behind, count = %d", count)
	}
}
