package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/satno7/superlists/internal/models"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!", time.Hour)

	token, err := manager.Generate(&models.User{Email: "edith@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Email != "edith@example.com" {
		t.Errorf("Email = %q, want edith@example.com", claims.Email)
	}
}

func TestJWTRejectsWrongKey(t *testing.T) {
	manager := NewJWTManager("correct-key", time.Hour)
	other := NewJWTManager("different-key", time.Hour)

	token, err := manager.Generate(&models.User{Email: "edith@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("err = %v, want ErrInvalidSession", err)
	}
}

func TestJWTRejectsExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Generate(&models.User{Email: "edith@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("err = %v, want ErrInvalidSession", err)
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	if _, err := manager.Validate("not.a.token"); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("err = %v, want ErrInvalidSession", err)
	}
}
