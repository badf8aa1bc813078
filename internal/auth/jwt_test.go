package auth

import (
	"errors"
	"testing"
	"time"

	"iraxas/internal/domain"
)

func TestTokenManager_IssueParse(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, err := tm.Issue("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != string(domain.RoleAdmin) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("secret", -time.Minute)

	token, err := tm.Issue("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := tm.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Issue("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewTokenManager("secret-b", time.Hour).Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	if _, err := tm.Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}
