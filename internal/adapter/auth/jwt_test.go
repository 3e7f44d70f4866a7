package auth

import (
	"errors"
	"testing"
	"time"

	"docqa/internal/domain"
)

var testUser = domain.User{ID: "u1", Email: "alice@example.com"}

func TestTokenRoundtrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "u1" {
		t.Errorf("UserID = %q", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("secret", -time.Hour)

	token, err := svc.Issue(testUser)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret", time.Hour).Issue(testUser)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewTokenService("other", time.Hour).Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Verify("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"bearer abc123", ""},
		{"Basic abc123", ""},
		{"abc123", ""},
		{"", ""},
		{"Bearer abc 123", ""},
	}

	for _, tt := range tests {
		if got := ExtractBearer(tt.header); got != tt.want {
			t.Errorf("ExtractBearer(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
