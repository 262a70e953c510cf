package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ledgerdesk/internal/modules/session/domain"
	apperrors "ledgerdesk/internal/platform/errors"
)

func TestPrivilegedRoles(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		"admin":   true,
		"manager": true,
		"Admin":   false,
		"user":    false,
		"":        false,
		"auditor": false,
	}
	for role, want := range cases {
		if got := (domain.User{Role: role}).Privileged(); got != want {
			t.Fatalf("role %q: expected privileged=%v, got %v", role, want, got)
		}
	}
}

func TestSignupValidationOrder(t *testing.T) {
	t.Parallel()
	cases := []struct {
		email, password, confirm string
		want                     string
	}{
		{"", "secret1", "secret1", domain.MsgMissingFields},
		{"a@b.com", "secret1", "", domain.MsgMissingFields},
		{"a@b.com", "abc", "abd", domain.MsgPasswordMismatch},
		{"a@b.com", "abc", "abc", domain.MsgPasswordTooShort},
		{"a@b.com", "ééé", "ééé", domain.MsgPasswordTooShort},
		{"a@b.com", "日本語パス", "日本語パス", domain.MsgPasswordTooShort},
	}
	for _, tc := range cases {
		err := domain.ValidateSignup(tc.email, tc.password, tc.confirm)
		if err == nil || err.Error() != tc.want {
			t.Fatalf("signup(%q,%q,%q): expected %q, got %v", tc.email, tc.password, tc.confirm, tc.want, err)
		}
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected validation error, got %T", err)
		}
	}
	for _, password := range []string{"secret1", "éééééé", "🔑🔑🔑"} {
		if err := domain.ValidateSignup("a@b.com", password, password); err != nil {
			t.Fatalf("valid signup %q rejected: %v", password, err)
		}
	}
}

func TestLoginValidation(t *testing.T) {
	t.Parallel()
	if err := domain.ValidateLogin("a@b.com", ""); err == nil || err.Error() != domain.MsgMissingFields {
		t.Fatalf("expected missing fields, got %v", err)
	}
	if err := domain.ValidateLogin("a@b.com", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()
	if _, redirect := domain.Guard("/dashboard", true, false); redirect {
		t.Fatalf("guard must not redirect while loading")
	}
	for _, path := range []string{"/", "/login", "/signup"} {
		if _, redirect := domain.Guard(path, false, false); redirect {
			t.Fatalf("public route %s redirected", path)
		}
	}
	target, redirect := domain.Guard("/dashboard/invoices", false, false)
	if !redirect || target != "/login" {
		t.Fatalf("expected redirect to /login, got %q %v", target, redirect)
	}
	if _, redirect := domain.Guard("/dashboard/invoices", false, true); redirect {
		t.Fatalf("authenticated user redirected")
	}
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	got, ok := domain.TokenExpiry(signed)
	if !ok || !got.Equal(exp) {
		t.Fatalf("expected %v, got %v ok=%v", exp, got, ok)
	}
	if _, ok := domain.TokenExpiry("tok-a"); ok {
		t.Fatalf("opaque token must have no expiry")
	}
}
