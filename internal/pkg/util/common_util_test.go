package util

import (
	"strings"
	"testing"
	"time"
)

func TestIsSupportedPlatform(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"instagram", true},
		{"Instagram", true},
		{" LINKEDIN ", true},
		{"tiktok", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSupportedPlatform(tt.name); got != tt.want {
			t.Errorf("IsSupportedPlatform(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-05-01T10:30:00Z")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("RFC3339 = %v", got)
	}

	got, err = ParseDate("2024-05-01")
	if err != nil {
		t.Fatal(err)
	}
	if got.Year() != 2024 || got.Month() != time.May || got.Day() != 1 {
		t.Errorf("date only = %v", got)
	}

	if _, err := ParseDate("tomorrow"); err == nil {
		t.Error("expected error for free text")
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		v, want int
	}{
		{0, 6},
		{3, 3},
		{-1, 1},
		{99, 24},
	}
	for _, tt := range tests {
		if got := ClampInt(tt.v, 6, 1, 24); got != tt.want {
			t.Errorf("ClampInt(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

type signupLike struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidateDTOUsesJSONNames(t *testing.T) {
	err := ValidateDTO(&signupLike{Email: "bad", Password: "short"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, field := range []string{"email", "password"} {
		if !strings.Contains(msg, "'"+field+"'") {
			t.Errorf("error %q does not mention %s", msg, field)
		}
	}

	if err := ValidateDTO(&signupLike{Email: "a@b.co", Password: "password123"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
