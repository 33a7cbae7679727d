package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer = "test-issuer"
	testUserID = "0190a1b2-0000-7000-8000-000000000001"
	testKey    = "secret-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.UserID != testUserID {
		t.Errorf("expected user id %s, got %s", testUserID, token.UserID)
	}
	if token.Issuer != testIssuer {
		t.Errorf("expected issuer %s, got %s", testIssuer, token.Issuer)
	}
	if token.String() != token.SignedString {
		t.Error("String must return the signed token")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUserID, time.Hour, testKey},
		{"empty user", testIssuer, "", time.Hour, testKey},
		{"zero duration", testIssuer, testUserID, 0, testKey},
		{"empty key", testIssuer, testUserID, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testKey, testIssuer)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != testUserID {
		t.Errorf("expected user id %s, got %s", testUserID, parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	expiredClaims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte(testKey))

	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testKey))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", testIssuer},
		{"wrong issuer", valid.SignedString, testKey, "other-issuer"},
		{"expired", expired, testKey, testIssuer},
		{"no subject", noSubject, testKey, testIssuer},
		{"garbage", "not.a.token", testKey, testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Fatalf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseUnverifiedClaims(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, testUserID, time.Hour, testKey)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, expiresAt, err := ParseUnverifiedClaims(generated.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != testUserID {
		t.Errorf("want %s, got %s", testUserID, userID)
	}
	if !expiresAt.After(time.Now()) {
		t.Errorf("expected expiry in the future, got %s", expiresAt)
	}

	if _, _, err := ParseUnverifiedClaims("garbage"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
