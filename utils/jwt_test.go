package utils

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-for-tests-only")

	userID := uuid.New()
	token, err := GenerateToken(userID, "user@example.com", "admin")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != userID {
		t.Errorf("user id: %s", claims.UserID)
	}
	if claims.Email != "user@example.com" || claims.Role != "admin" {
		t.Errorf("claims: %+v", claims)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-for-tests-only")

	token, err := GenerateToken(uuid.New(), "user@example.com", "staff")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "first-secret-value")
	token, err := GenerateToken(uuid.New(), "user@example.com", "staff")
	if err != nil {
		t.Fatal(err)
	}

	os.Setenv("JWT_SECRET", "second-secret-value")
	defer os.Setenv("JWT_SECRET", "test-secret-key-for-tests-only")

	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}
