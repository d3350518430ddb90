package config

import (
	"os"
	"strings"
	"testing"
)

func TestValidateEnv(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("DATABASE_URL", "postgres://localhost/raceday_test")
	defer os.Unsetenv("JWT_SECRET")
	defer os.Unsetenv("DATABASE_URL")

	if err := ValidateEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateEnvMissingCritical(t *testing.T) {
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("DATABASE_URL")

	err := ValidateEnv()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("error should name every missing variable: %v", err)
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("RACEDAY_TEST_KEY", "set-value")
	defer os.Unsetenv("RACEDAY_TEST_KEY")

	if got := GetEnv("RACEDAY_TEST_KEY", "fallback"); got != "set-value" {
		t.Errorf("got %q", got)
	}
	if got := GetEnv("RACEDAY_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
}
