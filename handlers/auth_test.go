package handlers_test

import (
	"net/http"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	freshDB(t)
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "runner@example.com",
		"password": "password123",
		"name":     "Runner",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["token"] == nil || body["refresh_token"] == nil {
		t.Fatal("tokens missing from register response")
	}
	user := body["user"].(map[string]interface{})
	if user["role"] != "staff" {
		t.Errorf("self-registration must not grant admin: %v", user["role"])
	}
	if _, leaked := user["password"]; leaked {
		t.Error("password hash leaked in response")
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "runner@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	freshDB(t)
	r := newRouter()
	createUser(t, "taken@example.com", "password123", "staff")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "taken@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	freshDB(t)
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "runner@example.com",
		"password": "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	freshDB(t)
	r := newRouter()
	createUser(t, "runner@example.com", "password123", "staff")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "runner@example.com",
		"password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestGetProfile(t *testing.T) {
	freshDB(t)
	r := newRouter()
	user := createUser(t, "runner@example.com", "password123", "staff")
	token := tokenFor(t, user)

	w := doJSON(t, r, http.MethodGet, "/api/auth/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["email"] != "runner@example.com" {
		t.Errorf("profile body: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/profile", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: %d", w.Code)
	}
}
