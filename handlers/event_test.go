package handlers_test

import (
	"net/http"
	"testing"

	"raceday-backend/models"
)

func TestCreateAndGetEvent(t *testing.T) {
	freshDB(t)
	r := newRouter()
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/events", token, map[string]string{
		"name":       "Da Nang Night Run",
		"location":   "Đà Nẵng",
		"event_date": "01/12/2026",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	id := decodeBody(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/events/"+id, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: %d %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["name"] != "Da Nang Night Run" {
		t.Errorf("body: %s", w.Body.String())
	}
}

func TestCreateEventRejectsBadDate(t *testing.T) {
	freshDB(t)
	r := newRouter()
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/events", token, map[string]string{
		"name":       "Da Nang Night Run",
		"event_date": "2026-12-01",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateEvent(t *testing.T) {
	freshDB(t)
	r := newRouter()
	token := adminToken(t)
	event := seedEvent(t, "Old Name")

	w := doJSON(t, r, http.MethodPut, "/api/admin/events/"+event.ID.String(), token, map[string]interface{}{
		"name":      "New Name",
		"is_active": false,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var stored models.Event
	testDB.First(&stored, "id = ?", event.ID)
	if stored.Name != "New Name" || stored.IsActive {
		t.Errorf("stored: %+v", stored)
	}
}

func TestDeleteEventBlockedByRegistrations(t *testing.T) {
	freshDB(t)
	r := newRouter()
	token := adminToken(t)
	event := seedEvent(t, "Da Nang Night Run")
	distance := seedDistance(t, event, "10KM", 150000, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+event.ID.String()+"/registrations", "",
		registrationPayload(distance.ID.String()))
	if w.Code != http.StatusCreated {
		t.Fatalf("seed registration: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/admin/events/"+event.ID.String(), token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var count int64
	testDB.Model(&models.Event{}).Where("id = ?", event.ID).Count(&count)
	if count != 1 {
		t.Error("event was deleted despite registrations")
	}
}

func TestDeleteEvent(t *testing.T) {
	freshDB(t)
	r := newRouter()
	token := adminToken(t)
	event := seedEvent(t, "Empty Event")

	w := doJSON(t, r, http.MethodDelete, "/api/admin/events/"+event.ID.String(), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/events/"+event.ID.String(), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("soft-deleted event still served: %d", w.Code)
	}
}

func TestEventManagementRequiresAdmin(t *testing.T) {
	freshDB(t)
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/admin/events", "", map[string]string{"name": "X"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated: %d", w.Code)
	}

	staff := createUser(t, "staff@test.local", "password123", "staff")
	w = doJSON(t, r, http.MethodPost, "/api/admin/events", tokenFor(t, staff), map[string]string{"name": "X"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("staff: %d", w.Code)
	}
}
