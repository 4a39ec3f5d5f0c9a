package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/signup/internal/domain"
	"example.com/signup/internal/registry"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	service := domain.NewService(registry.NewInMemoryDirectory())
	handler := NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux
}

func listActivities(t *testing.T, mux *http.ServeMux) map[string]ActivityView {
	t.Helper()
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activities", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var views map[string]ActivityView
	if err := json.Unmarshal(rr.Body.Bytes(), &views); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return views
}

func TestListActivities(t *testing.T) {
	mux := newTestMux(t)

	views := listActivities(t, mux)

	basketball, ok := views["Basketball"]
	if !ok {
		t.Fatal("expected Basketball in listing")
	}
	if basketball.Description != "Team sport focusing on basketball skills and competition" {
		t.Fatalf("unexpected description %q", basketball.Description)
	}
	if _, ok := views["Tennis Club"]; !ok {
		t.Fatal("expected Tennis Club in listing")
	}
}

func TestSignupSuccess(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/activities/Basketball/signup?email=newemail@mergington.edu", nil)
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "Signed up") {
		t.Fatalf("unexpected message %q", resp.Message)
	}

	views := listActivities(t, mux)
	found := false
	for _, participant := range views["Basketball"].Participants {
		if participant == "newemail@mergington.edu" {
			found = true
		}
	}
	if !found {
		t.Fatal("new participant missing from listing after signup")
	}
}

func TestSignupDuplicate(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/activities/Basketball/signup?email=james@mergington.edu", nil)
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if !strings.Contains(decodeDetail(t, rr), "already signed up") {
		t.Fatalf("unexpected detail %q", decodeDetail(t, rr))
	}
}

func TestSignupUnknownActivity(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/activities/NonexistentClub/signup?email=test@mergington.edu", nil)
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	if decodeDetail(t, rr) != "Activity not found" {
		t.Fatalf("unexpected detail %q", decodeDetail(t, rr))
	}
}

func TestSignupMissingEmail(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/activities/Basketball/signup", nil)
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestUnregisterSuccess(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/activities/Basketball/unregister?email=james@mergington.edu", nil)
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "Unregistered") {
		t.Fatalf("unexpected message %q", resp.Message)
	}

	views := listActivities(t, mux)
	for _, participant := range views["Basketball"].Participants {
		if participant == "james@mergington.edu" {
			t.Fatal("participant still listed after unregister")
		}
	}
}

func TestUnregisterNotSignedUp(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/activities/Basketball/unregister?email=notexist@mergington.edu", nil)
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if !strings.Contains(decodeDetail(t, rr), "not signed up") {
		t.Fatalf("unexpected detail %q", decodeDetail(t, rr))
	}
}

func TestUnregisterUnknownActivity(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/activities/NonexistentClub/unregister?email=test@mergington.edu", nil)
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/activities/Basketball/signup?email=test@mergington.edu", nil)
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}
}

// Activity names with spaces arrive percent-encoded and must round-trip
// through signup and unregister.
func TestSignupThenUnregister(t *testing.T) {
	mux := newTestMux(t)
	email := "integration@mergington.edu"

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/activities/Tennis%20Club/signup?email="+email, nil)
	mux.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	views := listActivities(t, mux)
	require.Contains(t, views["Tennis Club"].Participants, email)

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/activities/Tennis%20Club/unregister?email="+email, nil)
	mux.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	views = listActivities(t, mux)
	require.NotContains(t, views["Tennis Club"].Participants, email)
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode error payload: %v", err)
	}
	return payload["detail"]
}

func TestHealthz(t *testing.T) {
	mux := newTestMux(t)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}
