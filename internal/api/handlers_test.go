package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"example.com/schoolactivities/internal/domain"
	"example.com/schoolactivities/internal/roster"
)

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	service := domain.NewService(roster.New(), nil, nil)
	handler := NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
}

func TestRootRedirectsToStatic(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodGet, "/")
	if rr.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307 got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/static/index.html" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestListActivities(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodGet, "/activities")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]ActivityView
	decodeBody(t, rr, &resp)

	if len(resp) != 9 {
		t.Fatalf("expected 9 activities got %d", len(resp))
	}
	for _, name := range []string{"Chess Club", "Programming Class", "Swimming Club"} {
		if _, ok := resp[name]; !ok {
			t.Fatalf("expected activity %q in response", name)
		}
	}

	chess := resp["Chess Club"]
	if chess.Description == "" || chess.Schedule == "" {
		t.Fatalf("chess club missing fields: %+v", chess)
	}
	if chess.MaxParticipants != 12 {
		t.Fatalf("expected max_participants 12 got %d", chess.MaxParticipants)
	}
	if len(chess.Participants) != 2 {
		t.Fatalf("expected 2 seeded participants got %v", chess.Participants)
	}
}

func TestSignupSuccess(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodPost, "/activities/Chess%20Club/signup?email=test@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp MessageResponse
	decodeBody(t, rr, &resp)
	if !strings.Contains(resp.Message, "test@mergington.edu") || !strings.Contains(resp.Message, "Chess Club") {
		t.Fatalf("unexpected message %q", resp.Message)
	}

	list := do(t, mux, http.MethodGet, "/activities")
	var activities map[string]ActivityView
	decodeBody(t, list, &activities)

	participants := activities["Chess Club"].Participants
	if len(participants) != 3 || participants[2] != "test@mergington.edu" {
		t.Fatalf("participant not appended: %v", participants)
	}
}

func TestSignupActivityNotFound(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodPost, "/activities/Fake%20Activity/signup?email=test@mergington.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}

	var resp map[string]string
	decodeBody(t, rr, &resp)
	if resp["detail"] != "Activity not found" {
		t.Fatalf("unexpected detail %q", resp["detail"])
	}
}

func TestSignupAlreadyRegistered(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}

	var resp map[string]string
	decodeBody(t, rr, &resp)
	if !strings.Contains(resp["detail"], "already signed up") {
		t.Fatalf("unexpected detail %q", resp["detail"])
	}

	list := do(t, mux, http.MethodGet, "/activities")
	var activities map[string]ActivityView
	decodeBody(t, list, &activities)
	if len(activities["Chess Club"].Participants) != 2 {
		t.Fatalf("roster mutated on rejected signup: %v", activities["Chess Club"].Participants)
	}
}

func TestSignupMissingEmail(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodPost, "/activities/Chess%20Club/signup")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestSignupWrongMethod(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodGet, "/activities/Chess%20Club/signup?email=test@mergington.edu")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}
}

func TestUnregisterSuccess(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodDelete, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp MessageResponse
	decodeBody(t, rr, &resp)
	if !strings.Contains(resp.Message, "michael@mergington.edu") || !strings.Contains(resp.Message, "Chess Club") {
		t.Fatalf("unexpected message %q", resp.Message)
	}

	list := do(t, mux, http.MethodGet, "/activities")
	var activities map[string]ActivityView
	decodeBody(t, list, &activities)

	for _, participant := range activities["Chess Club"].Participants {
		if participant == "michael@mergington.edu" {
			t.Fatal("participant still on roster after unregister")
		}
	}
}

func TestUnregisterActivityNotFound(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodDelete, "/activities/Fake%20Activity/unregister?email=test@mergington.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}

	var resp map[string]string
	decodeBody(t, rr, &resp)
	if resp["detail"] != "Activity not found" {
		t.Fatalf("unexpected detail %q", resp["detail"])
	}
}

func TestUnregisterNotSignedUp(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodDelete, "/activities/Chess%20Club/unregister?email=notregistered@mergington.edu")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}

	var resp map[string]string
	decodeBody(t, rr, &resp)
	if !strings.Contains(resp["detail"], "not signed up") {
		t.Fatalf("unexpected detail %q", resp["detail"])
	}
}

func TestUnregisterThenSignupAgain(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodDelete, "/activities/Programming%20Class/unregister?email=emma@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("unregister failed: %d %s", rr.Code, rr.Body.String())
	}

	rr = do(t, mux, http.MethodPost, "/activities/Programming%20Class/signup?email=emma@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("re-signup failed: %d %s", rr.Code, rr.Body.String())
	}

	list := do(t, mux, http.MethodGet, "/activities")
	var activities map[string]ActivityView
	decodeBody(t, list, &activities)

	found := false
	for _, participant := range activities["Programming Class"].Participants {
		if participant == "emma@mergington.edu" {
			found = true
		}
	}
	if !found {
		t.Fatalf("participant missing after re-signup: %v", activities["Programming Class"].Participants)
	}
}

func TestFullParticipantLifecycle(t *testing.T) {
	mux := newMux(t)
	email := "lifecycle@mergington.edu"

	list := do(t, mux, http.MethodGet, "/activities")
	var activities map[string]ActivityView
	decodeBody(t, list, &activities)
	initial := len(activities["Art Studio"].Participants)

	rr := do(t, mux, http.MethodPost, "/activities/Art%20Studio/signup?email="+email)
	if rr.Code != http.StatusOK {
		t.Fatalf("signup failed: %d", rr.Code)
	}

	list = do(t, mux, http.MethodGet, "/activities")
	decodeBody(t, list, &activities)
	if len(activities["Art Studio"].Participants) != initial+1 {
		t.Fatalf("expected roster to grow by one: %v", activities["Art Studio"].Participants)
	}

	rr = do(t, mux, http.MethodDelete, "/activities/Art%20Studio/unregister?email="+email)
	if rr.Code != http.StatusOK {
		t.Fatalf("unregister failed: %d", rr.Code)
	}

	list = do(t, mux, http.MethodGet, "/activities")
	decodeBody(t, list, &activities)
	if len(activities["Art Studio"].Participants) != initial {
		t.Fatalf("expected roster restored: %v", activities["Art Studio"].Participants)
	}
}

func TestUnknownActionIsNotFound(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodPost, "/activities/Chess%20Club/enroll?email=test@mergington.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestHealthz(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodGet, "/healthz")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}
