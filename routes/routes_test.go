package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"valetpro/handlers"
	"valetpro/models"
	ai "valetpro/services/intelligence"
	"valetpro/services/valet"
	"valetpro/utils"

	"github.com/gin-gonic/gin"
)

var driver = models.DriverRecord{Name: "Marcus Reed", MobileNumber: "555-0199"}

func newTestRouter(t *testing.T) (*gin.Engine, *valet.DefaultSessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := valet.NewDefaultSessionService(ai.NewMessageGenerator(nil, 0, nil), nil, driver, nil)
	t.Cleanup(svc.Close)

	r := gin.New()
	r.Use(utils.ErrorHandler())
	RegisterRoutes(r, handlers.NewHandlerBundle(handlers.NewSessionHandler(svc, nil)))
	return r, svc
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type sessionResponse struct {
	Session models.SessionState `json:"session"`
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) models.SessionState {
	t.Helper()
	var out sessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out.Session
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"generator":"offline"`) {
		t.Fatalf("body %s does not report offline generator", w.Body.String())
	}
}

func TestValetFlow(t *testing.T) {
	r, svc := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/session/register", models.RegistrationInput{
		Make: "Toyota", Model: "Camry", LicensePlate: "ABC123", MobileNumber: "555-0100",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register: status %d body %s", w.Code, w.Body.String())
	}
	if s := decodeSession(t, w); s.Phase != models.PhaseTracking {
		t.Fatalf("register: phase %s, want TRACKING", s.Phase)
	}
	svc.Wait()

	w = do(t, r, http.MethodGet, "/api/views/customer", nil)
	var cv models.CustomerView
	if err := json.Unmarshal(w.Body.Bytes(), &cv); err != nil {
		t.Fatalf("decode customer view: %v", err)
	}
	if !cv.CanRequest || !strings.Contains(cv.StatusMessage, "Toyota") || !strings.Contains(cv.StatusMessage, driver.Name) {
		t.Fatalf("customer view after register = %+v", cv)
	}

	if w = do(t, r, http.MethodPost, "/api/session/request", nil); w.Code != http.StatusOK {
		t.Fatalf("request: status %d body %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/api/session/bring", models.BringCarInput{Eta: "0"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bring eta 0: status %d, want 400", w.Code)
	}
	if svc.Snapshot().RetrievalStatus != models.StatusRequested {
		t.Fatalf("status changed after rejected ETA: %s", svc.Snapshot().RetrievalStatus)
	}

	w = do(t, r, http.MethodPost, "/api/session/bring", models.BringCarInput{Eta: "7"})
	if w.Code != http.StatusOK {
		t.Fatalf("bring eta 7: status %d body %s", w.Code, w.Body.String())
	}
	if s := decodeSession(t, w); s.RetrievalStatus != models.StatusInTransit || s.EtaMinutes != "7" {
		t.Fatalf("bring: %+v", s)
	}
	svc.Wait()

	w = do(t, r, http.MethodGet, "/api/views/valet", nil)
	var vv models.ValetView
	if err := json.Unmarshal(w.Body.Bytes(), &vv); err != nil {
		t.Fatalf("decode valet view: %v", err)
	}
	if vv.Action != models.ValetActionReady {
		t.Fatalf("valet action = %s, want ready", vv.Action)
	}

	if w = do(t, r, http.MethodPost, "/api/session/ready", nil); w.Code != http.StatusOK {
		t.Fatalf("ready: status %d body %s", w.Code, w.Body.String())
	}
	svc.Wait()

	// READY is terminal.
	if w = do(t, r, http.MethodPost, "/api/session/request", nil); w.Code != http.StatusConflict {
		t.Fatalf("request after ready: status %d, want 409", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/session/reset", nil)
	s := decodeSession(t, w)
	if s.Phase != models.PhaseRegistration || s.Vehicle != nil || s.RetrievalStatus != models.StatusNone || s.StatusMessage != "" {
		t.Fatalf("reset: %+v", s)
	}
}

func TestRegister_Errors(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/session/register", models.RegistrationInput{Make: "Toyota"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("incomplete vehicle: status %d, want 400", w.Code)
	}
	var er utils.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if er.Message != "All fields are required." {
		t.Fatalf("message = %q", er.Message)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/session/register", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json: status %d, want 400", rec.Code)
	}
}

func TestSwitchView(t *testing.T) {
	r, svc := newTestRouter(t)

	if w := do(t, r, http.MethodPut, "/api/session/view", models.ViewInput{View: models.ViewValet}); w.Code != http.StatusConflict {
		t.Fatalf("switch during registration: status %d, want 409", w.Code)
	}

	do(t, r, http.MethodPost, "/api/session/register", models.RegistrationInput{
		Make: "Toyota", Model: "Camry", LicensePlate: "ABC123", MobileNumber: "555-0100",
	})
	svc.Wait()

	w := do(t, r, http.MethodPut, "/api/session/view", models.ViewInput{View: models.ViewValet})
	if w.Code != http.StatusOK {
		t.Fatalf("switch view: status %d body %s", w.Code, w.Body.String())
	}
	if s := decodeSession(t, w); s.ActiveView != models.ViewValet {
		t.Fatalf("ActiveView = %s, want VALET", s.ActiveView)
	}
	if w := do(t, r, http.MethodPut, "/api/session/view", models.ViewInput{View: "BOSS"}); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown view: status %d, want 400", w.Code)
	}
}
