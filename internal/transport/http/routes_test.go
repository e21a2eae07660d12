package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sudoku-engine/pkg/config"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{SessionSecret: "test-secret-key-at-least-32-bytes-long"}
	RegisterRoutes(r, cfg)
	return r
}

func doJSON(router *gin.Engine, method, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func newSessionToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(router, "POST", "/api/session", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("create session: expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create-session response: %v", err)
	}
	token, ok := resp["session_token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected a session_token in response, got: %v", resp)
	}
	return token
}

func configureLatin2(t *testing.T, router *gin.Engine, token string) {
	t.Helper()
	w := doJSON(router, "POST", "/api/session/"+token+"/preset", map[string]interface{}{
		"kind":   "latin",
		"params": []int{2},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("apply preset: expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()
	w := doJSON(router, "GET", "/health", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %v, want \"ok\"", resp["status"])
	}
	if resp["version"] == nil {
		t.Errorf("expected a version field in the response")
	}
}

func TestCreateSessionReturnsToken(t *testing.T) {
	router := setupRouter()
	token := newSessionToken(t, router)
	if token == "" {
		t.Fatalf("expected a non-empty session token")
	}
}

func TestResolveSessionRejectsUnknownHandle(t *testing.T) {
	router := setupRouter()
	w := doJSON(router, "GET", "/api/session/not-a-real-token/output", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a malformed handle, got %d", w.Code)
	}
}

func TestPresetConfigProblemSolveFlow(t *testing.T) {
	router := setupRouter()
	token := newSessionToken(t, router)
	configureLatin2(t, router, token)

	w := doJSON(router, "POST", "/api/session/"+token+"/problem", map[string]interface{}{
		"problem": "....",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("load problem: expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	w = doJSON(router, "POST", "/api/session/"+token+"/solve", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("solve: expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode solve response: %v", err)
	}
	if resp["status"] != "solved" {
		t.Errorf("status = %v, want \"solved\"", resp["status"])
	}
	if resp["output"] == nil || resp["output"] == "" {
		t.Errorf("expected a non-empty output string")
	}
}

func TestOutputAndTraceEndpointsAfterSolve(t *testing.T) {
	router := setupRouter()
	token := newSessionToken(t, router)
	configureLatin2(t, router, token)
	doJSON(router, "POST", "/api/session/"+token+"/problem", map[string]interface{}{"problem": "...."})
	doJSON(router, "POST", "/api/session/"+token+"/solve", nil)

	w := doJSON(router, "GET", "/api/session/"+token+"/output", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("output: expected 200, got %d", w.Code)
	}

	w = doJSON(router, "GET", "/api/session/"+token+"/trace", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("trace: expected 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode trace response: %v", err)
	}
	if resp["steps"] == nil {
		t.Errorf("expected a steps field in the trace response")
	}
	if resp["constraints_used"] == nil {
		t.Errorf("expected a constraints_used field in the trace response")
	}
}

func TestConfigHandlerRejectsUnknownAttribute(t *testing.T) {
	router := setupRouter()
	token := newSessionToken(t, router)

	w := doJSON(router, "POST", "/api/session/"+token+"/config", map[string]interface{}{
		"key":   "not_a_real_attribute",
		"value": "x",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown configuration attribute, got %d", w.Code)
	}
}

func TestProblemHandlerRejectsConflictingGivens(t *testing.T) {
	router := setupRouter()
	token := newSessionToken(t, router)
	configureLatin2(t, router, token)

	w := doJSON(router, "POST", "/api/session/"+token+"/problem", map[string]interface{}{
		"problem": "AA..",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for conflicting givens, got %d. Body: %s", w.Code, w.Body.String())
	}
}

func TestPresetHandlerRejectsBadBrickDimensions(t *testing.T) {
	router := setupRouter()
	token := newSessionToken(t, router)

	w := doJSON(router, "POST", "/api/session/"+token+"/preset", map[string]interface{}{
		"kind":   "brick",
		"params": []int{2, 3, 5},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for indivisible brick dimensions, got %d. Body: %s", w.Code, w.Body.String())
	}
}
