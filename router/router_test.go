// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/preciouskorir/voting-system/metrics"
	"github.com/preciouskorir/voting-system/models"
	"github.com/preciouskorir/voting-system/testutil"
	"github.com/preciouskorir/voting-system/voting"
)

func setupRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	db := testutil.SetupSeededDB(t)

	staticDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(staticDir, "login.html"), []byte("<h1>Login</h1>"), 0o644); err != nil {
		t.Fatalf("Failed to write static file: %v", err)
	}

	cfg := testutil.GetTestConfig()
	cfg.StaticDir = staticDir

	reg := prometheus.NewRegistry()
	svc := voting.NewService(db, voting.WithMetrics(metrics.New(reg)))
	return NewRouter(svc, cfg, reg)
}

func TestHealthEndpoint(t *testing.T) {
	mux := setupRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestHealthEndpointStoreDown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := voting.NewService(db)
	mux := NewRouter(svc, testutil.GetTestConfig(), prometheus.NewRegistry())
	db.Close()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
}

func TestRootRedirectsToLogin(t *testing.T) {
	mux := setupRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login.html" {
		t.Errorf("Expected redirect to /login.html, got '%s'", loc)
	}
}

func TestStaticFiles(t *testing.T) {
	mux := setupRouter(t)

	req := httptest.NewRequest("GET", "/login.html", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Login") {
		t.Errorf("Expected login page, got '%s'", w.Body.String())
	}

	req = httptest.NewRequest("GET", "/missing.html", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for missing file, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux := setupRouter(t)

	login := testutil.MakeRequest("POST", "/login", map[string]string{"id_number": "41581309"}, nil)
	mux.ServeHTTP(httptest.NewRecorder(), login)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `voting_logins_total{result="ok"} 1`) {
		t.Errorf("Expected login counter in metrics output, got:\n%s", w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := setupRouter(t)

	// Routes may reject the empty request, but must never 404 or 405
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/metrics"},
		{"POST", "/login"},
		{"GET", "/candidates"},
		{"POST", "/vote"},
		{"GET", "/results"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s not registered, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := setupRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"PUT", "/login"},
		{"PUT", "/vote"},
		{"POST", "/results"},
		{"POST", "/candidates"},
		{"DELETE", "/candidates"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected status 405, got %d", w.Code)
			}
		})
	}
}

func TestFullVotingFlow(t *testing.T) {
	mux := setupRouter(t)

	// Login
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/login", models.LoginRequest{IDNumber: "41581310"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)
	if login.County != "Mombasa" {
		t.Fatalf("Expected county 'Mombasa', got '%s'", login.County)
	}

	// Ballot
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/candidates?voterId="+strconv.FormatInt(login.UserID, 10), nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var candidates []models.Candidate
	testutil.AssertJSON(t, w, &candidates)
	if len(candidates) == 0 || candidates[0].Category != models.CategoryPresident {
		t.Fatalf("Expected a ballot starting with President, got %+v", candidates)
	}

	// Vote, then vote again in the same category
	vote := models.CastVoteRequest{VoterID: login.UserID, CandidateID: candidates[0].ID}
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/vote", vote, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/vote", vote, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Results
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/results?category=President", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if len(results.Categories) != 1 || results.Categories[0].TotalVotes != 1 {
		t.Errorf("Expected 1 presidential vote, got %+v", results.Categories)
	}
}
