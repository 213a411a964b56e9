package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/orreryworks/solarsim/core"
	"github.com/orreryworks/solarsim/internal/viewstate"
	"github.com/orreryworks/solarsim/timectrl"
	"github.com/orreryworks/solarsim/units"
)

const testEpoch = units.JulianDate(2459945.5)

func newTestStore(t *testing.T) *viewstate.Store {
	t.Helper()
	system, err := core.New(testEpoch)
	if err != nil {
		t.Fatalf("core.New: %v", err)
	}
	runner := timectrl.NewRunner(system, 30*time.Minute, timectrl.Accelerated)
	return viewstate.NewStore(runner, nil)
}

func TestHandleBodies(t *testing.T) {
	store := newTestStore(t)

	rec := httptest.NewRecorder()
	handleBodies(store)(rec, httptest.NewRequest(http.MethodGet, "/v1/bodies", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /v1/bodies = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var snap viewstate.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if snap.JulianDate != testEpoch.Days() {
		t.Errorf("julian_date = %v, want %v", snap.JulianDate, testEpoch.Days())
	}
	if len(snap.Bodies) != 10 {
		t.Errorf("bodies = %d, want 10", len(snap.Bodies))
	}
}

func TestHandleBodiesRejectsPost(t *testing.T) {
	store := newTestStore(t)

	rec := httptest.NewRecorder()
	handleBodies(store)(rec, httptest.NewRequest(http.MethodPost, "/v1/bodies", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /v1/bodies = %d, want 405", rec.Code)
	}
}

func TestHandleTime(t *testing.T) {
	store := newTestStore(t)

	rec := httptest.NewRecorder()
	handleTime(store)(rec, httptest.NewRequest(http.MethodGet, "/v1/time", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /v1/time = %d, want 200", rec.Code)
	}

	var got struct {
		JulianDate float64   `json:"julian_date"`
		Time       time.Time `json:"time"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.JulianDate != testEpoch.Days() {
		t.Errorf("julian_date = %v, want %v", got.JulianDate, testEpoch.Days())
	}
	if got.Time.IsZero() {
		t.Error("time field is zero")
	}
}

func TestHandleTimeRejectsPost(t *testing.T) {
	store := newTestStore(t)

	rec := httptest.NewRecorder()
	handleTime(store)(rec, httptest.NewRequest(http.MethodPost, "/v1/time", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /v1/time = %d, want 405", rec.Code)
	}
}
