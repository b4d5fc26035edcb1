// Package api serves a running simulation over HTTP.
// GET endpoints are public (read-only observation).
// POST endpoints require a bearer token (admin control plane).
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/talgya/greenhouse/internal/outside"
	"github.com/talgya/greenhouse/internal/report"
	"github.com/talgya/greenhouse/internal/school"
	"github.com/talgya/greenhouse/internal/stakeholder"
)

// Server serves one live ecosystem over HTTP.
type Server struct {
	School    *school.Ecosystem
	World     *outside.World
	Utilities []*stakeholder.Utility
	Port      int
	AdminKey  string // Bearer token for POST endpoints. Empty = POST disabled.
	Metrics   *Collector

	// Guards School against concurrent advance and reads.
	mu sync.Mutex
}

// Handler builds the full route tree, including CORS handling. Split out
// from Start so tests can drive it directly.
func (s *Server) Handler() http.Handler {
	// The full-text report is the one expensive render.
	reportLimiter := NewRateLimiter(60, time.Hour)

	mux := http.NewServeMux()

	// Public endpoints, read-only. Anyone can check in on the school.
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/actors", s.handleActors)
	mux.HandleFunc("/api/v1/snapshot", s.handleSnapshot)
	mux.HandleFunc("/api/v1/report", RateLimitMiddleware(reportLimiter, s.handleReport))

	// Admin endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/advance", s.adminOnly(s.handleAdvance))

	if s.Metrics != nil {
		mux.Handle("/metrics", s.Metrics.Handler())
	}

	return corsMiddleware(mux)
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	handler := s.Handler()
	go func() {
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// Advance runs one simulated year under the server's lock and refreshes
// the metric gauges.
func (s *Server) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.School.SimulateYear()
	s.Metrics.Observe(s.School)
}

// Years returns the current year count under the server's lock.
func (s *Server) Years() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.School.YearsSimulated
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set SCHOOLSIM_CORS_ORIGINS to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("SCHOOLSIM_CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on POST requests.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if s.AdminKey == "" {
				http.Error(w, "admin endpoints disabled (no SCHOOLSIM_ADMIN_KEY set)", http.StatusForbidden)
				return
			}

			if !s.checkBearerToken(r) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}

		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var staffTotal, staffLeft, staffBurned, students int
	for _, a := range s.School.Actors {
		switch {
		case a.IsStaff():
			staffTotal++
			if a.HasLeftSystem {
				staffLeft++
			}
			if a.BurnedOut {
				staffBurned++
			}
		case a.IsStudent():
			students++
		}
	}

	writeJSON(w, map[string]any{
		"name":                   s.School.Name,
		"years_simulated":        s.School.YearsSimulated,
		"staff_total":            staffTotal,
		"staff_left":             staffLeft,
		"staff_burned_out":       staffBurned,
		"students":               students,
		"burnout_index":          s.School.Workforce.Burnout,
		"student_exit_rate":      s.School.Workforce.StudentExitRate,
		"suppression_level":      s.School.Change.Suppression,
		"efficiency_true":        s.School.Output.TrueEfficiency,
		"efficiency_recognized":  s.School.Output.RecognizedEfficiency,
		"productivity_index":     s.School.Output.Productivity,
		"required_threshold":     s.World.RequiredThreshold(),
		"outside_selection":      s.World.SelectionPressure,
		"outside_ai_shift_speed": s.World.AIShiftSpeed,
	})
}

func (s *Server) handleActors(w http.ResponseWriter, r *http.Request) {
	type actorSummary struct {
		Name            string  `json:"name"`
		Role            string  `json:"role"`
		OSVersion       string  `json:"os_version"`
		Adaptability    float64 `json:"adaptability"`
		Protected       bool    `json:"protected"`
		Status          string  `json:"status"`
		OpportunityCost float64 `json:"opportunity_cost"`
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []actorSummary
	for _, a := range s.School.Actors {
		result = append(result, actorSummary{
			Name:            a.Name,
			Role:            string(a.Role),
			OSVersion:       a.OSVersion,
			Adaptability:    a.Adaptability,
			Protected:       a.Protected,
			Status:          a.Status(),
			OpportunityCost: a.OpportunityCost,
		})
	}
	writeJSON(w, result)
}

// handleSnapshot returns every registry metric by its canonical name.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]float64)
	for _, name := range school.MetricNames() {
		fn, _ := school.Metric(name)
		snapshot[name] = fn(s.School)
	}
	writeJSON(w, snapshot)
}

// handleReport renders the non-mutating report surfaces as plain text.
// Reintegration and trajectories mutate actor state, so they stay off the
// read-only API.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	report.Summary(w, s.School)
	report.SurvivalTable(w, s.School, s.World)
	if err := report.Scores(w, s.School, s.Utilities); err != nil {
		slog.Error("render scores", "error", err)
	}
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.Advance()
	writeJSON(w, map[string]any{
		"years_simulated": s.Years(),
	})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
