// Package apitest provides a fake HBnB API server for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lbriand/hbnb/internal/place"
	"github.com/lbriand/hbnb/internal/review"
)

// Server fakes the rental API. It serves login, places, and reviews from
// in-memory fixtures and counts requests so tests can assert that a flow
// made (or skipped) a fetch.
type Server struct {
	*httptest.Server

	Email    string // accepted credentials
	Password string
	Token    string // token issued on successful login

	mu         sync.Mutex
	places     []*place.Place
	reviews    map[string][]*review.Review
	placeHits  int
	reviewHits int
	rejectMsg  string // when set, POST /reviews fails with 400 and this message
}

// New starts a fake API server with the given fixtures. The server is
// closed automatically when the test finishes.
func New(t *testing.T, places []*place.Place, reviews map[string][]*review.Review) *Server {
	t.Helper()

	s := &Server{
		Email:    "user@example.com",
		Password: "password",
		Token:    Token(t, "user-1"),
		places:   places,
		reviews:  reviews,
	}
	if s.reviews == nil {
		s.reviews = make(map[string][]*review.Review)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", s.handleLogin)
	mux.HandleFunc("/api/v1/places", s.handlePlaces)
	mux.HandleFunc("/api/v1/places/", s.handlePlaceRoute)
	mux.HandleFunc("/api/v1/reviews", s.handleSubmitReview)

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the API base URL including the /api/v1 prefix.
func (s *Server) BaseURL() string {
	return s.URL + "/api/v1"
}

// PlaceHits returns how many place fetches the server has seen.
func (s *Server) PlaceHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placeHits
}

// ReviewHits returns how many review submissions the server has seen.
func (s *Server) ReviewHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviewHits
}

// RejectReviews makes subsequent review submissions fail with a 400 and
// the given message, mimicking the duplicate/own-place server response.
func (s *Server) RejectReviews(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectMsg = msg
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}
	if creds.Email != s.Email || creds.Password != s.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access_token": s.Token})
}

func (s *Server) handlePlaces(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing or invalid token"})
		return
	}
	s.mu.Lock()
	s.placeHits++
	places := s.places
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, places)
}

// handlePlaceRoute serves /places/{id} and /places/{id}/reviews.
func (s *Server) handlePlaceRoute(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/places/")

	if id, ok := strings.CutSuffix(rest, "/reviews"); ok {
		s.mu.Lock()
		reviews := s.reviews[id]
		s.mu.Unlock()
		if reviews == nil {
			reviews = []*review.Review{}
		}
		writeJSON(w, http.StatusOK, reviews)
		return
	}

	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing or invalid token"})
		return
	}

	s.mu.Lock()
	s.placeHits++
	var found *place.Place
	for _, p := range s.places {
		if p.ID == rest {
			found = p
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "place not found"})
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing or invalid token"})
		return
	}

	var rev review.Review
	if err := json.NewDecoder(r.Body).Decode(&rev); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}

	s.mu.Lock()
	s.reviewHits++
	if s.rejectMsg != "" {
		msg := s.rejectMsg
		s.mu.Unlock()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}
	s.reviews[rev.PlaceID] = append(s.reviews[rev.PlaceID], &rev)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, &rev)
}

func (s *Server) authorized(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Token builds a signed bearer token carrying the given user id, shaped
// like the tokens the real API issues.
func Token(t *testing.T, userID string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": userID})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}
