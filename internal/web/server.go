// Package web provides the HTTP server that renders the place listings as
// web pages. It holds no data of its own: every page proxies the rental
// API, and the session is a bearer token in a browser cookie.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/lbriand/hbnb/internal/api"
	"github.com/lbriand/hbnb/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// cookieName is the session cookie carrying the API bearer token.
const cookieName = "token"

// placeholderImage is the card image used for titles with no mapping.
const placeholderImage = "/static/placeholder.svg"

// Server is the web UI HTTP server.
type Server struct {
	apiBase   string
	images    map[string]string // place title -> card image URL
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates a web server proxying the rental API at apiBase.
// images maps place titles to card image URLs; unmapped titles get a
// placeholder.
func NewServer(apiBase string, images map[string]string) (*Server, error) {
	funcMap := template.FuncMap{
		"formatPrice": tmplFormatPrice,
		"stars":       tmplStars,
		"seq":         tmplSeq,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		apiBase:   apiBase,
		images:    images,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/place", s.handlePlace)
	s.mux.HandleFunc("/review", s.handleReviewPost)
	s.mux.HandleFunc("/login", s.handleLogin)
	s.mux.HandleFunc("/logout", s.handleLogout)
	s.mux.HandleFunc("/health", s.handleHealth)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting web UI on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

// client builds an API client carrying the session token from the request
// cookie, if any.
func (s *Server) client(r *http.Request) *api.Client {
	return api.New(s.apiBase, sessionToken(r))
}

// sessionToken reads the bearer token from the session cookie.
// Returns "" when the visitor is anonymous.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setSession stores the bearer token in the session cookie.
func setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSession expires the session cookie.
func clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// imageFor resolves a place title to a card image URL.
func (s *Server) imageFor(title string) string {
	if url, ok := s.images[title]; ok {
		return url
	}
	return placeholderImage
}

// render executes a template, reporting failures as 500s.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering page: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}
