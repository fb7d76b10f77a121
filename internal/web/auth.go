package web

import (
	"net/http"
	"strings"
)

type loginData struct {
	Next  string
	Error string
}

// handleLogin renders the login form and processes submissions. On
// success the token lands in the session cookie and the browser goes to
// the next target (default: home).
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.render(w, "login.html", loginData{Next: r.URL.Query().Get("next")})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	data := loginData{Next: next}

	if email == "" || password == "" {
		data.Error = "Email and password are required"
		s.render(w, "login.html", data)
		return
	}

	tok, err := s.client(r).Login(r.Context(), email, password)
	if err != nil {
		// A failed attempt never touches the stored session.
		data.Error = "Login failed: " + err.Error()
		s.render(w, "login.html", data)
		return
	}

	setSession(w, tok)
	http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
}

// handleLogout clears the session cookie and returns home.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	clearSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// safeNext restricts post-login redirects to local paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
