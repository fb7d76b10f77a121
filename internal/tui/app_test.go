package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbriand/hbnb/internal/api"
	"github.com/lbriand/hbnb/internal/apitest"
)

func updateApp(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := a.Update(msg)
	app, ok := model.(App)
	if !ok {
		t.Fatalf("model = %T, want App", model)
	}
	return app, cmd
}

func TestAppDecodesUserFromStoredToken(t *testing.T) {
	tok := apitest.Token(t, "user-42")
	a := NewApp(api.New("http://example.invalid", tok), nil)

	if a.userID != "user-42" {
		t.Errorf("user id = %q, want user-42", a.userID)
	}
}

func TestAppOpenAndBack(t *testing.T) {
	a := NewApp(api.New("http://example.invalid", "tok"), nil)

	a, cmd := updateApp(t, a, openPlaceMsg{placeID: "p1"})
	if a.view != viewDetail {
		t.Fatalf("view = %v, want detail", a.view)
	}
	if a.detail.placeID != "p1" {
		t.Errorf("detail place = %q", a.detail.placeID)
	}
	if cmd == nil {
		t.Error("opening a place should start a fetch")
	}

	a, cmd = updateApp(t, a, backMsg{})
	if a.view != viewList {
		t.Fatalf("view = %v, want list", a.view)
	}
	if cmd == nil {
		t.Error("returning to the list should re-fetch it")
	}
}

func TestAppLoginFailureStaysOnForm(t *testing.T) {
	a := NewApp(api.New("http://example.invalid", ""), nil)
	a, _ = updateApp(t, a, needLoginMsg{})

	a, _ = updateApp(t, a, loginDoneMsg{err: errors.New("invalid credentials")})
	if a.view != viewLogin {
		t.Errorf("view = %v, want login", a.view)
	}
	if !strings.Contains(a.login.status, "Login failed") {
		t.Errorf("status = %q", a.login.status)
	}
}

func TestAppLoginSuccessReturnsToPlace(t *testing.T) {
	c := api.New("http://example.invalid", "")
	var saved string
	a := NewApp(c, func(tok string) error {
		saved = tok
		return nil
	})

	a, _ = updateApp(t, a, needLoginMsg{nextPlaceID: "p7"})

	tok := apitest.Token(t, "user-9")
	a, _ = updateApp(t, a, loginDoneMsg{token: tok})

	if a.view != viewDetail {
		t.Fatalf("view = %v, want detail", a.view)
	}
	if a.detail.placeID != "p7" {
		t.Errorf("detail place = %q, want p7", a.detail.placeID)
	}
	if c.Token() != tok {
		t.Error("client token not updated")
	}
	if saved != tok {
		t.Error("token not persisted")
	}
	if a.userID != "user-9" {
		t.Errorf("user id = %q, want user-9", a.userID)
	}
}

func TestAppQuitDisabledWhileEditing(t *testing.T) {
	a := NewApp(api.New("http://example.invalid", ""), nil)
	a, _ = updateApp(t, a, needLoginMsg{})

	a, cmd := updateApp(t, a, keyRunes("q"))
	if cmd != nil {
		t.Error("q should type into the form, not quit")
	}
	if a.login.email != "q" {
		t.Errorf("email = %q, want the typed character", a.login.email)
	}

	_, cmd = updateApp(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should always quit")
	}
}
