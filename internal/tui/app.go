// Package tui implements the interactive terminal browser for places and
// reviews, built on Bubble Tea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbriand/hbnb/internal/api"
	"github.com/lbriand/hbnb/internal/token"
)

type view int

const (
	viewList view = iota
	viewDetail
	viewLogin
)

// openPlaceMsg switches to the detail view for a place.
type openPlaceMsg struct {
	placeID string
}

// backMsg returns to the place list.
type backMsg struct{}

// needLoginMsg switches to the login view. nextPlaceID, when set, is the
// place to return to after a successful login.
type needLoginMsg struct {
	nextPlaceID string
}

// loginDoneMsg carries the result of a login attempt.
type loginDoneMsg struct {
	token string
	err   error
}

// App is the root Bubble Tea model.
type App struct {
	client    *api.Client
	saveToken func(string) error
	view      view
	list      listModel
	detail    detailModel
	login     loginModel
	userID    string
	width     int
	height    int
}

// NewApp creates the TUI application. saveToken persists the session token
// after an in-TUI login so later CLI invocations stay logged in.
func NewApp(c *api.Client, saveToken func(string) error) App {
	a := App{
		client:    c,
		saveToken: saveToken,
	}
	if tok := c.Token(); tok != "" {
		if id, err := token.UserID(tok); err == nil {
			a.userID = id
		}
	}
	a.list = newListModel(c)
	return a
}

func (a App) Init() tea.Cmd {
	return a.list.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list, _ = a.list.Update(msg)
		a.detail, _ = a.detail.Update(msg)
		a.login, _ = a.login.Update(msg)
		return a, nil

	case openPlaceMsg:
		a.view = viewDetail
		a.detail = newDetailModel(a.client, msg.placeID, a.userID)
		a.detail.width = a.width
		a.detail.height = a.height
		return a, a.detail.Init()

	case backMsg:
		// Views always re-fetch; the list is never served from memory.
		a.view = viewList
		a.list = newListModel(a.client)
		a.list.width = a.width
		a.list.height = a.height
		return a, a.list.Init()

	case needLoginMsg:
		a.view = viewLogin
		a.login = newLoginModel(a.client, msg.nextPlaceID)
		a.login.width = a.width
		a.login.height = a.height
		return a, nil

	case loginDoneMsg:
		if msg.err != nil {
			a.login.loading = false
			a.login.status = "Login failed: " + msg.err.Error()
			return a, nil
		}
		a.client.SetToken(msg.token)
		if id, err := token.UserID(msg.token); err == nil {
			a.userID = id
		}
		if a.saveToken != nil {
			if err := a.saveToken(msg.token); err != nil {
				// Session still works for this run; only persistence failed.
				a.login.status = "warning: could not save session: " + err.Error()
			}
		}
		if next := a.login.next; next != "" {
			return a.Update(openPlaceMsg{placeID: next})
		}
		return a.Update(backMsg{})

	case tea.KeyMsg:
		if !a.isEditing() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewList:
		a.list, cmd = a.list.Update(msg)
	case viewDetail:
		a.detail, cmd = a.detail.Update(msg)
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	}
	return a, cmd
}

// isEditing reports whether keystrokes currently belong to a text field.
func (a App) isEditing() bool {
	switch a.view {
	case viewLogin:
		return true
	case viewDetail:
		return a.detail.composing
	}
	return false
}

func (a App) View() string {
	switch a.view {
	case viewDetail:
		return a.detail.View()
	case viewLogin:
		return a.login.View()
	default:
		return a.list.View()
	}
}
