package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbriand/hbnb/internal/api"
)

// loginModel is the in-TUI login form.
type loginModel struct {
	client *api.Client
	next   string // place to open after login, "" for the list

	email         string
	password      string
	focusPassword bool
	status        string
	loading       bool

	width  int
	height int
}

func newLoginModel(c *api.Client, next string) loginModel {
	return loginModel{client: c, next: next}
}

func (m loginModel) loginCmd() tea.Cmd {
	c, email, password := m.client, m.email, m.password
	return func() tea.Msg {
		tok, err := c.Login(context.Background(), email, password)
		return loginDoneMsg{token: tok, err: err}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backMsg{} }
		case "tab", "shift+tab", "up", "down":
			m.focusPassword = !m.focusPassword
			return m, nil
		case "enter":
			if !m.focusPassword {
				m.focusPassword = true
				return m, nil
			}
			if strings.TrimSpace(m.email) == "" {
				m.status = "email is required"
				return m, nil
			}
			if m.password == "" {
				m.status = "password is required"
				return m, nil
			}
			m.loading = true
			m.status = ""
			return m, m.loginCmd()
		default:
			if m.focusPassword {
				m.password = editRune(m.password, msg.String())
			} else {
				m.email = editRune(m.email, msg.String())
			}
			return m, nil
		}
	}
	return m, nil
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Log in"))
	b.WriteString("\n\n")

	emailLabel := dimStyle.Render("Email    ")
	passLabel := dimStyle.Render("Password ")
	if m.focusPassword {
		passLabel = focusStyle.Render("Password ")
	} else {
		emailLabel = focusStyle.Render("Email    ")
	}

	b.WriteString(emailLabel + normalStyle.Render(m.email))
	if !m.focusPassword {
		b.WriteString(focusStyle.Render("█"))
	}
	b.WriteString("\n")

	b.WriteString(passLabel + normalStyle.Render(strings.Repeat("•", len(m.password))))
	if m.focusPassword {
		b.WriteString(focusStyle.Render("█"))
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Logging in…"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpBar("tab", "switch field", "enter", "submit", "esc", "cancel"))

	return b.String()
}
