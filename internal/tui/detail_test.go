package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbriand/hbnb/internal/api"
	"github.com/lbriand/hbnb/internal/apitest"
	"github.com/lbriand/hbnb/internal/place"
	"github.com/lbriand/hbnb/internal/review"
)

func TestDetailNoPlaceID(t *testing.T) {
	m := newDetailModel(api.New("http://example.invalid", "tok"), "", "u1")

	if cmd := m.Init(); cmd != nil {
		t.Error("empty place id must not trigger a fetch")
	}
	if view := m.View(); !strings.Contains(view, "No place specified.") {
		t.Errorf("view missing error:\n%s", view)
	}
}

func TestDetailComposeRequiresLogin(t *testing.T) {
	m := newDetailModel(api.New("http://example.invalid", ""), "p1", "")

	_, cmd := m.Update(keyRunes("a"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(needLoginMsg)
	if !ok {
		t.Fatalf("message = %T, want needLoginMsg", cmd())
	}
	if msg.nextPlaceID != "p1" {
		t.Errorf("next place = %q, want p1", msg.nextPlaceID)
	}
}

func TestDetailComposeOpens(t *testing.T) {
	m := newDetailModel(api.New("http://example.invalid", "tok"), "p1", "u1")

	m, _ = m.Update(keyRunes("a"))
	if !m.composing {
		t.Error("composer should open for a logged-in user")
	}
	if m.focusText {
		t.Error("rating field should have initial focus")
	}
	if m.rating != 0 {
		t.Errorf("initial rating = %d, want 0", m.rating)
	}
}

func TestDetailStarKeys(t *testing.T) {
	m := newDetailModel(api.New("http://example.invalid", "tok"), "p1", "u1")
	m.composing = true

	m, _ = m.Update(keyRunes("4"))
	if m.rating != 4 {
		t.Errorf("rating = %d, want 4", m.rating)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.rating != 5 {
		t.Errorf("rating = %d, want 5", m.rating)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.rating != 5 {
		t.Errorf("rating exceeded 5: %d", m.rating)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.rating != 1 {
		t.Errorf("rating went below 1: %d", m.rating)
	}
}

func TestDetailValidatesBeforeSubmitting(t *testing.T) {
	m := newDetailModel(api.New("http://example.invalid", "tok"), "p1", "u1")
	m.composing = true
	m.rating = 3
	// Text left empty on purpose.

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("invalid review must not reach the network")
	}
	if m.status != review.ErrNoText.Error() {
		t.Errorf("status = %q", m.status)
	}
	if !m.statusErr {
		t.Error("status should be styled as an error")
	}
	if !m.composing {
		t.Error("composer stays open so the user can fix the review")
	}
}

func TestDetailValidatesRating(t *testing.T) {
	m := newDetailModel(api.New("http://example.invalid", "tok"), "p1", "u1")
	m.composing = true
	m.focusText = true
	for _, r := range "nice spot" {
		m, _ = m.Update(keyRunes(string(r)))
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("missing rating must not reach the network")
	}
	if m.status != review.ErrNoRating.Error() {
		t.Errorf("status = %q", m.status)
	}
}

func TestDetailSubmitSuccessResetsComposer(t *testing.T) {
	m := newDetailModel(api.New("http://example.invalid", "tok"), "p1", "u1")
	m.composing = true
	m.rating = 4
	m.text = "wonderful stay"

	m, cmd := m.Update(reviewSubmittedMsg{})
	if m.composing {
		t.Error("composer should close after a successful submit")
	}
	if m.text != "" || m.rating != 0 {
		t.Errorf("draft not reset: text=%q rating=%d", m.text, m.rating)
	}
	if m.status != "✓ Review submitted!" {
		t.Errorf("status = %q", m.status)
	}
	if cmd == nil {
		t.Error("expected a reviews reload command")
	}
}

func TestDetailSubmitShowsNewReviewAfterReload(t *testing.T) {
	backend := apitest.New(t, []*place.Place{{ID: "p1", Title: "Cozy Loft", Price: 30}}, nil)
	c := api.New(backend.BaseURL(), backend.Token)

	m := newDetailModel(c, "p1", "user-1")
	m, _ = m.Update(placeLoadedMsg{place: &place.Place{ID: "p1", Title: "Cozy Loft", Price: 30}})
	m.composing = true
	m.rating = 4
	m.text = "wonderful stay"

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	m, cmd = m.Update(cmd())
	if cmd == nil {
		t.Fatal("expected a reload command after the submit succeeds")
	}
	m, _ = m.Update(cmd())

	view := m.View()
	if !strings.Contains(view, "Reviews (1)") {
		t.Errorf("review count not updated:\n%s", view)
	}
	if !strings.Contains(view, "wonderful stay") {
		t.Errorf("view missing the new review:\n%s", view)
	}
	if !strings.Contains(view, "★★★★☆") {
		t.Errorf("view missing the new rating:\n%s", view)
	}
}

func TestDetailEscKeepsDraft(t *testing.T) {
	m := newDetailModel(api.New("http://example.invalid", "tok"), "p1", "u1")
	m.composing = true
	m.rating = 2
	m.text = "draft text"

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.composing {
		t.Error("esc should close the composer")
	}
	if m.text != "draft text" || m.rating != 2 {
		t.Error("esc must keep the draft")
	}
}

func TestDetailViewShowsReviews(t *testing.T) {
	m := newDetailModel(api.New("http://example.invalid", "tok"), "p1", "u1")
	m, _ = m.Update(placeLoadedMsg{place: &place.Place{ID: "p1", Title: "Sea View", Price: 120}})
	m, _ = m.Update(reviewsLoadedMsg{reviews: []*review.Review{
		{Text: "lovely", Rating: 5, UserName: "Grace"},
	}})

	view := m.View()
	for _, want := range []string{"Sea View", "Reviews (1)", "★★★★★", "Grace", "lovely"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
