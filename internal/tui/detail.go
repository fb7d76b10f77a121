package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lbriand/hbnb/internal/api"
	"github.com/lbriand/hbnb/internal/place"
	"github.com/lbriand/hbnb/internal/review"
)

// placeLoadedMsg carries a single place record from the API.
type placeLoadedMsg struct {
	place *place.Place
	err   error
}

// reviewsLoadedMsg carries the reviews for the current place.
type reviewsLoadedMsg struct {
	reviews []*review.Review
	err     error
}

// reviewSubmittedMsg carries the result of a review submission.
type reviewSubmittedMsg struct {
	err error
}

// detailModel is the place detail view with the review list and the
// star-rating review composer.
type detailModel struct {
	client  *api.Client
	placeID string
	userID  string

	place   *place.Place
	reviews []*review.Review
	loading bool
	loadErr string

	composing bool
	focusText bool // false: rating field focused
	rating    int  // 0 = none selected
	text      string
	status    string
	statusErr bool

	width  int
	height int
}

func newDetailModel(c *api.Client, placeID, userID string) detailModel {
	return detailModel{client: c, placeID: placeID, userID: userID}
}

func (m detailModel) Init() tea.Cmd {
	// A missing id renders an error instead of fetching anything.
	if m.placeID == "" {
		return nil
	}
	return tea.Batch(m.loadPlace(), m.loadReviews())
}

func (m detailModel) loadPlace() tea.Cmd {
	c, id := m.client, m.placeID
	return func() tea.Msg {
		p, err := c.GetPlace(context.Background(), id)
		return placeLoadedMsg{place: p, err: err}
	}
}

func (m detailModel) loadReviews() tea.Cmd {
	c, id := m.client, m.placeID
	return func() tea.Msg {
		reviews, err := c.ListReviews(context.Background(), id)
		return reviewsLoadedMsg{reviews: reviews, err: err}
	}
}

func (m detailModel) submitReview() tea.Cmd {
	c := m.client
	rev := &review.Review{
		PlaceID: m.placeID,
		Text:    strings.TrimSpace(m.text),
		Rating:  m.rating,
		UserID:  m.userID,
	}
	return func() tea.Msg {
		_, err := c.SubmitReview(context.Background(), rev)
		return reviewSubmittedMsg{err: err}
	}
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case placeLoadedMsg:
		if msg.err != nil {
			m.loadErr = "Could not load place: " + msg.err.Error()
			return m, nil
		}
		m.place = msg.place
		return m, nil

	case reviewsLoadedMsg:
		if msg.err != nil {
			// The detail still renders; reviews just stay empty.
			m.reviews = nil
			return m, nil
		}
		m.reviews = msg.reviews
		return m, nil

	case reviewSubmittedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		m.status = "✓ Review submitted!"
		m.statusErr = false
		m.composing = false
		m.text = ""
		m.rating = 0
		return m, m.loadReviews()

	case tea.KeyMsg:
		if m.composing {
			return m.updateCompose(msg)
		}
		switch msg.String() {
		case "esc", "b":
			return m, func() tea.Msg { return backMsg{} }
		case "a":
			if m.client.Token() == "" {
				// The composer is hidden for anonymous users; route to
				// login and come back to this place afterwards.
				id := m.placeID
				return m, func() tea.Msg { return needLoginMsg{nextPlaceID: id} }
			}
			m.composing = true
			m.focusText = false
			m.status = ""
		case "r":
			if m.placeID != "" {
				return m, tea.Batch(m.loadPlace(), m.loadReviews())
			}
		}
	}
	return m, nil
}

// updateCompose handles keys while the review composer is open.
func (m detailModel) updateCompose(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc":
		// Keep the draft; only a successful submit resets it.
		m.composing = false
		return m, nil
	case "tab", "shift+tab":
		m.focusText = !m.focusText
		return m, nil
	case "enter":
		if err := review.Validate(m.placeID, m.text, m.rating, m.userID); err != nil {
			m.status = err.Error()
			m.statusErr = true
			return m, nil
		}
		m.status = "Submitting…"
		m.statusErr = false
		return m, m.submitReview()
	}

	if m.focusText {
		m.text = editRune(m.text, key)
		return m, nil
	}

	switch key {
	case "1", "2", "3", "4", "5":
		m.rating = int(key[0] - '0')
	case "left", "h":
		if m.rating > 1 {
			m.rating--
		}
	case "right", "l":
		if m.rating < 5 {
			m.rating++
		}
	}
	return m, nil
}

func (m detailModel) View() string {
	var b strings.Builder

	if m.loadErr != "" || m.placeID == "" {
		msg := m.loadErr
		if m.placeID == "" {
			msg = "No place specified."
		}
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n\n")
		b.WriteString(helpBar("esc", "back", "q", "quit"))
		return b.String()
	}

	if m.place == nil {
		b.WriteString(dimStyle.Render("Loading place…"))
		b.WriteString("\n")
		return b.String()
	}

	p := m.place
	bodyWidth := m.width - 4
	if bodyWidth < 20 {
		bodyWidth = 60
	}
	wrap := lipgloss.NewStyle().Width(bodyWidth)

	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render("hosted by "+p.HostName()) + "  " +
		priceStyle.Render(place.FormatPrice(p.Price)+" per night"))
	b.WriteString("\n\n")
	b.WriteString(wrap.Inherit(normalStyle).Render(p.DisplayDescription()))
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render("Amenities"))
	b.WriteString("\n")
	for _, name := range p.AmenityNames() {
		b.WriteString(normalStyle.Render("  • " + name))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(dimStyle.Render(fmt.Sprintf("Reviews (%d)", len(m.reviews))))
	b.WriteString("\n")
	if len(m.reviews) == 0 {
		b.WriteString(metaStyle.Render("  No reviews yet."))
		b.WriteString("\n")
	}
	for _, r := range m.reviews {
		b.WriteString("  " + starStyle.Render(review.Stars(r.Rating)) + "  " + metaStyle.Render(r.DisplayName()))
		b.WriteString("\n")
		b.WriteString(wrap.Inherit(normalStyle).Render("  " + r.Text))
		b.WriteString("\n")
	}

	if m.composing {
		b.WriteString("\n")
		b.WriteString(m.renderComposer())
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(okStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.composing {
		b.WriteString(helpBar("tab", "switch field", "enter", "submit", "esc", "cancel"))
	} else {
		b.WriteString(helpBar("a", "add review", "r", "reload", "esc", "back", "q", "quit"))
	}

	return b.String()
}

// renderComposer draws the star-rating widget and the text field.
func (m detailModel) renderComposer() string {
	var b strings.Builder

	ratingLabel := "Rating "
	textLabel := "Review "
	if m.focusText {
		textLabel = focusStyle.Render("Review ")
		ratingLabel = dimStyle.Render("Rating ")
	} else {
		ratingLabel = focusStyle.Render("Rating ")
		textLabel = dimStyle.Render("Review ")
	}

	b.WriteString(ratingLabel + starStyle.Render(review.Stars(m.rating)))
	if !m.focusText {
		b.WriteString(dimStyle.Render("  (1-5 or ←/→)"))
	}
	b.WriteString("\n")

	b.WriteString(textLabel)
	if m.text == "" && !m.focusText {
		b.WriteString(metaStyle.Render("share your experience…"))
	} else {
		b.WriteString(normalStyle.Render(m.text))
	}
	if m.focusText {
		b.WriteString(focusStyle.Render("█"))
	}
	b.WriteString("\n")

	return b.String()
}
