package tui

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbriand/hbnb/internal/api"
	"github.com/lbriand/hbnb/internal/place"
)

// placesLoadedMsg carries the place collection from the API.
type placesLoadedMsg struct {
	places []*place.Place
	err    error
}

// listModel is the place list view: every fetched place stays in memory
// and the price filter only changes which cards are visible.
type listModel struct {
	client    *api.Client
	places    []*place.Place
	visible   []*place.Place
	cursor    int
	filterIdx int // index into place.FilterChoices
	loading   bool
	errMsg    string
	status    string
	width     int
	height    int
}

func newListModel(c *api.Client) listModel {
	return listModel{client: c, loading: true}
}

func (m listModel) Init() tea.Cmd {
	return m.loadPlaces()
}

func (m listModel) loadPlaces() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		places, err := c.ListPlaces(context.Background())
		return placesLoadedMsg{places: places, err: err}
	}
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case placesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if api.IsStatus(msg.err, http.StatusUnauthorized) {
				m.errMsg = "Please log in to browse places (press l)."
			} else {
				m.errMsg = "Could not load places: " + msg.err.Error()
			}
			m.places = nil
			m.visible = nil
			return m, nil
		}
		m.errMsg = ""
		m.places = msg.places
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.visible) {
				id := m.visible[m.cursor].ID
				return m, func() tea.Msg { return openPlaceMsg{placeID: id} }
			}
		case "f":
			m.filterIdx = (m.filterIdx + 1) % len(place.FilterChoices)
			m.applyFilter()
		case "r":
			m.loading = true
			m.status = ""
			return m, m.loadPlaces()
		case "y":
			if m.cursor < len(m.visible) {
				if err := clipboard.WriteAll(m.visible[m.cursor].ID); err != nil {
					m.status = "copy failed: " + err.Error()
				} else {
					m.status = "place id copied"
				}
			}
		case "l":
			if m.client.Token() == "" {
				return m, func() tea.Msg { return needLoginMsg{} }
			}
		}
	}
	return m, nil
}

// applyFilter re-derives the visible cards from the fetched snapshot.
// This never re-fetches; it is purely presentational.
func (m *listModel) applyFilter() {
	bound, err := place.ParseMaxPrice(place.FilterChoices[m.filterIdx])
	if err != nil {
		bound = place.MaxPriceAll
	}
	m.visible = place.Filter(m.places, bound)
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

func (m listModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("HBnB — Places"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("filter: %s", place.FilterLabel(place.FilterChoices[m.filterIdx]))))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(dimStyle.Render("Loading places…"))
		b.WriteString("\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	case len(m.visible) == 0:
		b.WriteString(dimStyle.Render("No places match the current filter."))
		b.WriteString("\n")
	default:
		for i, p := range m.visible {
			marker := "  "
			style := normalStyle
			if i == m.cursor {
				marker = "> "
				style = selectedStyle
			}
			line := fmt.Sprintf("%s%s  %s  %s",
				marker,
				style.Render(truncStr(p.Title, 40)),
				priceStyle.Render(place.FormatPrice(p.Price)+"/night"),
				metaStyle.Render(p.HostName()),
			)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	pairs := []string{"↑/↓", "move", "enter", "details", "f", "filter", "r", "reload", "y", "copy id"}
	if m.client.Token() == "" {
		pairs = append(pairs, "l", "log in")
	}
	pairs = append(pairs, "q", "quit")
	b.WriteString(helpBar(pairs...))

	return b.String()
}
