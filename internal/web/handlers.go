package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/lbriand/hbnb/internal/api"
	"github.com/lbriand/hbnb/internal/place"
	"github.com/lbriand/hbnb/internal/review"
	"github.com/lbriand/hbnb/internal/token"
)

// placeCard is a place plus its resolved card image.
type placeCard struct {
	*place.Place
	Image string
}

type indexData struct {
	Cards    []placeCard
	LoggedIn bool
	MaxPrice string
	Choices  []string
	Error    string
	Notice   string
}

type detailData struct {
	Place    *place.Place
	Reviews  []*review.Review
	PlaceID  string
	LoggedIn bool
	Message  string
	Error    string
	LoginURL string
}

// handleIndex renders the place list page. The price filter is a query
// parameter; changing it re-renders from a fresh snapshot.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	loggedIn := sessionToken(r) != ""
	maxPrice := r.URL.Query().Get("max_price")
	if maxPrice == "" {
		maxPrice = "all"
	}

	data := indexData{
		LoggedIn: loggedIn,
		MaxPrice: maxPrice,
		Choices:  place.FilterChoices,
	}

	places, err := s.client(r).ListPlaces(r.Context())
	if err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) {
			data.Notice = "Log in to browse places."
		} else {
			data.Error = "Could not load places: " + err.Error()
		}
		s.render(w, "list.html", data)
		return
	}

	bound, err := place.ParseMaxPrice(maxPrice)
	if err != nil {
		bound = place.MaxPriceAll
		data.MaxPrice = "all"
	}

	for _, p := range place.Filter(places, bound) {
		data.Cards = append(data.Cards, placeCard{Place: p, Image: s.imageFor(p.Title)})
	}

	s.render(w, "list.html", data)
}

// handlePlace renders the place detail page with its reviews.
func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("place_id")

	data := detailData{
		PlaceID:  placeID,
		LoggedIn: sessionToken(r) != "",
		Message:  r.URL.Query().Get("msg"),
		Error:    r.URL.Query().Get("error"),
		LoginURL: loginURL(placeURL(placeID)),
	}

	// Without an id there is nothing to fetch.
	if placeID == "" {
		data.Error = "No place specified."
		s.render(w, "detail.html", data)
		return
	}

	c := s.client(r)

	p, err := c.GetPlace(r.Context(), placeID)
	if err != nil {
		data.Error = "Could not load place: " + err.Error()
		s.render(w, "detail.html", data)
		return
	}
	data.Place = p

	// Reviews are public; a failure just leaves the section empty.
	if reviews, err := c.ListReviews(r.Context(), placeID); err == nil {
		data.Reviews = reviews
	}

	s.render(w, "detail.html", data)
}

// handleReviewPost accepts the review form and redirects back to the
// place page, carrying either a confirmation or an error message.
func (s *Server) handleReviewPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	placeID := r.FormValue("place_id")
	text := r.FormValue("text")
	// A parse failure leaves rating at zero, which reads as "not selected".
	rating, _ := strconv.Atoi(r.FormValue("rating"))

	tok := sessionToken(r)
	if tok == "" {
		http.Redirect(w, r, loginURL(placeURL(placeID)), http.StatusSeeOther)
		return
	}

	userID, err := token.UserID(tok)
	if err != nil {
		userID = ""
	}

	// Validation happens before any API call; each failure carries its
	// own message back to the form.
	if err := review.Validate(placeID, text, rating, userID); err != nil {
		s.redirectPlace(w, r, placeID, "error", err.Error())
		return
	}

	_, err = s.client(r).SubmitReview(r.Context(), &review.Review{
		PlaceID: placeID,
		Text:    text,
		Rating:  rating,
		UserID:  userID,
	})
	if err != nil {
		s.redirectPlace(w, r, placeID, "error", err.Error())
		return
	}

	// Reloading the page re-fetches the reviews, so the new one shows up.
	s.redirectPlace(w, r, placeID, "msg", "Review submitted!")
}

// redirectPlace sends the browser back to a place page with a query
// parameter carrying a message.
func (s *Server) redirectPlace(w http.ResponseWriter, r *http.Request, placeID, key, value string) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set(key, value)
	http.Redirect(w, r, "/place?"+params.Encode(), http.StatusSeeOther)
}

// placeURL returns the local URL of a place page.
func placeURL(placeID string) string {
	if placeID == "" {
		return "/"
	}
	return "/place?" + url.Values{"place_id": {placeID}}.Encode()
}

// loginURL returns the login page URL with a next target.
func loginURL(next string) string {
	return "/login?" + url.Values{"next": {next}}.Encode()
}

// Template helper functions

func tmplFormatPrice(p float64) string {
	return place.FormatPrice(p)
}

func tmplStars(rating int) string {
	return review.Stars(rating)
}

func tmplSeq(start, end int) []int {
	var s []int
	for i := start; i <= end; i++ {
		s = append(s, i)
	}
	return s
}
