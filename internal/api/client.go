// Package api provides an HTTP client for the HBnB REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lbriand/hbnb/internal/place"
	"github.com/lbriand/hbnb/internal/review"
)

// DefaultBaseURL is the rental API used when no server is configured.
const DefaultBaseURL = "http://localhost:5000/api/v1"

// Client is an HTTP client for the HBnB API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client. The token may be empty for anonymous use.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken replaces the bearer token used on authenticated requests.
// Called after a successful login so in-flight views pick up the session.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the bearer token currently attached to requests.
func (c *Client) Token() string {
	return c.token
}

// Login authenticates with email and password and returns an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.post(ctx, "/auth/login", body, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("login response missing access_token")
	}
	return resp.AccessToken, nil
}

// ListPlaces returns all places.
func (c *Client) ListPlaces(ctx context.Context) ([]*place.Place, error) {
	var places []*place.Place
	if err := c.get(ctx, "/places", &places); err != nil {
		return nil, err
	}
	return places, nil
}

// GetPlace returns a single place with its full record.
func (c *Client) GetPlace(ctx context.Context, id string) (*place.Place, error) {
	var p place.Place
	if err := c.get(ctx, "/places/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListReviews returns the reviews for a place. Requires no authentication.
func (c *Client) ListReviews(ctx context.Context, placeID string) ([]*review.Review, error) {
	var reviews []*review.Review
	if err := c.get(ctx, "/places/"+url.PathEscape(placeID)+"/reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SubmitReview posts a new review for a place.
func (c *Client) SubmitReview(ctx context.Context, rev *review.Review) (*review.Review, error) {
	var created review.Review
	if err := c.post(ctx, "/reviews", rev, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

// do executes an HTTP request with the auth header and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
