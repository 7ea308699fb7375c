// Package backend is the portal's client for the competition platform's HTTP API.
//
// Every call forwards the browser's cookies unchanged: the portal never reads
// or mints credentials itself.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrUnexpectedStatus is returned for any non-2xx answer.
	ErrUnexpectedStatus = errors.New("backend: unexpected status")
	// ErrMalformedResponse is returned when a body cannot be decoded.
	ErrMalformedResponse = errors.New("backend: malformed response")
)

// API paths.
const (
	PathMe           = "/api/auth/me"
	PathLogout       = "/api/auth/logout"
	PathCompetitions = "/api/competitions"
	PathApplications = "/api/applications"
)

// APIError carries the status and message of a rejected request.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %d", ErrUnexpectedStatus, e.Status)
	}
	return fmt.Sprintf("%s %d: %s", ErrUnexpectedStatus, e.Status, e.Message)
}

// Unwrap lets errors.Is match ErrUnexpectedStatus.
func (e *APIError) Unwrap() error { return ErrUnexpectedStatus }

// Client talks to the backend API.
type Client struct {
	http *resty.Client
}

// New creates a client for baseURL. A zero timeout disables the deadline.
func New(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: rc}
}

// User is the backend's representation of the signed-in user.
type User struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
}

type meResponse struct {
	User *User `json:"user"`
}

// Me returns the user bound to cookies, or nil when the backend answers
// without a user.
func (c *Client) Me(ctx context.Context, cookies []*http.Cookie) (*User, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetCookies(cookies).
		Get(PathMe)
	if err != nil {
		return nil, fmt.Errorf("fetch session: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch session: %w", apiError(resp))
	}

	var out meResponse
	if err := decode(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("fetch session: %w", err)
	}
	return out.User, nil
}

// Logout ends the backend session. The returned cookies are the backend's
// Set-Cookie instructions and should be relayed to the browser even on error.
func (c *Client) Logout(ctx context.Context, cookies []*http.Cookie) ([]*http.Cookie, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetCookies(cookies).
		Post(PathLogout)
	if err != nil {
		return nil, fmt.Errorf("logout: %w", err)
	}
	if !resp.IsSuccess() {
		return resp.Cookies(), fmt.Errorf("logout: %w", apiError(resp))
	}
	return resp.Cookies(), nil
}

// Competition is a catalog entry as served by the backend.
type Competition struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Organizer   string    `json:"organizer"`
	Grade       string    `json:"grade"`
	Status      string    `json:"status"`
	Deadline    time.Time `json:"deadline"`
	Prize       string    `json:"prize"`
	Favourite   bool      `json:"isFavourite"`
}

type competitionsResponse struct {
	Competitions []Competition `json:"competitions"`
}

// Competitions lists the catalog as seen by the owner of cookies.
func (c *Client) Competitions(ctx context.Context, cookies []*http.Cookie) ([]Competition, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetCookies(cookies).
		Get(PathCompetitions)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("list competitions: %w", apiError(resp))
	}

	var out competitionsResponse
	if err := decode(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	return out.Competitions, nil
}

// Application is the submitted application payload.
type Application struct {
	Competition  string `json:"competition"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	School       string `json:"school"`
	Grade        string `json:"grade"`
	TeamName     string `json:"teamName,omitempty"`
	TeamSize     int    `json:"teamSize"`
	PitchSummary string `json:"pitchSummary"`
}

type applicationResponse struct {
	ID string `json:"id"`
}

// SubmitApplication posts app and returns the backend's reference for it.
func (c *Client) SubmitApplication(ctx context.Context, cookies []*http.Cookie, app Application) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetCookies(cookies).
		SetHeader("Content-Type", "application/json").
		SetBody(app).
		Post(PathApplications)
	if err != nil {
		return "", fmt.Errorf("submit application: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("submit application: %w", apiError(resp))
	}

	var out applicationResponse
	if len(resp.Body()) == 0 {
		return "", nil
	}
	if err := decode(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("submit application: %w", err)
	}
	return out.ID, nil
}

func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func apiError(resp *resty.Response) *APIError {
	e := &APIError{Status: resp.StatusCode()}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(resp.Body(), &body) == nil {
		e.Message = body.Message
		if e.Message == "" {
			e.Message = body.Error
		}
	}
	return e
}
