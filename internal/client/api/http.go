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

	"github.com/dkovalenko/crewdesk/internal/client/models"
)

// HTTPClient implements Client over plain HTTP with JSON bodies.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient builds a client for the given base URL. The timeout is the
// fixed upper bound on every request; there are no retries.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: encoding request: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
		}
	}
	return nil
}

func (c *HTTPClient) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) UsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	var users []models.User
	q := url.Values{"email": {email}}
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/users", nil, u, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	var updated models.User
	path := "/users/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPatch, path, nil, patch, &updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

func (c *HTTPClient) Groups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := c.do(ctx, http.MethodGet, "/groups", nil, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *HTTPClient) Messages(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	if err := c.do(ctx, http.MethodGet, "/messages", nil, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *HTTPClient) CreateMessage(ctx context.Context, m models.Message) (models.Message, error) {
	var created models.Message
	if err := c.do(ctx, http.MethodPost, "/messages", nil, m, &created); err != nil {
		return models.Message{}, err
	}
	return created, nil
}

func (c *HTTPClient) Tasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
