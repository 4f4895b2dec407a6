// Package rest implements the backend gateway over the Blogify HTTP API.
// Every transport fault and non-success status is translated into the domain
// error taxonomy here; callers never see a raw HTTP error.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aitaprogrammer/blogify-cli/internal/domain"
	"github.com/aitaprogrammer/blogify-cli/internal/logging"
	"github.com/aitaprogrammer/blogify-cli/internal/ports"
	"github.com/google/uuid"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 1 << 20
	userAgent       = "blogify-cli"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        logging.Logger

	// The backend authenticates with a session cookie plus a CSRF token
	// returned by the login endpoint; the token rides every mutation.
	csrfMu    sync.RWMutex
	csrfToken string
}

var _ ports.Gateway = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithLogger(log logging.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTimeout adjusts the request timeout of the default HTTP client. It has
// no effect when WithHTTPClient is also given.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("base url is empty")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	client := &Client{
		baseURL: trimmed,
		timeout: defaultTimeout,
		log:     logging.Nop{},
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		client.httpClient = &http.Client{Jar: jar, Timeout: client.timeout}
	}

	return client, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (domain.Identity, error) {
	payload := map[string]string{"username": username, "password": password}

	body, err := c.do(ctx, http.MethodPost, "/api/login/", payload)
	if err != nil {
		return domain.Identity{}, err
	}

	identity, csrfToken, err := normalizeLogin(body)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("decode login response: %w", err)
	}
	if strings.TrimSpace(identity.Username) == "" {
		return domain.Identity{}, fmt.Errorf("login response carries no identity")
	}

	if csrfToken != "" {
		c.csrfMu.Lock()
		c.csrfToken = csrfToken
		c.csrfMu.Unlock()
	}

	return identity, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	payload := map[string]string{
		"username":         reg.Username,
		"email":            reg.Email,
		"password":         reg.Password,
		"password_confirm": reg.PasswordConfirm,
	}

	_, err := c.do(ctx, http.MethodPost, "/api/register/", payload)
	return err
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/logout/", nil)
	return err
}

func (c *Client) Posts(ctx context.Context) ([]domain.Post, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/posts/", nil)
	if err != nil {
		return nil, err
	}

	var schemas []postSchema
	if err := json.Unmarshal(body, &schemas); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(schemas))
	for _, schema := range schemas {
		posts = append(posts, schema.toDomain())
	}

	return posts, nil
}

func (c *Client) Post(ctx context.Context, slug string) (domain.Post, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/posts/"+url.PathEscape(slug)+"/", nil)
	if err != nil {
		return domain.Post{}, err
	}

	var schema postSchema
	if err := json.Unmarshal(body, &schema); err != nil {
		return domain.Post{}, fmt.Errorf("decode post %q: %w", slug, err)
	}

	return schema.toDomain(), nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/categories/", nil)
	if err != nil {
		return nil, err
	}

	var schemas []categorySchema
	if err := json.Unmarshal(body, &schemas); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(schemas))
	for _, schema := range schemas {
		categories = append(categories, schema.toDomain())
	}

	return categories, nil
}

func (c *Client) Creators(ctx context.Context) ([]domain.Profile, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/creators/", nil)
	if err != nil {
		return nil, err
	}

	var schemas []profileSchema
	if err := json.Unmarshal(body, &schemas); err != nil {
		return nil, fmt.Errorf("decode creators: %w", err)
	}

	profiles := make([]domain.Profile, 0, len(schemas))
	for _, schema := range schemas {
		profiles = append(profiles, schema.toDomain())
	}

	return profiles, nil
}

func (c *Client) Profile(ctx context.Context, username string) (domain.Profile, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/profiles/"+url.PathEscape(username)+"/", nil)
	if err != nil {
		return domain.Profile{}, err
	}

	var schema profileSchema
	if err := json.Unmarshal(body, &schema); err != nil {
		return domain.Profile{}, fmt.Errorf("decode profile %q: %w", username, err)
	}

	return schema.toDomain(), nil
}

func (c *Client) Comments(ctx context.Context, slug string) ([]domain.Comment, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/posts/"+url.PathEscape(slug)+"/comments/", nil)
	if err != nil {
		return nil, err
	}

	var schemas []commentSchema
	if err := json.Unmarshal(body, &schemas); err != nil {
		return nil, fmt.Errorf("decode comments for %q: %w", slug, err)
	}

	comments := make([]domain.Comment, 0, len(schemas))
	for _, schema := range schemas {
		comments = append(comments, schema.toDomain(slug))
	}

	return comments, nil
}

func (c *Client) LikePost(ctx context.Context, slug string) (domain.ToggleOutcome, error) {
	return c.toggle(ctx, "/api/posts/"+url.PathEscape(slug)+"/like/")
}

func (c *Client) LikeComment(ctx context.Context, id string) (domain.ToggleOutcome, error) {
	return c.toggle(ctx, "/api/comments/"+url.PathEscape(id)+"/like/")
}

func (c *Client) FollowCategory(ctx context.Context, slug string) (domain.ToggleOutcome, error) {
	return c.toggle(ctx, "/api/categories/"+url.PathEscape(slug)+"/follow/")
}

func (c *Client) FollowProfile(ctx context.Context, username string) (domain.ToggleOutcome, error) {
	return c.toggle(ctx, "/api/profiles/"+url.PathEscape(username)+"/follow/")
}

func (c *Client) AddComment(ctx context.Context, slug, body string) (domain.Comment, error) {
	responseBody, err := c.do(ctx, http.MethodPost, "/api/posts/"+url.PathEscape(slug)+"/add_comment/", map[string]string{"body": body})
	if err != nil {
		return domain.Comment{}, err
	}

	var schema commentSchema
	if err := json.Unmarshal(responseBody, &schema); err != nil {
		return domain.Comment{}, fmt.Errorf("decode created comment: %w", err)
	}

	return schema.toDomain(slug), nil
}

func (c *Client) toggle(ctx context.Context, path string) (domain.ToggleOutcome, error) {
	body, err := c.do(ctx, http.MethodPost, path, nil)
	if err != nil {
		return domain.ToggleOutcome{}, err
	}

	var schema toggleSchema
	if err := json.Unmarshal(body, &schema); err != nil {
		return domain.ToggleOutcome{}, fmt.Errorf("decode toggle response: %w", err)
	}

	return schema.toDomain(), nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var requestBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request payload: %w", err)
		}
		requestBody = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, requestBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", userAgent)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		request.Header.Set("X-Request-ID", uuid.NewString())
		c.csrfMu.RLock()
		if c.csrfToken != "" {
			request.Header.Set("X-CSRFToken", c.csrfToken)
		}
		c.csrfMu.RUnlock()
	}

	c.log.Debug(ctx, "gateway request", "method", method, "path", path)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrRemoteUnavailable, err)
	}

	c.log.Debug(ctx, "gateway response", "method", method, "path", path, "status", response.StatusCode)

	if response.StatusCode >= 200 && response.StatusCode <= 299 {
		return body, nil
	}

	if response.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrRemoteUnavailable, response.StatusCode)
	}

	return nil, rejectionFromBody(body)
}

// rejectionFromBody turns a 4xx payload into a RejectionError. The backend
// answers with either {"detail": ...}, {"error": ...}, or a field-keyed map
// of message lists (registration validation).
func rejectionFromBody(body []byte) error {
	rejection := &domain.RejectionError{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		rejection.Message = strings.TrimSpace(string(body))
		return rejection
	}

	fields := make(map[string][]string)
	for key, value := range raw {
		var message string
		if err := json.Unmarshal(value, &message); err == nil {
			if key == "detail" || key == "error" || key == "status" || key == "message" {
				rejection.Message = message
			} else {
				fields[key] = []string{message}
			}
			continue
		}

		var messages []string
		if err := json.Unmarshal(value, &messages); err == nil && len(messages) > 0 {
			fields[key] = messages
		}
	}

	if len(fields) > 0 {
		rejection.Fields = fields
	}

	return rejection
}
