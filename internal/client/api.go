// Package client provides the API client and session state for the
// companion CLI. It talks to the backend over the same JSON envelope the
// web frontend consumes.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ainotes/backend/internal/domain/ai"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// ErrUnauthorized signals that the session token is missing, expired or
// revoked and the user needs to log in again.
var ErrUnauthorized = errors.New("client unauthorized")

// APIError is a structured error returned by the backend envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// User is the client-side view of an account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Note is the client-side view of a note.
type Note struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Token holds the bearer token issued by login.
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	TokenType   string    `json:"token_type"`
}

// Config holds APIClient settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// APIClient wraps the backend HTTP API. Safe for concurrent use.
type APIClient struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

// NewAPIClient creates a client for the given base URL.
func NewAPIClient(cfg Config) *APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &APIClient{http: httpClient}
}

// SetToken replaces the bearer token used on authenticated requests.
func (c *APIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the current bearer token, empty when logged out.
func (c *APIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// envelope mirrors the server's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *APIClient) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// decode unwraps the response envelope into out, mapping error envelopes
// and non-2xx statuses to errors.
func decode(resp *resty.Response, out any) error {
	var env envelope
	if len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), &env); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.IsError() || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	User User `json:"user"`
}

// Signup registers a new account. It does not log in.
func (c *APIClient) Signup(ctx context.Context, name, email, password string) (User, error) {
	resp, err := c.request(ctx).
		SetBody(signupRequest{Name: name, Email: email, Password: password}).
		Post("/api/signup")
	if err != nil {
		return User{}, fmt.Errorf("signup request: %w", err)
	}

	var out userPayload
	if err := decode(resp, &out); err != nil {
		return User{}, err
	}
	return out.User, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Token Token `json:"token"`
	User  User  `json:"user"`
}

// Login authenticates and stores the returned bearer token on the client.
func (c *APIClient) Login(ctx context.Context, email, password string) (User, error) {
	resp, err := c.request(ctx).
		SetBody(loginRequest{Email: email, Password: password}).
		Post("/api/login")
	if err != nil {
		return User{}, fmt.Errorf("login request: %w", err)
	}

	var out loginPayload
	if err := decode(resp, &out); err != nil {
		return User{}, err
	}

	c.SetToken(out.Token.AccessToken)
	return out.User, nil
}

// Logout revokes the current token server-side and clears it locally.
func (c *APIClient) Logout(ctx context.Context) error {
	resp, err := c.request(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err := decode(resp, nil); err != nil {
		return err
	}

	c.SetToken("")
	return nil
}

// CurrentUser fetches the account behind the current token.
func (c *APIClient) CurrentUser(ctx context.Context) (User, error) {
	resp, err := c.request(ctx).Get("/api/auth/me")
	if err != nil {
		return User{}, fmt.Errorf("current user request: %w", err)
	}

	var out userPayload
	if err := decode(resp, &out); err != nil {
		return User{}, err
	}
	return out.User, nil
}

type notePayload struct {
	Notes []Note `json:"notes"`
}

type noteBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListNotes returns the caller's notes, newest first.
func (c *APIClient) ListNotes(ctx context.Context) ([]Note, error) {
	resp, err := c.request(ctx).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}

	var out notePayload
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return out.Notes, nil
}

// CreateNote creates a note owned by the caller.
func (c *APIClient) CreateNote(ctx context.Context, title, content string) (Note, error) {
	resp, err := c.request(ctx).
		SetBody(noteBody{Title: title, Content: content}).
		Post("/api/notes")
	if err != nil {
		return Note{}, fmt.Errorf("create note request: %w", err)
	}

	var out Note
	if err := decode(resp, &out); err != nil {
		return Note{}, err
	}
	return out, nil
}

// GetNote fetches a single note by ID.
func (c *APIClient) GetNote(ctx context.Context, id uuid.UUID) (Note, error) {
	resp, err := c.request(ctx).Get("/api/notes/" + id.String())
	if err != nil {
		return Note{}, fmt.Errorf("get note request: %w", err)
	}

	var out Note
	if err := decode(resp, &out); err != nil {
		return Note{}, err
	}
	return out, nil
}

// UpdateNote replaces a note's title and content.
func (c *APIClient) UpdateNote(ctx context.Context, id uuid.UUID, title, content string) (Note, error) {
	resp, err := c.request(ctx).
		SetBody(noteBody{Title: title, Content: content}).
		Put("/api/notes/" + id.String())
	if err != nil {
		return Note{}, fmt.Errorf("update note request: %w", err)
	}

	var out Note
	if err := decode(resp, &out); err != nil {
		return Note{}, err
	}
	return out, nil
}

// DeleteNote removes a note.
func (c *APIClient) DeleteNote(ctx context.Context, id uuid.UUID) error {
	resp, err := c.request(ctx).Delete("/api/notes/" + id.String())
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	return decode(resp, nil)
}

type chatRequest struct {
	Messages []ai.Message `json:"messages"`
}

type resultPayload struct {
	Result string `json:"result"`
}

// Chat sends a full transcript and returns the model's reply.
func (c *APIClient) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	resp, err := c.request(ctx).
		SetBody(chatRequest{Messages: messages}).
		Post("/api/ai/chat")
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}

	var out resultPayload
	if err := decode(resp, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}

type generateRequest struct {
	Prompt    string `json:"prompt"`
	Context   string `json:"context"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}

// Generate asks for text grounded on the given context blob. A maxTokens
// of zero leaves the server default in place.
func (c *APIClient) Generate(ctx context.Context, prompt, noteContext string, maxTokens int) (string, error) {
	resp, err := c.request(ctx).
		SetBody(generateRequest{Prompt: prompt, Context: noteContext, MaxTokens: maxTokens}).
		Post("/api/ai/generate")
	if err != nil {
		return "", fmt.Errorf("generate request: %w", err)
	}

	var out resultPayload
	if err := decode(resp, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}
