// Package api is the typed HTTP client for the BodyBuddy backend. Task
// and account operations talk straight to the server; chat and voice
// calls go through a circuit breaker so a flaky AI backend degrades to
// local fallbacks instead of stalling the session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ckarenz/bodybuddy/internal/config"
	"github.com/ckarenz/bodybuddy/internal/errors"
	"github.com/ckarenz/bodybuddy/internal/logging"
	"github.com/ckarenz/bodybuddy/internal/task"
	"github.com/sony/gobreaker"
)

// historyLimit caps how much conversation the client returns.
const historyLimit = 10

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logging.Logger
	breaker *gobreaker.CircuitBreaker
}

// NewClient builds a client from the API configuration. A nil logger is
// replaced with a no-op one.
func NewClient(cfg config.APIConfig, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.NopLogger()
	}

	maxFailures := uint32(cfg.BreakerMaxFailures)
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "backend-ai",
		Timeout: cfg.BreakerCooldown(),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
		breaker: breaker,
	}
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health pings the backend.
func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/healthz", nil, nil)
}

// Register creates an account. The backend answers 409 when the
// username is taken, which surfaces as an AlreadyExists error.
func (c *Client) Register(ctx context.Context, username, password, voiceModel string) (Account, error) {
	payload := map[string]string{"username": username, "password": password}
	if voiceModel != "" {
		payload["voice_model"] = voiceModel
	}

	var acct Account
	err := c.doJSON(ctx, http.MethodPost, "/accounts/register", payload, &acct)
	if err != nil {
		var apiErr *errors.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			return Account{}, errors.NewAlreadyExistsError("account", username)
		}
		return Account{}, err
	}
	return acct, nil
}

// Login authenticates and returns the account. Bad credentials surface
// as ErrUnauthorized.
func (c *Client) Login(ctx context.Context, username, password string) (Account, error) {
	payload := map[string]string{"username": username, "password": password}

	var acct Account
	err := c.doJSON(ctx, http.MethodPost, "/accounts/login", payload, &acct)
	if err != nil {
		var apiErr *errors.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return Account{}, errors.Wrap(errors.ErrUnauthorized, "login failed")
		}
		return Account{}, err
	}
	return acct, nil
}

// Account fetches account details.
func (c *Client) Account(ctx context.Context, username string) (Account, error) {
	var acct Account
	err := c.doJSON(ctx, http.MethodGet, "/accounts/"+url.PathEscape(username), nil, &acct)
	if err != nil {
		var apiErr *errors.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return Account{}, errors.NewNotFoundError("account", username)
		}
		return Account{}, err
	}
	return acct, nil
}

// UpdateVoiceModel changes the account's voice synthesis model.
func (c *Client) UpdateVoiceModel(ctx context.Context, username, voiceModel string) error {
	payload := map[string]string{"voice_model": voiceModel}
	path := "/accounts/" + url.PathEscape(username) + "/voice-model"
	return c.doJSON(ctx, http.MethodPost, path, payload, nil)
}

// ListTasks fetches all backend tasks converted to the domain shape,
// sorted by name so the order is stable across fetches.
func (c *Client) ListTasks(ctx context.Context) ([]task.Task, error) {
	var resp taskListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/tasks/", nil, &resp); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(resp.Tasks))
	for name := range resp.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]task.Task, 0, len(names))
	for _, name := range names {
		out = append(out, resp.Tasks[name].toDomain(name))
	}
	return out, nil
}

// AddTask pushes a task to the backend.
func (c *Client) AddTask(ctx context.Context, t task.Task) error {
	name, w := fromDomain(t)
	payload := struct {
		Name string `json:"name"`
		wireTask
	}{Name: name, wireTask: w}
	return c.doJSON(ctx, http.MethodPost, "/tasks/add", payload, nil)
}

// UpdateTask pushes changed fields for a named task.
func (c *Client) UpdateTask(ctx context.Context, t task.Task) error {
	name, w := fromDomain(t)
	return c.doJSON(ctx, http.MethodPut, "/tasks/update/"+url.PathEscape(name), w, nil)
}

// DeleteTask removes a named task.
func (c *Client) DeleteTask(ctx context.Context, name string) error {
	return c.doJSON(ctx, http.MethodDelete, "/tasks/delete/"+url.PathEscape(name), nil, nil)
}

// AddSubtask appends a subtask to a named task.
func (c *Client) AddSubtask(ctx context.Context, taskName, subtask string) error {
	payload := map[string]string{"task_name": taskName, "subtask": subtask}
	return c.doJSON(ctx, http.MethodPost, "/tasks/subtask/add", payload, nil)
}

// RemoveSubtask removes a subtask from a named task.
func (c *Client) RemoveSubtask(ctx context.Context, taskName, subtask string) error {
	payload := map[string]string{"task_name": taskName, "subtask": subtask}
	return c.doJSON(ctx, http.MethodDelete, "/tasks/subtask/remove", payload, nil)
}

// SendChat asks the AI backend for a reply. The call runs through the
// circuit breaker; when the breaker is open it fails fast with
// ErrCircuitOpen so the caller can fall back locally.
func (c *Client) SendChat(ctx context.Context, userID, text string) (ChatReply, error) {
	payload := map[string]string{"user_id": userID, "text": text}

	result, err := c.breaker.Execute(func() (any, error) {
		var reply ChatReply
		if err := c.doJSON(ctx, http.MethodPost, "/chat/send", payload, &reply); err != nil {
			return nil, err
		}
		return reply, nil
	})
	if err != nil {
		return ChatReply{}, c.breakerErr("/chat/send", err)
	}
	return result.(ChatReply), nil
}

// ChatHistory returns the last stored messages for a user, oldest
// first, capped at ten entries.
func (c *Client) ChatHistory(ctx context.Context, userID string) ([]ChatMessage, error) {
	var resp struct {
		Messages []ChatMessage `json:"messages"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/chat/history/"+url.PathEscape(userID), nil, &resp); err != nil {
		return nil, err
	}

	msgs := resp.Messages
	if len(msgs) > historyLimit {
		msgs = msgs[len(msgs)-historyLimit:]
	}
	return msgs, nil
}

// Say synthesizes speech and returns the audio stream. The caller owns
// the ReadCloser. The call runs through the circuit breaker.
func (c *Client) Say(ctx context.Context, req SayRequest) (io.ReadCloser, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		body, err := json.Marshal(req)
		if err != nil {
			return nil, err
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/voice/say", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(httpReq)
		if err != nil {
			return nil, c.transportErr("/voice/say", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			defer resp.Body.Close()
			return nil, c.statusErr("/voice/say", resp)
		}
		return resp.Body, nil
	})
	if err != nil {
		return nil, c.breakerErr("/voice/say", err)
	}
	return result.(io.ReadCloser), nil
}

// doJSON sends a request with an optional JSON payload and decodes the
// response into out when non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportErr(path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api request", "method", method, "path", path, "status", resp.StatusCode, "elapsed_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusErr(path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewAPIError("decode response", err).WithEndpoint(path)
	}
	return nil
}

func (c *Client) transportErr(path string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.NewAPIError("request timed out", errors.ErrTimeout).WithEndpoint(path)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.NewAPIError("request timed out", errors.ErrTimeout).WithEndpoint(path)
	}
	return errors.NewAPIError("request failed", errors.Join(errors.ErrBackendUnavailable, err)).WithEndpoint(path)
}

func (c *Client) statusErr(path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return errors.NewAPIError("unexpected status", nil).
		WithEndpoint(path).
		WithStatusCode(resp.StatusCode).
		WithBody(strings.TrimSpace(string(body)))
}

func (c *Client) breakerErr(path string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.NewAPIError("backend calls suspended", errors.ErrCircuitOpen).WithEndpoint(path)
	}
	return err
}
