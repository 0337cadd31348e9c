package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker/v2"

	pkgapi "github.com/iudanet/cityguide/pkg/api"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 3
	defaultBackoffBase = 500 * time.Millisecond
	defaultMaxBackoff  = 10 * time.Second

	// headerAuthRetry marks a request that has already been retried after a
	// reactive token refresh, so a second auth rejection is final.
	headerAuthRetry = "X-Cityguide-Auth-Retry"
)

// TokenSource supplies bearer tokens for authenticated calls. Implemented by
// the token lifecycle manager; the client never touches the session itself.
type TokenSource interface {
	// AccessToken returns a token valid for at least the proactive refresh
	// horizon, refreshing first if the stored one is about to expire.
	AccessToken(ctx context.Context) (string, error)

	// RefreshAfterReject performs a reactive refresh after a 401/403.
	// stale is the token the rejected request carried; concurrent callers
	// are collapsed into a single refresh.
	RefreshAfterReject(ctx context.Context, stale string) (string, error)
}

// Client is the HTTP client for the guide backend. All outbound calls carry
// the static public API key; authenticated calls additionally carry a bearer
// token obtained from the TokenSource. Transient failures are retried with
// exponential backoff behind a circuit breaker.
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	breaker    *gobreaker.CircuitBreaker[attemptResult]
	logger     *slog.Logger
	baseURL    string
	apiKey     string
}

type attemptResult struct {
	body   []byte
	status int
}

// NewClient creates a new API client.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	// Breaker settings follow the shape used for flaky upstream APIs:
	// trip on a run of consecutive failures, probe again after a minute.
	c.breaker = gobreaker.NewCircuitBreaker[attemptResult](gobreaker.Settings{
		Name:     "guide-api",
		Interval: time.Minute,
		Timeout:  time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				"name", name, "from", from.String(), "to", to.String())
		},
	})

	return c
}

// SetTokenSource wires the token lifecycle manager in after construction.
// The manager itself needs the client for the refresh endpoint, so the two
// are connected once both exist.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// doRequest executes one logical request: marshal, proactive token check,
// transport with retry, reactive refresh-and-retry on auth rejection.
func (c *Client) doRequest(ctx context.Context, method, path string, params url.Values, body, result interface{}, authenticated bool) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	header := make(http.Header)
	header.Set("apikey", c.apiKey)
	if body != nil {
		header.Set("Content-Type", "application/json")
	}
	// PostgREST returns an empty body on writes unless asked for the row back.
	if method == http.MethodPost && result != nil {
		header.Set("Prefer", "return=representation")
	}

	token := ""
	if authenticated {
		if c.tokens == nil {
			return fmt.Errorf("no token source configured")
		}
		t, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("failed to obtain access token: %w", err)
		}
		token = t
		header.Set("Authorization", "Bearer "+token)
	}

	status, respBody, err := c.send(ctx, method, reqURL, payload, header)
	if err != nil {
		return err
	}

	if status >= 200 && status < 300 {
		return decodeResponse(respBody, result)
	}

	apiErr := newAPIError(status, respBody)

	// Reactive path: exactly one retry after a refresh. The marker header
	// guards against a refresh loop; auth endpoints never reach here since
	// they are always unauthenticated.
	if authenticated && IsUnauthorized(apiErr) && header.Get(headerAuthRetry) == "" {
		fresh, refreshErr := c.tokens.RefreshAfterReject(ctx, token)
		if refreshErr != nil {
			if errors.Is(refreshErr, ErrSessionExpired) {
				return refreshErr
			}
			// Transient refresh failure: keep the session, surface the
			// original rejection for this call only.
			c.logger.Warn("token refresh failed, propagating original error", "error", refreshErr)
			return apiErr
		}

		header.Set(headerAuthRetry, "1")
		header.Set("Authorization", "Bearer "+fresh)

		status, respBody, err = c.send(ctx, method, reqURL, payload, header)
		if err != nil {
			return err
		}
		if status >= 200 && status < 300 {
			return decodeResponse(respBody, result)
		}
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return ErrSessionExpired
		}
		return newAPIError(status, respBody)
	}

	return apiErr
}

// send performs the request with bounded exponential-backoff retry around
// per-attempt circuit-breaker-guarded transport calls. Only transient
// failure classes are retried; 4xx responses are returned to the caller.
func (c *Client) send(ctx context.Context, method, reqURL string, payload []byte, header http.Header) (int, []byte, error) {
	var out attemptResult

	backoff := retry.WithMaxRetries(defaultMaxRetries,
		retry.WithCappedDuration(defaultMaxBackoff,
			retry.NewExponential(defaultBackoffBase)))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		res, err := c.breaker.Execute(func() (attemptResult, error) {
			return c.attempt(ctx, method, reqURL, payload, header)
		})
		if err != nil {
			if IsTransient(err) {
				c.logger.Debug("transient request failure, will retry",
					"method", method, "url", reqURL, "error", err)
				return retry.RetryableError(err)
			}
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	return out.status, out.body, nil
}

// attempt performs a single HTTP round trip. 5xx responses are returned as
// errors so the breaker and the retry loop both see them as failures.
func (c *Client) attempt(ctx context.Context, method, reqURL string, payload []byte, header http.Header) (attemptResult, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return attemptResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = append([]string(nil), v...)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return attemptResult{}, &transportError{err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return attemptResult{}, &transportError{err: err}
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return attemptResult{}, newAPIError(resp.StatusCode, data)
	}

	return attemptResult{status: resp.StatusCode, body: data}, nil
}

// Health probes the backend health endpoint with a single attempt, no retry.
// Used by the reachability monitor.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transportError{err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusInternalServerError {
		return newAPIError(resp.StatusCode, nil)
	}
	return nil
}

func decodeResponse(body []byte, result interface{}) error {
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func newAPIError(status int, body []byte) *Error {
	msg := ""
	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Message != "":
			msg = errResp.Message
		case errResp.ErrorDescription != "":
			msg = errResp.ErrorDescription
		case errResp.Error != "":
			msg = errResp.Error
		}
	}
	if msg == "" && len(body) > 0 {
		const maxBody = 256
		if len(body) > maxBody {
			body = body[:maxBody]
		}
		msg = string(body)
	}
	return &Error{StatusCode: status, Message: msg}
}
