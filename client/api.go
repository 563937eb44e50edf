package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// APIError carries the HTTP status and the message extracted from an error
// response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Config wires an API client. OnAuthExpired, when set, runs after a 401
// response has cleared the stored credentials; it is fixed at construction
// so every consumer of the client observes the same expiry behaviour.
type Config struct {
	BaseURL       string
	Store         CredentialStore
	HTTPClient    *http.Client
	OnAuthExpired func()
}

// API is the HTTP client for the billing backend. Every request carries the
// bearer token from the credential store when one is present; a 401 from
// any endpoint drops the stored credentials before the error is returned.
type API struct {
	baseURL       string
	store         CredentialStore
	http          *http.Client
	onAuthExpired func()
}

func NewAPI(cfg Config) *API {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &API{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		store:         cfg.Store,
		http:          httpClient,
		onAuthExpired: cfg.OnAuthExpired,
	}
}

func (a *API) Get(ctx context.Context, endpoint string, out any) error {
	return a.request(ctx, http.MethodGet, endpoint, nil, out)
}

func (a *API) Post(ctx context.Context, endpoint string, body, out any) error {
	return a.request(ctx, http.MethodPost, endpoint, body, out)
}

func (a *API) Put(ctx context.Context, endpoint string, body, out any) error {
	return a.request(ctx, http.MethodPut, endpoint, body, out)
}

func (a *API) Delete(ctx context.Context, endpoint string, out any) error {
	return a.request(ctx, http.MethodDelete, endpoint, nil, out)
}

func (a *API) request(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := a.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("an unexpected error occurred: %w", err)
	}
	defer resp.Body.Close()

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode >= http.StatusBadRequest {
		message := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		if isJSON {
			var envelope struct {
				Message string `json:"message"`
				Error   string `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
				if envelope.Message != "" {
					message = envelope.Message
				} else if envelope.Error != "" {
					message = envelope.Error
				}
			}
		}

		if resp.StatusCode == http.StatusUnauthorized {
			// Stored credentials are stale: drop them before reporting the
			// failure so the next request starts unauthenticated.
			_ = a.store.Clear()
			if a.onAuthExpired != nil {
				a.onAuthExpired()
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && isJSON {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
