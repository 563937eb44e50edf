package client

import (
	"context"
	"sync"
)

const sessionExpiredMessage = "Your session has expired. Please login again."

// Session holds the process-wide authentication state: the bearer token,
// the cached user and the last error message. It owns an API client wired
// so that a 401 from any endpoint flips the session back to
// unauthenticated.
//
// All methods are safe for concurrent use; when calls race, the last one to
// resolve determines the final state.
type Session struct {
	mu    sync.Mutex
	api   *API
	store CredentialStore

	token   string
	user    *User
	lastErr string
	loading bool
}

// NewSession wires a session and its API client together: the client reads
// the token from cfg.Store on every request and reports expiry straight
// back into the session. Credentials already persisted in the store are
// adopted, but only when both the token and the user are present.
func NewSession(cfg Config) *Session {
	s := &Session{store: cfg.Store}
	cfg.OnAuthExpired = s.expire
	s.api = NewAPI(cfg)
	s.restore()
	return s
}

// API exposes the wired client for the rest of the SDK surface.
func (s *Session) API() *API {
	return s.api
}

func (s *Session) restore() {
	token := s.store.Token()
	user := s.store.User()
	if token == "" || user == nil {
		return
	}
	s.mu.Lock()
	s.token, s.user = token, user
	s.mu.Unlock()
}

func (s *Session) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = "", nil
	s.lastErr = sessionExpiredMessage
}

// Login authenticates with the backend and, on success, persists and
// adopts the returned token and user.
func (s *Session) Login(ctx context.Context, username, password string) error {
	s.ClearError()
	s.setLoading(true)
	defer s.setLoading(false)

	var resp AuthResponse
	err := s.api.Post(ctx, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &resp)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	if err := s.store.Save(resp.Token, resp.User); err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.token, s.user = resp.Token, resp.User
	return nil
}

// Register creates a new staff account. The token in the response belongs
// to the new account, so the current session deliberately keeps its own
// identity and credentials.
func (s *Session) Register(ctx context.Context, payload RegisterPayload) error {
	s.ClearError()
	s.setLoading(true)
	defer s.setLoading(false)

	var resp AuthResponse
	if err := s.api.Post(ctx, "/auth/register", payload, &resp); err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return err
	}
	return nil
}

// Me fetches the profile of the authenticated account.
func (s *Session) Me(ctx context.Context) (*User, error) {
	var user User
	if err := s.api.Get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the persisted credentials and the in-memory state. Logging
// out twice is harmless.
func (s *Session) Logout() {
	_ = s.store.Clear()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = "", nil
	s.lastErr = ""
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// IsAuthenticated reports whether both a token and a user are present.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Loading reports whether a login or registration call is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message from the most recent failure, or "".
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}
