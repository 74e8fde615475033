package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/anrokk/SportMap-Client/internal/api"
	"github.com/anrokk/SportMap-Client/internal/credstore"
)

// AccountAPI is the slice of the unauthenticated adapter the store needs.
type AccountAPI interface {
	Login(ctx context.Context, in api.LoginRequest) (api.JwtResponse, error)
	Register(ctx context.Context, in api.RegisterRequest) (api.JwtResponse, error)
}

// Store owns the authentication session: the bearer token, the identity
// decoded from it, and the per-operation error and loading flags. A token is
// never held without a resolvable user; any failure rolls the session back
// to anonymous.
//
// The mutex guards field access only and is never held across network or
// storage calls, so overlapping operations interleave last-write-wins.
type Store struct {
	account  AccountAPI
	creds    credstore.Store
	navigate func(name string)

	mu            sync.Mutex
	token         string
	user          *UserProfile
	loginError    string
	registerError string
	isLoading     bool
}

func NewStore(account AccountAPI, creds credstore.Store, navigate func(name string)) *Store {
	if navigate == nil {
		navigate = func(string) {}
	}
	return &Store{account: account, creds: creds, navigate: navigate}
}

// Token implements the pull-based lookup the authenticated adapter uses.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Store) User() *UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Store) LoginError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginError
}

func (s *Store) RegisterError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registerError
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *Store) UserDisplayName() string {
	user := s.User()
	if user == nil {
		return "Guest"
	}
	if user.FirstName != "" && user.LastName != "" {
		return user.FirstName + " " + user.LastName
	}
	return user.Email
}

// Login authenticates against the account endpoint and, on acceptance,
// persists the session and navigates to the map view. Returns false after
// recording the failure in LoginError.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	s.beginAttempt(&s.loginError)
	defer s.endAttempt()

	resp, err := s.account.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.failAttempt(ctx, &s.loginError, err)
		return false
	}

	user, err := resolveIdentity(resp, "")
	if err != nil {
		s.failAttempt(ctx, &s.loginError, err)
		return false
	}

	if err := s.accept(ctx, resp.Token, user); err != nil {
		s.failAttempt(ctx, &s.loginError, err)
		return false
	}

	s.navigate("map")
	return true
}

// Register differs from Login in one way: when the token omits the email
// claim, the submitted email fills in, since registration always knows it.
func (s *Store) Register(ctx context.Context, email, password, firstName, lastName string) bool {
	s.beginAttempt(&s.registerError)
	defer s.endAttempt()

	resp, err := s.account.Register(ctx, api.RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		s.failAttempt(ctx, &s.registerError, err)
		return false
	}

	if resp.Token == "" {
		s.failAttempt(ctx, &s.registerError, errors.New("Authentication failed (no token received after registration)"))
		return false
	}
	user, err := resolveIdentity(resp, email)
	if err != nil {
		s.failAttempt(ctx, &s.registerError, errors.New("Authentication process failed (token error after registration)"))
		return false
	}

	if err := s.accept(ctx, resp.Token, user); err != nil {
		s.failAttempt(ctx, &s.registerError, err)
		return false
	}

	s.navigate("map")
	return true
}

// Logout clears all session state and storage, then navigates to the login
// view. Safe to call when already anonymous.
func (s *Store) Logout(ctx context.Context) {
	s.cleanup(ctx)
	s.navigate("login")
}

// InitializeFromStorage restores a persisted session. Stricter than login:
// both the identifier and the email claim are required, otherwise the stored
// token is treated as invalid and fully cleaned up. The resolved profile is
// re-persisted to refresh any stale cached copy. The server is not
// contacted.
func (s *Store) InitializeFromStorage(ctx context.Context) {
	token, err := s.creds.Get(ctx, credstore.TokenKey)
	if err != nil || token == "" {
		s.cleanup(ctx)
		return
	}

	claims, err := decodeClaims(token)
	if err != nil || claims.ID == "" || claims.Email == "" {
		s.cleanup(ctx)
		return
	}

	user := &UserProfile{
		ID:        claims.ID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}
	if err := s.accept(ctx, token, user); err != nil {
		s.cleanup(ctx)
	}
}

// resolveIdentity decodes the issued token into a user profile. A missing
// identifier claim is total failure; name fields fall back to the values the
// server returned alongside the token.
func resolveIdentity(resp api.JwtResponse, submittedEmail string) (*UserProfile, error) {
	if resp.Token == "" {
		return nil, errors.New("Authentication failed")
	}

	claims, err := decodeClaims(resp.Token)
	if err != nil || claims.ID == "" {
		return nil, errors.New("Invalid token format or missing claims")
	}

	email := claims.Email
	if email == "" {
		email = submittedEmail
	}
	firstName := claims.FirstName
	if firstName == "" {
		firstName = resp.FirstName
	}
	lastName := claims.LastName
	if lastName == "" {
		lastName = resp.LastName
	}

	return &UserProfile{ID: claims.ID, Email: email, FirstName: firstName, LastName: lastName}, nil
}

// accept persists the token and profile together, then replaces the
// in-memory session wholesale.
func (s *Store) accept(ctx context.Context, token string, user *UserProfile) error {
	serialized, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.creds.Set(ctx, credstore.TokenKey, token); err != nil {
		return err
	}
	if err := s.creds.Set(ctx, credstore.UserKey, string(serialized)); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	return nil
}

func (s *Store) beginAttempt(errField *string) {
	s.mu.Lock()
	s.isLoading = true
	*errField = ""
	s.mu.Unlock()
}

func (s *Store) endAttempt() {
	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()
}

func (s *Store) failAttempt(ctx context.Context, errField *string, err error) {
	s.cleanup(ctx)
	s.mu.Lock()
	*errField = err.Error()
	s.mu.Unlock()
}

func (s *Store) cleanup(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.loginError = ""
	s.registerError = ""
	s.mu.Unlock()

	_ = s.creds.Delete(ctx, credstore.TokenKey)
	_ = s.creds.Delete(ctx, credstore.UserKey)
}
