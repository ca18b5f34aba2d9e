package auth

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"fave/models"
	"fave/store"
)

// DefaultSessionTTL is used when configuration does not set one.
const DefaultSessionTTL = 24 * time.Hour

// storedUser is the persisted account record: the public User plus the
// provider subject used to match returning users.
type storedUser struct {
	models.User
	Subject string `json:"subject"`
}

// Service owns the user and session collections. All mutations go through a
// mutex and persist to the store before returning.
type Service struct {
	mu       sync.Mutex
	store    store.Store
	provider Provider
	ttl      time.Duration
}

func NewService(s store.Store, p Provider, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{store: s, provider: p, ttl: ttl}
}

// Signup verifies the credential, creates the account if it does not exist
// yet, and issues a session. An existing account keeps its original role.
func (s *Service) Signup(ctx context.Context, req models.SignupRequest) (*models.SessionResponse, error) {
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidCredential, req.Role)
	}

	ident, err := s.provider.Authenticate(ctx, req.Credential)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers(ctx)
	user := findBySubject(users, ident.Subject)
	if user == nil {
		created := storedUser{
			User: models.User{
				ID:            uuid.New(),
				Role:          req.Role,
				Name:          displayName(req.Name, ident),
				Email:         ident.Email,
				WalletAddress: ident.WalletAddress,
				CreatedAt:     time.Now().UTC(),
			},
			Subject: ident.Subject,
		}
		users = append(users, created)
		if err := store.WriteJSON(ctx, s.store, store.KeyUsers, users); err != nil {
			return nil, err
		}
		user = &users[len(users)-1]
		log.Printf("Created user: %s (role: %s)", user.ID, user.Role)
	}

	return s.issueSession(ctx, user.User)
}

// Login verifies the credential against an existing account and issues a
// session. ErrUnknownUser when no account matches.
func (s *Service) Login(ctx context.Context, req models.SignupRequest) (*models.SessionResponse, error) {
	ident, err := s.provider.Authenticate(ctx, req.Credential)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := findBySubject(s.loadUsers(ctx), ident.Subject)
	if user == nil {
		return nil, ErrUnknownUser
	}

	return s.issueSession(ctx, user.User)
}

// Resolve maps a bearer token to its user. Expired and unknown tokens both
// yield ErrInvalidSession.
func (s *Service) Resolve(ctx context.Context, token string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.loadSessions(ctx) {
		if sess.Token != token {
			continue
		}
		if time.Now().After(sess.ExpiresAt) {
			return nil, ErrInvalidSession
		}
		if user := findByID(s.loadUsers(ctx), sess.UserID); user != nil {
			return &user.User, nil
		}
		return nil, ErrInvalidSession
	}
	return nil, ErrInvalidSession
}

// Logout removes the session. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.loadSessions(ctx)
	kept := sessions[:0]
	for _, sess := range sessions {
		if sess.Token != token {
			kept = append(kept, sess)
		}
	}
	if len(kept) == len(sessions) {
		return nil
	}
	return store.WriteJSON(ctx, s.store, store.KeySessions, kept)
}

// UserName returns the display name for id. Implements the ledger's name
// resolver so tokens can snapshot the artist's name.
func (s *Service) UserName(ctx context.Context, id uuid.UUID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user := findByID(s.loadUsers(ctx), id); user != nil {
		return user.Name, nil
	}
	return "", ErrUnknownUser
}

// issueSession records a new session, pruning expired ones while it has the
// collection in hand. Callers hold the mutex.
func (s *Service) issueSession(ctx context.Context, user models.User) (*models.SessionResponse, error) {
	now := time.Now().UTC()
	session := models.Session{
		Token:     newSessionToken(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	sessions := s.loadSessions(ctx)
	live := []models.Session{}
	for _, sess := range sessions {
		if now.Before(sess.ExpiresAt) {
			live = append(live, sess)
		}
	}
	live = append(live, session)

	if err := store.WriteJSON(ctx, s.store, store.KeySessions, live); err != nil {
		return nil, err
	}

	return &models.SessionResponse{
		Token:     session.Token,
		User:      user,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *Service) loadUsers(ctx context.Context) []storedUser {
	users := []storedUser{}
	store.ReadJSON(ctx, s.store, store.KeyUsers, &users)
	return users
}

func (s *Service) loadSessions(ctx context.Context) []models.Session {
	sessions := []models.Session{}
	store.ReadJSON(ctx, s.store, store.KeySessions, &sessions)
	return sessions
}

func displayName(requested string, ident *Identity) string {
	if requested != "" {
		return requested
	}
	if ident.Name != "" {
		return ident.Name
	}
	return ident.WalletAddress
}

func newSessionToken() string {
	return fmt.Sprintf("fave_%s", uuid.New().String())
}

func findBySubject(users []storedUser, subject string) *storedUser {
	for i := range users {
		if users[i].Subject == subject {
			return &users[i]
		}
	}
	return nil
}

func findByID(users []storedUser, id uuid.UUID) *storedUser {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}
