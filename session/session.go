package session

import (
	"context"
	"log"
	"net/http"
	"time"

	"yatra/backend"
	"yatra/globals"
	"yatra/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Store owns all session state. It is built once in main and handed to
// the router; pages read through it instead of poking at cookies or
// ambient globals. Writes funnel through persist, which keeps the
// invariant: no token, no role.
type Store struct {
	api     *backend.Client
	storage Storage
	ttl     time.Duration
}

func NewStore(api *backend.Client, storage Storage, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Store{api: api, storage: storage, ttl: ttl}
}

// Login delegates to the backend auth endpoint and, on success, stores
// token and role durably and sets the session cookie.
func (s *Store) Login(ctx context.Context, w http.ResponseWriter, creds models.Credentials) (*models.Session, error) {
	res, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, w, res)
}

// Register behaves like Login on success; the backend issues a token
// right away.
func (s *Store) Register(ctx context.Context, w http.ResponseWriter, reg models.Registration) (*models.Session, error) {
	res, err := s.api.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, w, res)
}

func (s *Store) establish(ctx context.Context, w http.ResponseWriter, res *models.AuthResult) (*models.Session, error) {
	role := res.User.Role
	if role != models.RoleAdmin {
		role = models.RoleUser
	}
	sess := &models.Session{
		ID:     uuid.New().String(),
		Token:  res.Token,
		Role:   role,
		UserID: res.User.ID,
		Name:   res.User.Name,
	}
	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     globals.SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(s.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// Logout clears durable storage and the cookie. No server round-trip,
// and it always succeeds: a storage hiccup is logged, not surfaced.
func (s *Store) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(globals.SessionCookie); err == nil && cookie.Value != "" {
		if err := s.storage.Delete(ctx, cookie.Value); err != nil {
			log.Printf("session delete: %v", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     globals.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Current resolves the request's session. It never fails: anything
// missing, unloadable, or expired comes back as a guest session, so
// gating code can read Role unconditionally.
func (s *Store) Current(ctx context.Context, r *http.Request) *models.Session {
	cookie, err := r.Cookie(globals.SessionCookie)
	if err != nil || cookie.Value == "" {
		return &models.Session{Role: models.RoleGuest}
	}
	sess, err := s.storage.Load(ctx, cookie.Value)
	if err != nil {
		log.Printf("session load: %v", err)
		return &models.Session{Role: models.RoleGuest}
	}
	if sess == nil {
		return &models.Session{ID: cookie.Value, Role: models.RoleGuest}
	}
	if tokenExpired(sess.Token) {
		// Stale token: drop it locally so protected calls fail with
		// AuthError before any network round-trip.
		s.Clear(ctx, sess)
	}
	return sess
}

// Clear downgrades a session to guest in place and durably. Handlers
// call this when a protected call came back 401.
func (s *Store) Clear(ctx context.Context, sess *models.Session) {
	sess.Token = ""
	sess.UserID = ""
	sess.Name = ""
	if err := s.persist(ctx, sess); err != nil {
		log.Printf("session clear: %v", err)
	}
}

// persist is the single write point; it enforces the token/role
// invariant before anything reaches storage.
func (s *Store) persist(ctx context.Context, sess *models.Session) error {
	if sess.Token == "" {
		sess.Role = models.RoleGuest
	}
	return s.storage.Save(ctx, sess, s.ttl)
}

// tokenExpired checks the exp claim without verifying the signature.
// Verification is the backend's job; this only avoids sending a token
// we already know is dead.
func tokenExpired(token string) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque token: let the backend judge it.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
