package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tripstack/tripstack/internal/logutil"
	"github.com/tripstack/tripstack/store"
)

type (
	// Service drives the credential lifecycle on top of the store. It
	// keeps no request state, every call performs its own reads and
	// writes.
	Service struct {
		store      *store.Store
		sessionTTL time.Duration
		iterations int
	}

	Options struct {
		SessionTTL time.Duration
		Iterations int
	}
)

func NewService(st *store.Store, opts Options) *Service {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = store.DefaultSessionTTL
	}
	if opts.Iterations <= 0 {
		opts.Iterations = DefaultIterations
	}
	return &Service{
		store:      st,
		sessionTTL: opts.SessionTTL,
		iterations: opts.Iterations,
	}
}

// Register creates the user and opens its first session. Emails are
// normalized to lowercase, duplicates surface as store.Conflict.
func (s *Service) Register(ctx context.Context, email, password, name string) (store.User, store.Session, error) {
	email, _ = store.NormalizeEmail(email)
	if email == "" {
		return store.User{}, store.Session{}, ValidationError{Msg: "email is required"}
	}
	if len(password) < 8 {
		return store.User{}, store.Session{}, ValidationError{Msg: "password must be at least 8 characters"}
	}
	salt, err := NewSaltHex()
	if err != nil {
		return store.User{}, store.Session{}, err
	}
	iters := ClampIterations(s.iterations)
	digest, err := HashPassword(password, salt, iters)
	if err != nil {
		return store.User{}, store.Session{}, err
	}
	u := store.User{
		Email:         email,
		CreatedAt:     time.Now().Unix(),
		PasswordSalt:  salt,
		PasswordHash:  digest,
		PasswordIters: iters,
	}
	if name = strings.TrimSpace(name); name != "" {
		u.Name = &name
	}
	u.ID, err = s.store.CreateUser(ctx, u)
	if err != nil {
		return store.User{}, store.Session{}, err
	}
	sess, err := s.store.CreateSession(ctx, u.ID, s.sessionTTL)
	if err != nil {
		return store.User{}, store.Session{}, err
	}
	return u, sess, nil
}

// Login verifies the credentials and opens a new session, earlier
// sessions stay valid. Unknown email, missing credential material and
// wrong password all fail with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (store.User, store.Session, error) {
	email, _ = store.NormalizeEmail(email)
	if email == "" || password == "" {
		return store.User{}, store.Session{}, ValidationError{Msg: "email and password are required"}
	}
	u, err := s.store.UserByEmail(ctx, email)
	var notFound store.NotFound
	if errors.As(err, &notFound) {
		return store.User{}, store.Session{}, ErrInvalidCredentials
	} else if err != nil {
		return store.User{}, store.Session{}, err
	}
	if u.PasswordSalt == "" || u.PasswordHash == "" {
		return store.User{}, store.Session{}, ErrInvalidCredentials
	}
	digest, err := HashPassword(password, u.PasswordSalt, u.PasswordIters)
	if err != nil {
		return store.User{}, store.Session{}, err
	}
	if !SafeEqual(digest, u.PasswordHash) {
		return store.User{}, store.Session{}, ErrInvalidCredentials
	}
	sess, err := s.store.CreateSession(ctx, u.ID, s.sessionTTL)
	if err != nil {
		return store.User{}, store.Session{}, err
	}
	return u, sess, nil
}

// Logout revokes the session behind the token. Logout never fails from
// the caller's perspective: unknown, expired and already revoked tokens
// are treated as done.
func (s *Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	log := logutil.GetOrDefault(ctx)
	sess, err := s.store.ResolveSession(ctx, token)
	if err != nil {
		log.Warn().Err(err).Msg("Unable to resolve session during logout")
		return
	}
	if sess == nil {
		return
	}
	err = s.store.RevokeSession(ctx, sess.Token)
	if err != nil {
		log.Warn().Err(err).Msg("Unable to revoke session during logout")
	}
}

// Me resolves the token to its owner. The returned user carries no
// credential material.
func (s *Service) Me(ctx context.Context, token string) (store.User, store.Session, error) {
	if token == "" {
		return store.User{}, store.Session{}, ErrNoSession
	}
	sess, err := s.store.ResolveSession(ctx, token)
	if err != nil {
		return store.User{}, store.Session{}, err
	}
	if sess == nil {
		return store.User{}, store.Session{}, ErrNoSession
	}
	u, err := s.store.UserByID(ctx, sess.UserID)
	var notFound store.NotFound
	if errors.As(err, &notFound) {
		return store.User{}, store.Session{}, ErrNoSession
	} else if err != nil {
		return store.User{}, store.Session{}, err
	}
	u.PasswordSalt, u.PasswordHash, u.PasswordIters = "", "", 0
	return u, *sess, nil
}

// Resolve exposes session resolution for access control checks.
func (s *Service) Resolve(ctx context.Context, token string) (*store.Session, error) {
	if token == "" {
		return nil, nil
	}
	return s.store.ResolveSession(ctx, token)
}
