package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

type (
	// Session is a bearer token row. A session is active iff revoked_at
	// is null and expires_at lies in the future.
	Session struct {
		Token     string `json:"token"`
		UserID    string `json:"user_id"`
		CreatedAt int64  `json:"created_at"`
		ExpiresAt int64  `json:"expires_at"`
		RevokedAt *int64 `json:"-"`
	}
)

// DefaultSessionTTL matches the lifetime handed out to mobile clients.
const DefaultSessionTTL = 14 * 24 * time.Hour

func newSessionToken() (string, error) {
	var buf [32]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		return "", fmt.Errorf("unable to generate session token, cause %w", err)
	}
	return hex.EncodeToString(buf[:]), nil
}

// CreateSession issues a fresh token for the user. Earlier sessions stay
// untouched, concurrent active sessions per user are allowed.
func (s *Store) CreateSession(ctx context.Context, userID string, ttl time.Duration) (Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return Session{}, err
	}
	now := time.Now().Unix()
	sess := Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now + int64(ttl/time.Second),
	}
	_, err = s.db.ExecContext(ctx, `insert into user_sessions (token, user_id, created_at, expires_at, revoked_at)
		values (?, ?, ?, ?, null)`,
		sess.Token, sess.UserID, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		return Session{}, fmt.Errorf("unable to store session for user %v, cause %w", userID, err)
	}
	return sess, nil
}

// ResolveSession returns the active session behind the token or nil when
// the token is unknown, revoked or expired. Expiry is checked at read
// time and never extended.
func (s *Store) ResolveSession(ctx context.Context, token string) (*Session, error) {
	var sess Session
	err := s.db.QueryRowContext(ctx, `select token, user_id, created_at, expires_at, revoked_at
		from user_sessions where token = ?`, token).
		Scan(&sess.Token, &sess.UserID, &sess.CreatedAt, &sess.ExpiresAt, &sess.RevokedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to load session, cause %w", err)
	}
	if sess.RevokedAt != nil {
		return nil, nil
	}
	if sess.ExpiresAt <= time.Now().Unix() {
		return nil, nil
	}
	return &sess, nil
}

// RevokeSession marks the token as revoked. Revoking twice or revoking a
// token that never existed is not an error. Rows are kept for audit.
func (s *Store) RevokeSession(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `update user_sessions set revoked_at = ? where token = ? and revoked_at is null`,
		time.Now().Unix(), token)
	if err != nil {
		return fmt.Errorf("unable to revoke session, cause %w", err)
	}
	return nil
}
