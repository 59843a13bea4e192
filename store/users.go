package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

type (
	User struct {
		ID        string  `json:"id"`
		Email     string  `json:"email"`
		Name      *string `json:"name"`
		CreatedAt int64   `json:"created_at"`

		// credential material, never serialized
		PasswordSalt  string `json:"-"`
		PasswordHash  string `json:"-"`
		PasswordIters int    `json:"-"`
	}
)

// NormalizeEmail lowercases and trims the address. The 64bit hash keys
// an index over an otherwise textual column.
func NormalizeEmail(email string) (string, int64) {
	email = strings.ToLower(strings.TrimSpace(email))
	return email, int64(xxhash.Sum64String(email))
}

// CreateUser inserts the user row, generating an id when u.ID is empty.
// Duplicate emails surface as a Conflict regardless of which writer got
// there first, the unique constraint closes the check-then-insert race.
func (s *Store) CreateUser(ctx context.Context, u User) (string, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	email, hash := NormalizeEmail(u.Email)
	_, err := s.db.ExecContext(ctx, `insert into users (id, email, email_hash64, name, created_at, password_salt, password_hash, password_iters)
		values (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, email, hash, u.Name, u.CreatedAt, u.PasswordSalt, u.PasswordHash, u.PasswordIters)
	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return "", Conflict{Kind: "user", Field: "email"}
	} else if err != nil {
		return "", fmt.Errorf("unable to store user %v, cause %w", email, err)
	}
	return u.ID, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (User, error) {
	email, hash := NormalizeEmail(email)
	var u User
	err := s.db.QueryRowContext(ctx, `select id, email, name, created_at, password_salt, password_hash, password_iters
		from users where email_hash64 = ? and email = ?`, hash, email).
		Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.PasswordSalt, &u.PasswordHash, &u.PasswordIters)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, NotFound{Kind: "user", ID: email}
	} else if err != nil {
		return User{}, fmt.Errorf("unable to load user %v, cause %w", email, err)
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `select id, email, name, created_at, password_salt, password_hash, password_iters
		from users where id = ?`, id).
		Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.PasswordSalt, &u.PasswordHash, &u.PasswordIters)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, NotFound{Kind: "user", ID: id}
	} else if err != nil {
		return User{}, fmt.Errorf("unable to load user %v, cause %w", id, err)
	}
	return u, nil
}

func (s *Store) UserExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `select 1 from users where id = ? limit 1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("unable to check user %v, cause %w", id, err)
	}
	return true, nil
}

func (s *Store) UserIDByEmail(ctx context.Context, email string) (string, error) {
	email, hash := NormalizeEmail(email)
	var id string
	err := s.db.QueryRowContext(ctx, `select id from users where email_hash64 = ? and email = ?`, hash, email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", NotFound{Kind: "user", ID: email}
	} else if err != nil {
		return "", fmt.Errorf("unable to load user %v, cause %w", email, err)
	}
	return id, nil
}
