package auth

import "errors"

var (
	// ErrInvalidCredentials covers unknown email and wrong password
	// alike, the caller must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoSession means the bearer token resolved to nothing.
	ErrNoSession = errors.New("no active session")
)

type (
	ValidationError struct {
		Msg string
	}
)

func (v ValidationError) Error() string {
	return v.Msg
}
