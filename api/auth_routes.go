package api

import (
	"errors"
	"net/http"

	"github.com/tripstack/tripstack/auth"
	"github.com/tripstack/tripstack/store"
)

type (
	registerRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}

	loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	userInfo struct {
		ID    string  `json:"id"`
		Email string  `json:"email"`
		Name  *string `json:"name"`
	}

	sessionResponse struct {
		OK        bool     `json:"ok"`
		Token     string   `json:"token"`
		ExpiresAt int64    `json:"expires_at"`
		User      userInfo `json:"user"`
	}

	meResponse struct {
		OK        bool       `json:"ok"`
		User      store.User `json:"user"`
		ExpiresAt int64      `json:"expires_at"`
	}
)

func sessionReply(u store.User, sess store.Session) sessionResponse {
	return sessionResponse{
		OK:        true,
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		User:      userInfo{ID: u.ID, Email: u.Email, Name: u.Name},
	}
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	u, sess, err := a.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionReply(u, sess))
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	addr := clientAddr(r)
	if a.throttle != nil && a.throttle.Blocked(addr) {
		writeError(w, http.StatusTooManyRequests, "too many failed attempts")
		return
	}
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	u, sess, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		if a.throttle != nil {
			a.throttle.RecordFailure(addr)
		}
		fail(w, r, err)
		return
	} else if err != nil {
		fail(w, r, err)
		return
	}
	if a.throttle != nil {
		a.throttle.Reset(addr)
	}
	writeJSON(w, http.StatusOK, sessionReply(u, sess))
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	a.auth.Logout(r.Context(), bearerToken(r))
	writeOK(w)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	u, sess, err := a.auth.Me(r.Context(), bearerToken(r))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meResponse{OK: true, User: u, ExpiresAt: sess.ExpiresAt})
}
