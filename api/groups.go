package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/tripstack/tripstack/store"
)

type (
	createGroupRequest struct {
		Name     string  `json:"name"`
		Capacity *int64  `json:"capacity"`
		BrandID  *string `json:"brand_id"`
	}

	setLeaderRequest struct {
		LeaderUserID *string `json:"leader_user_id"`
	}

	visibilityRequest struct {
		IsPublic *bool `json:"is_public"`
	}

	addMemberRequest struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
	}

	createdResponse struct {
		OK bool   `json:"ok"`
		ID string `json:"id"`
	}

	memberResponse struct {
		OK      bool   `json:"ok"`
		GroupID string `json:"group_id"`
		UserID  string `json:"user_id"`
	}
)

func (a *API) listGroups(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}
	groups, err := a.store.Groups(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (a *API) createGroup(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req createGroupRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}
	id, err := a.store.CreateGroup(r.Context(), store.Group{
		Name:     req.Name,
		Capacity: req.Capacity,
		BrandID:  req.BrandID,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createdResponse{OK: true, ID: id})
}

func (a *API) setGroupLeader(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req setLeaderRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	err := a.store.SetGroupLeader(r.Context(), ps.ByName("id"), req.LeaderUserID)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}

func (a *API) setGroupVisibility(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req visibilityRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.IsPublic == nil {
		writeError(w, http.StatusBadRequest, "is_public must be true/false")
		return
	}
	err := a.store.SetGroupVisibility(r.Context(), ps.ByName("id"), *req.IsPublic)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}

func (a *API) activeTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	groupID := ps.ByName("id")
	if !a.requireGroupRead(w, r, groupID) {
		return
	}
	trip, err := a.store.ActiveTrip(r.Context(), groupID, time.Now().Unix())
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	groupID := ps.ByName("id")
	if !a.requireGroupRead(w, r, groupID) {
		return
	}
	members, err := a.store.GroupMembers(r.Context(), groupID)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	groupID := ps.ByName("id")
	exists, err := a.store.GroupExists(r.Context(), groupID)
	if err != nil {
		fail(w, r, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "group not found")
		return
	}
	var req addMemberRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	userID := req.UserID
	if userID == "" && req.Email != "" {
		userID, err = a.store.UserIDByEmail(r.Context(), req.Email)
		var notFound store.NotFound
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		} else if err != nil {
			fail(w, r, err)
			return
		}
	}
	if userID == "" {
		writeError(w, http.StatusBadRequest, "provide user_id or email")
		return
	}
	exists, err = a.store.UserExists(r.Context(), userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	err = a.store.AddMember(r.Context(), groupID, userID)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, memberResponse{OK: true, GroupID: groupID, UserID: userID})
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	err := a.store.RemoveMember(r.Context(), ps.ByName("id"), ps.ByName("userID"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}

func (a *API) myGroups(w http.ResponseWriter, r *http.Request) {
	sess, err := a.realm.Session(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	groups, err := a.store.GroupsForUser(r.Context(), sess.UserID)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}
