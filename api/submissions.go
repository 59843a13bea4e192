package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/tripstack/tripstack/store"
)

type (
	createSubmissionRequest struct {
		Title     string  `json:"title"`
		StartDate *int64  `json:"start_date"`
		EndDate   *int64  `json:"end_date"`
		Notes     *string `json:"notes"`
	}
)

// createSubmission takes trip proposals from anyone, no credential
// needed. Promotion to a real trip stays an admin action.
func (a *API) createSubmission(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req createSubmissionRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	id, err := a.store.CreateSubmission(r.Context(), store.Submission{
		GroupID:   ps.ByName("id"),
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createdResponse{OK: true, ID: id})
}

func (a *API) listSubmissions(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	subs, err := a.store.SubmissionsByGroup(r.Context(), ps.ByName("id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

func (a *API) promoteSubmission(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	tripID, err := a.store.PromoteSubmission(r.Context(), ps.ByName("id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createdResponse{OK: true, ID: tripID})
}

func (a *API) discardSubmission(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	err := a.store.DeleteSubmission(r.Context(), ps.ByName("id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}
