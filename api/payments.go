package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/tripstack/tripstack/store"
)

type (
	createPaymentRequest struct {
		Label     string `json:"label"`
		VendorURL string `json:"vendor_url"`
		DueAt     *int64 `json:"due_at"`
	}
)

func (a *API) listPayments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	groupID := ps.ByName("id")
	if !a.requireGroupRead(w, r, groupID) {
		return
	}
	links, err := a.store.PaymentLinks(r.Context(), groupID)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (a *API) createPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req createPaymentRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.Label == "" || req.VendorURL == "" {
		writeError(w, http.StatusBadRequest, "label and vendor_url are required")
		return
	}
	id, err := a.store.CreatePaymentLink(r.Context(), store.PaymentLink{
		GroupID:   ps.ByName("id"),
		Label:     req.Label,
		VendorURL: req.VendorURL,
		DueAt:     req.DueAt,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createdResponse{OK: true, ID: id})
}
