package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/tripstack/tripstack/store"
)

func (a *API) brandSocials(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	socials, err := a.store.BrandSocials(r.Context(), ps.ByName("id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, socials)
}

func (a *API) setBrandSocials(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req store.BrandSocials
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	err := a.store.UpsertBrandSocials(r.Context(), ps.ByName("id"), req)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}
