package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/tripstack/tripstack/store"
)

type (
	createTripRequest struct {
		GroupID         string  `json:"group_id"`
		Title           string  `json:"title"`
		StartDate       *int64  `json:"start_date"`
		EndDate         *int64  `json:"end_date"`
		Notes           *string `json:"notes"`
		IsPublic        bool    `json:"is_public"`
		HasCruise       bool    `json:"has_cruise"`
		HasFlights      bool    `json:"has_flights"`
		HasHotel        bool    `json:"has_hotel"`
		HasAllInclusive bool    `json:"has_all_inclusive"`
	}

	updateTripRequest struct {
		GroupID         *string `json:"group_id"`
		Title           *string `json:"title"`
		StartDate       *int64  `json:"start_date"`
		EndDate         *int64  `json:"end_date"`
		Notes           *string `json:"notes"`
		IsPublic        *bool   `json:"is_public"`
		HasCruise       *bool   `json:"has_cruise"`
		HasFlights      *bool   `json:"has_flights"`
		HasHotel        *bool   `json:"has_hotel"`
		HasAllInclusive *bool   `json:"has_all_inclusive"`
	}

	tripFlagsRequest struct {
		HasCruise       *bool `json:"has_cruise"`
		HasFlights      *bool `json:"has_flights"`
		HasHotel        *bool `json:"has_hotel"`
		HasAllInclusive *bool `json:"has_all_inclusive"`
	}

	tripFullResponse struct {
		store.Trip
		CruiseCabins   []store.CruiseCabin         `json:"cruise_cabins"`
		FlightSegments []store.FlightSegment       `json:"flight_segments"`
		HotelRooms     []store.HotelRoom           `json:"hotel_rooms"`
		AllInclusive   []store.AllInclusivePackage `json:"all_inclusive"`
	}
)

// listTrips is tiered: the admin sees everything, optionally narrowed
// by groupId, a member sees the requested group (403 outside it) or,
// without groupId, every trip across their groups.
func (a *API) listTrips(w http.ResponseWriter, r *http.Request) {
	groupID := r.URL.Query().Get("groupId")
	if a.realm.IsAdmin(r) {
		var trips []store.Trip
		var err error
		if groupID != "" {
			trips, err = a.store.TripsByGroup(r.Context(), groupID)
		} else {
			trips, err = a.store.Trips(r.Context())
		}
		if err != nil {
			fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, trips)
		return
	}
	sess, err := a.realm.Session(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if groupID != "" {
		member, err := a.store.IsMember(r.Context(), sess.UserID, groupID)
		if err != nil {
			fail(w, r, err)
			return
		}
		if !member {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		trips, err := a.store.TripsByGroup(r.Context(), groupID)
		if err != nil {
			fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, trips)
		return
	}
	trips, err := a.store.TripsForUser(r.Context(), sess.UserID)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

func (a *API) createTrip(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req createTripRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.GroupID == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "group_id and title are required")
		return
	}
	id, err := a.store.CreateTrip(r.Context(), store.Trip{
		GroupID:         req.GroupID,
		Title:           req.Title,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Notes:           req.Notes,
		IsPublic:        req.IsPublic,
		HasCruise:       req.HasCruise,
		HasFlights:      req.HasFlights,
		HasHotel:        req.HasHotel,
		HasAllInclusive: req.HasAllInclusive,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createdResponse{OK: true, ID: id})
}

// loadAccessibleTrip fetches the trip and runs the tiered access check.
// Missing trips report 404 before any authorization, existence of a
// trip id is treated as safe to disclose.
func (a *API) loadAccessibleTrip(w http.ResponseWriter, r *http.Request, id string) (store.Trip, bool) {
	trip, err := a.store.TripByID(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return store.Trip{}, false
	}
	allowed, err := a.realm.CanAccessTrip(r, trip)
	if err != nil {
		fail(w, r, err)
		return store.Trip{}, false
	}
	if !allowed {
		writeError(w, http.StatusForbidden, "forbidden")
		return store.Trip{}, false
	}
	return trip, true
}

func (a *API) getTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, ok := a.loadAccessibleTrip(w, r, ps.ByName("id"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (a *API) updateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req updateTripRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	err := a.store.UpdateTrip(r.Context(), ps.ByName("id"), store.TripUpdate{
		GroupID:         req.GroupID,
		Title:           req.Title,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Notes:           req.Notes,
		IsPublic:        req.IsPublic,
		HasCruise:       req.HasCruise,
		HasFlights:      req.HasFlights,
		HasHotel:        req.HasHotel,
		HasAllInclusive: req.HasAllInclusive,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}

func (a *API) deleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	err := a.store.DeleteTrip(r.Context(), ps.ByName("id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}

func (a *API) setTripFlags(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req tripFlagsRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.HasCruise == nil && req.HasFlights == nil && req.HasHotel == nil && req.HasAllInclusive == nil {
		writeError(w, http.StatusBadRequest, "provide at least one of: has_cruise, has_flights, has_hotel, has_all_inclusive")
		return
	}
	err := a.store.SetTripFlags(r.Context(), ps.ByName("id"), store.TripFlags{
		HasCruise:       req.HasCruise,
		HasFlights:      req.HasFlights,
		HasHotel:        req.HasHotel,
		HasAllInclusive: req.HasAllInclusive,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}

func (a *API) setTripVisibility(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req visibilityRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	if req.IsPublic == nil {
		writeError(w, http.StatusBadRequest, "is_public is required (true/false)")
		return
	}
	err := a.store.SetTripVisibility(r.Context(), ps.ByName("id"), *req.IsPublic)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}

func (a *API) getTripFull(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, ok := a.loadAccessibleTrip(w, r, ps.ByName("id"))
	if !ok {
		return
	}
	cabins, err := a.store.CruiseCabins(r.Context(), trip.ID)
	if err != nil {
		fail(w, r, err)
		return
	}
	flights, err := a.store.FlightSegments(r.Context(), trip.ID)
	if err != nil {
		fail(w, r, err)
		return
	}
	rooms, err := a.store.HotelRooms(r.Context(), trip.ID)
	if err != nil {
		fail(w, r, err)
		return
	}
	packages, err := a.store.AllInclusivePackages(r.Context(), trip.ID)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripFullResponse{
		Trip:           trip,
		CruiseCabins:   cabins,
		FlightSegments: flights,
		HotelRooms:     rooms,
		AllInclusive:   packages,
	})
}
