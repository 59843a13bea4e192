package api

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/tripstack/tripstack/store"
)

type (
	cruiseCabinRequest struct {
		CabinNo    *string `json:"cabin_no"`
		Category   *string `json:"category"`
		Deck       *string `json:"deck"`
		Guests     *int64  `json:"guests"`
		PriceCents *int64  `json:"price_cents"`
		Notes      *string `json:"notes"`
	}

	flightRequest struct {
		Carrier       *string `json:"carrier"`
		FlightNo      *string `json:"flight_no"`
		DepartAirport *string `json:"depart_airport"`
		ArriveAirport *string `json:"arrive_airport"`
		DepartTS      *int64  `json:"depart_ts"`
		ArriveTS      *int64  `json:"arrive_ts"`
		RecordLocator *string `json:"record_locator"`
	}

	hotelRoomRequest struct {
		HotelName    *string `json:"hotel_name"`
		RoomType     *string `json:"room_type"`
		CheckInTS    *int64  `json:"check_in_ts"`
		CheckOutTS   *int64  `json:"check_out_ts"`
		Occupants    *int64  `json:"occupants"`
		Confirmation *string `json:"confirmation"`
	}

	allInclusiveRequest struct {
		ResortName   *string `json:"resort_name"`
		PlanName     *string `json:"plan_name"`
		CheckInTS    *int64  `json:"check_in_ts"`
		CheckOutTS   *int64  `json:"check_out_ts"`
		Occupants    *int64  `json:"occupants"`
		Confirmation *string `json:"confirmation"`
	}
)

func (a *API) listCruiseCabins(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, ok := a.loadAccessibleTrip(w, r, ps.ByName("id"))
	if !ok {
		return
	}
	cabins, err := a.store.CruiseCabins(r.Context(), trip.ID)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cabins)
}

func (a *API) addCruiseCabin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req cruiseCabinRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	id, err := a.store.AddCruiseCabin(r.Context(), store.CruiseCabin{
		TripID:     ps.ByName("id"),
		CabinNo:    req.CabinNo,
		Category:   req.Category,
		Deck:       req.Deck,
		Guests:     req.Guests,
		PriceCents: req.PriceCents,
		Notes:      req.Notes,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createdResponse{OK: true, ID: id})
}

func (a *API) deleteCruiseCabin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	err := a.store.DeleteCruiseCabin(r.Context(), ps.ByName("id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}

func (a *API) listFlights(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, ok := a.loadAccessibleTrip(w, r, ps.ByName("id"))
	if !ok {
		return
	}
	flights, err := a.store.FlightSegments(r.Context(), trip.ID)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, flights)
}

func (a *API) addFlight(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req flightRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	id, err := a.store.AddFlightSegment(r.Context(), store.FlightSegment{
		TripID:        ps.ByName("id"),
		Carrier:       req.Carrier,
		FlightNo:      req.FlightNo,
		DepartAirport: req.DepartAirport,
		ArriveAirport: req.ArriveAirport,
		DepartTS:      req.DepartTS,
		ArriveTS:      req.ArriveTS,
		RecordLocator: req.RecordLocator,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createdResponse{OK: true, ID: id})
}

func (a *API) deleteFlightSegment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	err := a.store.DeleteFlightSegment(r.Context(), ps.ByName("id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}

func (a *API) listHotelRooms(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, ok := a.loadAccessibleTrip(w, r, ps.ByName("id"))
	if !ok {
		return
	}
	rooms, err := a.store.HotelRooms(r.Context(), trip.ID)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (a *API) addHotelRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req hotelRoomRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	id, err := a.store.AddHotelRoom(r.Context(), store.HotelRoom{
		TripID:       ps.ByName("id"),
		HotelName:    req.HotelName,
		RoomType:     req.RoomType,
		CheckInTS:    req.CheckInTS,
		CheckOutTS:   req.CheckOutTS,
		Occupants:    req.Occupants,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createdResponse{OK: true, ID: id})
}

func (a *API) deleteHotelRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	err := a.store.DeleteHotelRoom(r.Context(), ps.ByName("id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}

func (a *API) listAllInclusive(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	trip, ok := a.loadAccessibleTrip(w, r, ps.ByName("id"))
	if !ok {
		return
	}
	packages, err := a.store.AllInclusivePackages(r.Context(), trip.ID)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, packages)
}

func (a *API) addAllInclusive(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	var req allInclusiveRequest
	if err := readJSON(r, &req); err != nil {
		fail(w, r, err)
		return
	}
	id, err := a.store.AddAllInclusivePackage(r.Context(), store.AllInclusivePackage{
		TripID:       ps.ByName("id"),
		ResortName:   req.ResortName,
		PlanName:     req.PlanName,
		CheckInTS:    req.CheckInTS,
		CheckOutTS:   req.CheckOutTS,
		Occupants:    req.Occupants,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createdResponse{OK: true, ID: id})
}

func (a *API) deleteAllInclusive(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if !a.requireAdmin(w, r) {
		return
	}
	err := a.store.DeleteAllInclusivePackage(r.Context(), ps.ByName("id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	writeOK(w)
}
