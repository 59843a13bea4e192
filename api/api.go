package api

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/tripstack/tripstack/auth"
	"github.com/tripstack/tripstack/internal/logutil"
	"github.com/tripstack/tripstack/store"
)

type (
	// API wires the trip store and the auth service into a declared
	// route table. Handlers are request scoped, nothing is shared
	// between invocations besides the store itself.
	API struct {
		store    *store.Store
		auth     *auth.Service
		realm    *Realm
		throttle *auth.LoginThrottle
	}
)

func New(st *store.Store, authSvc *auth.Service, realm *Realm, throttle *auth.LoginThrottle) *API {
	return &API{
		store:    st,
		auth:     authSvc,
		realm:    realm,
		throttle: throttle,
	}
}

func (a *API) AsHandler() http.Handler {
	router := httprouter.New()

	router.HandlerFunc("GET", "/health", a.health)

	router.HandlerFunc("POST", "/api/auth/register", a.register)
	router.HandlerFunc("POST", "/api/auth/login", a.login)
	router.HandlerFunc("POST", "/api/auth/logout", a.logout)
	router.HandlerFunc("GET", "/api/me", a.me)
	router.HandlerFunc("GET", "/api/my/groups", a.myGroups)

	router.HandlerFunc("GET", "/api/groups", a.listGroups)
	router.HandlerFunc("POST", "/api/groups", a.createGroup)
	router.Handle("PUT", "/api/groups/:id/leader", a.setGroupLeader)
	router.Handle("PUT", "/api/groups/:id/visibility", a.setGroupVisibility)
	router.Handle("GET", "/api/groups/:id/active-trip", a.activeTrip)
	router.Handle("GET", "/api/groups/:id/members", a.listMembers)
	router.Handle("POST", "/api/groups/:id/members", a.addMember)
	router.Handle("DELETE", "/api/groups/:id/members/:userID", a.removeMember)
	router.Handle("GET", "/api/groups/:id/payments", a.listPayments)
	router.Handle("POST", "/api/groups/:id/payments", a.createPayment)
	router.Handle("GET", "/api/groups/:id/trip-submissions", a.listSubmissions)
	router.Handle("POST", "/api/groups/:id/trip-submissions", a.createSubmission)

	router.HandlerFunc("GET", "/api/trips", a.listTrips)
	router.HandlerFunc("POST", "/api/trips", a.createTrip)
	router.Handle("GET", "/api/trips/:id", a.getTrip)
	router.Handle("PUT", "/api/trips/:id", a.updateTrip)
	router.Handle("DELETE", "/api/trips/:id", a.deleteTrip)
	router.Handle("PUT", "/api/trips/:id/flags", a.setTripFlags)
	router.Handle("PUT", "/api/trips/:id/visibility", a.setTripVisibility)
	router.Handle("GET", "/api/trips/:id/full", a.getTripFull)

	router.Handle("GET", "/api/trips/:id/cruise-cabins", a.listCruiseCabins)
	router.Handle("POST", "/api/trips/:id/cruise-cabins", a.addCruiseCabin)
	router.Handle("GET", "/api/trips/:id/flights", a.listFlights)
	router.Handle("POST", "/api/trips/:id/flights", a.addFlight)
	router.Handle("GET", "/api/trips/:id/hotel-rooms", a.listHotelRooms)
	router.Handle("POST", "/api/trips/:id/hotel-rooms", a.addHotelRoom)
	router.Handle("GET", "/api/trips/:id/all-inclusive", a.listAllInclusive)
	router.Handle("POST", "/api/trips/:id/all-inclusive", a.addAllInclusive)
	router.Handle("DELETE", "/api/cruise-cabins/:id", a.deleteCruiseCabin)
	router.Handle("DELETE", "/api/flight-segments/:id", a.deleteFlightSegment)
	router.Handle("DELETE", "/api/hotel-rooms/:id", a.deleteHotelRoom)
	router.Handle("DELETE", "/api/ai-packages/:id", a.deleteAllInclusive)

	router.Handle("POST", "/api/trip-submissions/:id/promote", a.promoteSubmission)
	router.Handle("DELETE", "/api/trip-submissions/:id", a.discardSubmission)

	router.Handle("GET", "/api/brands/:id/socials", a.brandSocials)
	router.Handle("POST", "/api/brands/:id/socials", a.setBrandSocials)

	router.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return withCORS(requestLog(router))
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	writeOK(w)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		logger := logutil.ForRequest(r)
		logger.Info().
			Int("http.status", sw.status).
			Dur("http.duration", time.Since(start)).
			Msg("Request served")
	})
}
