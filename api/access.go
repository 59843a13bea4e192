package api

import (
	"net"
	"net/http"
	"regexp"
	"strings"

	"github.com/tripstack/tripstack/auth"
	"github.com/tripstack/tripstack/store"
)

type (
	// Realm decides who may see what. Three tiers exist: the admin
	// shared secret, an authenticated member of the owning group, and
	// the public flag on the resource itself.
	Realm struct {
		adminToken string
		auth       *auth.Service
		store      *store.Store
	}
)

var (
	bearerTokenRE = regexp.MustCompile(`^Bearer ([^\s]+)$`)
)

func NewRealm(adminToken string, authSvc *auth.Service, st *store.Store) *Realm {
	return &Realm{
		adminToken: adminToken,
		auth:       authSvc,
		store:      st,
	}
}

// bearerToken extracts the credential from the Authorization header. A
// missing or malformed header is no credential, not an error.
func bearerToken(r *http.Request) string {
	groups := bearerTokenRE.FindStringSubmatch(r.Header.Get("Authorization"))
	if len(groups) == 0 {
		return ""
	}
	return groups[1]
}

// IsAdmin reports whether the request carries the admin shared secret.
// The secret and session tokens live in the same header slot, admin is
// always checked first and the comparison is constant time.
func (re *Realm) IsAdmin(r *http.Request) bool {
	tk := bearerToken(r)
	return tk != "" && re.adminToken != "" && auth.SafeEqual(tk, re.adminToken)
}

// Session resolves the bearer token, nil without a valid session.
func (re *Realm) Session(r *http.Request) (*store.Session, error) {
	return re.auth.Resolve(r.Context(), bearerToken(r))
}

// CanAccessTrip evaluates the tiers in strict order: admin, public
// flag, then group membership. The ordering keeps anonymous reads of
// public trips away from the session store and admin reads away from
// the membership relation.
func (re *Realm) CanAccessTrip(r *http.Request, trip store.Trip) (bool, error) {
	if re.IsAdmin(r) {
		return true, nil
	}
	if trip.IsPublic {
		return true, nil
	}
	sess, err := re.Session(r)
	if err != nil {
		return false, err
	}
	if sess == nil {
		return false, nil
	}
	return re.store.IsMember(r.Context(), sess.UserID, trip.GroupID)
}

// requireAdmin answers the request with 401 unless it carries the admin
// secret. Every write on every resource goes through here, membership
// never grants write access.
func (a *API) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if a.realm.IsAdmin(r) {
		return true
	}
	writeError(w, http.StatusUnauthorized, "unauthorized")
	return false
}

// requireGroupRead lets admins and members of the group through,
// answering 401 for missing sessions and 403 for non-members.
func (a *API) requireGroupRead(w http.ResponseWriter, r *http.Request, groupID string) bool {
	if a.realm.IsAdmin(r) {
		return true
	}
	sess, err := a.realm.Session(r)
	if err != nil {
		fail(w, r, err)
		return false
	}
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	member, err := a.store.IsMember(r.Context(), sess.UserID, groupID)
	if err != nil {
		fail(w, r, err)
		return false
	}
	if !member {
		writeError(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}

func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
