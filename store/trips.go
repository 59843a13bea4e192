package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type (
	Trip struct {
		ID              string  `json:"id"`
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

	// TripUpdate carries the partial update of a trip, nil fields keep
	// the stored value.
	TripUpdate struct {
		GroupID         *string
		Title           *string
		StartDate       *int64
		EndDate         *int64
		Notes           *string
		IsPublic        *bool
		HasCruise       *bool
		HasFlights      *bool
		HasHotel        *bool
		HasAllInclusive *bool
	}

	TripFlags struct {
		HasCruise       *bool
		HasFlights      *bool
		HasHotel        *bool
		HasAllInclusive *bool
	}
)

const tripColumns = `id, group_id, title, start_date, end_date, notes,
	is_public, has_cruise, has_flights, has_hotel, has_all_inclusive`

const tripOrder = `(start_date is null) asc, start_date asc`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(row rowScanner) (Trip, error) {
	var t Trip
	err := row.Scan(&t.ID, &t.GroupID, &t.Title, &t.StartDate, &t.EndDate, &t.Notes,
		&t.IsPublic, &t.HasCruise, &t.HasFlights, &t.HasHotel, &t.HasAllInclusive)
	return t, err
}

func (s *Store) collectTrips(rows *sql.Rows) ([]Trip, error) {
	defer rows.Close()
	out := []Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("unable to scan trip row, cause %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) CreateTrip(ctx context.Context, t Trip) (string, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `insert into trips (`+tripColumns+`)
		values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.GroupID, t.Title, t.StartDate, t.EndDate, t.Notes,
		t.IsPublic, t.HasCruise, t.HasFlights, t.HasHotel, t.HasAllInclusive)
	if err != nil {
		return "", fmt.Errorf("unable to store trip %v, cause %w", t.Title, err)
	}
	return t.ID, nil
}

func (s *Store) Trips(ctx context.Context) ([]Trip, error) {
	rows, err := s.db.QueryContext(ctx, `select `+tripColumns+` from trips order by `+tripOrder)
	if err != nil {
		return nil, fmt.Errorf("unable to list trips, cause %w", err)
	}
	return s.collectTrips(rows)
}

func (s *Store) TripsByGroup(ctx context.Context, groupID string) ([]Trip, error) {
	rows, err := s.db.QueryContext(ctx, `select `+tripColumns+` from trips
		where group_id = ? order by `+tripOrder, groupID)
	if err != nil {
		return nil, fmt.Errorf("unable to list trips of group %v, cause %w", groupID, err)
	}
	return s.collectTrips(rows)
}

// TripsForUser lists trips across every group the user belongs to.
func (s *Store) TripsForUser(ctx context.Context, userID string) ([]Trip, error) {
	rows, err := s.db.QueryContext(ctx, `select t.id, t.group_id, t.title, t.start_date, t.end_date, t.notes,
		t.is_public, t.has_cruise, t.has_flights, t.has_hotel, t.has_all_inclusive
		from trips t
		inner join group_members gm on gm.group_id = t.group_id
		where gm.user_id = ?
		order by (t.start_date is null) asc, t.start_date asc`, userID)
	if err != nil {
		return nil, fmt.Errorf("unable to list trips of user %v, cause %w", userID, err)
	}
	return s.collectTrips(rows)
}

func (s *Store) TripByID(ctx context.Context, id string) (Trip, error) {
	t, err := scanTrip(s.db.QueryRowContext(ctx, `select `+tripColumns+` from trips where id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Trip{}, NotFound{Kind: "trip", ID: id}
	} else if err != nil {
		return Trip{}, fmt.Errorf("unable to load trip %v, cause %w", id, err)
	}
	return t, nil
}

func (s *Store) UpdateTrip(ctx context.Context, id string, up TripUpdate) error {
	_, err := s.db.ExecContext(ctx, `update trips
		set group_id          = coalesce(?, group_id),
			title             = coalesce(?, title),
			start_date        = coalesce(?, start_date),
			end_date          = coalesce(?, end_date),
			notes             = coalesce(?, notes),
			is_public         = coalesce(?, is_public),
			has_cruise        = coalesce(?, has_cruise),
			has_flights       = coalesce(?, has_flights),
			has_hotel         = coalesce(?, has_hotel),
			has_all_inclusive = coalesce(?, has_all_inclusive)
		where id = ?`,
		up.GroupID, up.Title, up.StartDate, up.EndDate, up.Notes,
		up.IsPublic, up.HasCruise, up.HasFlights, up.HasHotel, up.HasAllInclusive, id)
	if err != nil {
		return fmt.Errorf("unable to update trip %v, cause %w", id, err)
	}
	return nil
}

func (s *Store) DeleteTrip(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `delete from trips where id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete trip %v, cause %w", id, err)
	}
	return nil
}

// SetTripFlags updates only the flags that are set, at least one must be.
func (s *Store) SetTripFlags(ctx context.Context, id string, flags TripFlags) error {
	var sets []string
	var binds []interface{}
	if flags.HasCruise != nil {
		sets = append(sets, "has_cruise = ?")
		binds = append(binds, *flags.HasCruise)
	}
	if flags.HasFlights != nil {
		sets = append(sets, "has_flights = ?")
		binds = append(binds, *flags.HasFlights)
	}
	if flags.HasHotel != nil {
		sets = append(sets, "has_hotel = ?")
		binds = append(binds, *flags.HasHotel)
	}
	if flags.HasAllInclusive != nil {
		sets = append(sets, "has_all_inclusive = ?")
		binds = append(binds, *flags.HasAllInclusive)
	}
	if len(sets) == 0 {
		return errors.New("no flags to update")
	}
	binds = append(binds, id)
	_, err := s.db.ExecContext(ctx, `update trips set `+strings.Join(sets, ", ")+` where id = ?`, binds...)
	if err != nil {
		return fmt.Errorf("unable to update flags of trip %v, cause %w", id, err)
	}
	return nil
}

func (s *Store) SetTripVisibility(ctx context.Context, id string, public bool) error {
	_, err := s.db.ExecContext(ctx, `update trips set is_public = ? where id = ?`, public, id)
	if err != nil {
		return fmt.Errorf("unable to update visibility of trip %v, cause %w", id, err)
	}
	return nil
}
