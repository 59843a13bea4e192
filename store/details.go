package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type (
	CruiseCabin struct {
		ID         string  `json:"id"`
		TripID     string  `json:"trip_id"`
		CabinNo    *string `json:"cabin_no"`
		Category   *string `json:"category"`
		Deck       *string `json:"deck"`
		Guests     *int64  `json:"guests"`
		PriceCents *int64  `json:"price_cents"`
		Notes      *string `json:"notes"`
	}

	FlightSegment struct {
		ID            string  `json:"id"`
		TripID        string  `json:"trip_id"`
		Carrier       *string `json:"carrier"`
		FlightNo      *string `json:"flight_no"`
		DepartAirport *string `json:"depart_airport"`
		ArriveAirport *string `json:"arrive_airport"`
		DepartTS      *int64  `json:"depart_ts"`
		ArriveTS      *int64  `json:"arrive_ts"`
		RecordLocator *string `json:"record_locator"`
	}

	HotelRoom struct {
		ID           string  `json:"id"`
		TripID       string  `json:"trip_id"`
		HotelName    *string `json:"hotel_name"`
		RoomType     *string `json:"room_type"`
		CheckInTS    *int64  `json:"check_in_ts"`
		CheckOutTS   *int64  `json:"check_out_ts"`
		Occupants    *int64  `json:"occupants"`
		Confirmation *string `json:"confirmation"`
	}

	AllInclusivePackage struct {
		ID           string  `json:"id"`
		TripID       string  `json:"trip_id"`
		ResortName   *string `json:"resort_name"`
		PlanName     *string `json:"plan_name"`
		CheckInTS    *int64  `json:"check_in_ts"`
		CheckOutTS   *int64  `json:"check_out_ts"`
		Occupants    *int64  `json:"occupants"`
		Confirmation *string `json:"confirmation"`
	}
)

func (s *Store) CruiseCabins(ctx context.Context, tripID string) ([]CruiseCabin, error) {
	rows, err := s.db.QueryContext(ctx, `select id, trip_id, cabin_no, category, deck, guests, price_cents, notes
		from cruise_cabins where trip_id = ?`, tripID)
	if err != nil {
		return nil, fmt.Errorf("unable to list cruise cabins of trip %v, cause %w", tripID, err)
	}
	defer rows.Close()
	out := []CruiseCabin{}
	for rows.Next() {
		var c CruiseCabin
		err = rows.Scan(&c.ID, &c.TripID, &c.CabinNo, &c.Category, &c.Deck, &c.Guests, &c.PriceCents, &c.Notes)
		if err != nil {
			return nil, fmt.Errorf("unable to scan cruise cabin row, cause %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) AddCruiseCabin(ctx context.Context, c CruiseCabin) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `insert into cruise_cabins (id, trip_id, cabin_no, category, deck, guests, price_cents, notes)
		values (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.TripID, c.CabinNo, c.Category, c.Deck, c.Guests, c.PriceCents, c.Notes)
	if err != nil {
		return "", fmt.Errorf("unable to store cruise cabin for trip %v, cause %w", c.TripID, err)
	}
	return c.ID, nil
}

func (s *Store) DeleteCruiseCabin(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `delete from cruise_cabins where id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete cruise cabin %v, cause %w", id, err)
	}
	return nil
}

func (s *Store) FlightSegments(ctx context.Context, tripID string) ([]FlightSegment, error) {
	rows, err := s.db.QueryContext(ctx, `select id, trip_id, carrier, flight_no, depart_airport, arrive_airport, depart_ts, arrive_ts, record_locator
		from flight_segments where trip_id = ? order by depart_ts asc`, tripID)
	if err != nil {
		return nil, fmt.Errorf("unable to list flight segments of trip %v, cause %w", tripID, err)
	}
	defer rows.Close()
	out := []FlightSegment{}
	for rows.Next() {
		var f FlightSegment
		err = rows.Scan(&f.ID, &f.TripID, &f.Carrier, &f.FlightNo, &f.DepartAirport, &f.ArriveAirport, &f.DepartTS, &f.ArriveTS, &f.RecordLocator)
		if err != nil {
			return nil, fmt.Errorf("unable to scan flight segment row, cause %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *Store) AddFlightSegment(ctx context.Context, f FlightSegment) (string, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `insert into flight_segments (id, trip_id, carrier, flight_no, depart_airport, arrive_airport, depart_ts, arrive_ts, record_locator)
		values (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.TripID, f.Carrier, f.FlightNo, f.DepartAirport, f.ArriveAirport, f.DepartTS, f.ArriveTS, f.RecordLocator)
	if err != nil {
		return "", fmt.Errorf("unable to store flight segment for trip %v, cause %w", f.TripID, err)
	}
	return f.ID, nil
}

func (s *Store) DeleteFlightSegment(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `delete from flight_segments where id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete flight segment %v, cause %w", id, err)
	}
	return nil
}

func (s *Store) HotelRooms(ctx context.Context, tripID string) ([]HotelRoom, error) {
	rows, err := s.db.QueryContext(ctx, `select id, trip_id, hotel_name, room_type, check_in_ts, check_out_ts, occupants, confirmation
		from hotel_rooms where trip_id = ? order by check_in_ts asc`, tripID)
	if err != nil {
		return nil, fmt.Errorf("unable to list hotel rooms of trip %v, cause %w", tripID, err)
	}
	defer rows.Close()
	out := []HotelRoom{}
	for rows.Next() {
		var h HotelRoom
		err = rows.Scan(&h.ID, &h.TripID, &h.HotelName, &h.RoomType, &h.CheckInTS, &h.CheckOutTS, &h.Occupants, &h.Confirmation)
		if err != nil {
			return nil, fmt.Errorf("unable to scan hotel room row, cause %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (s *Store) AddHotelRoom(ctx context.Context, h HotelRoom) (string, error) {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `insert into hotel_rooms (id, trip_id, hotel_name, room_type, check_in_ts, check_out_ts, occupants, confirmation)
		values (?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.TripID, h.HotelName, h.RoomType, h.CheckInTS, h.CheckOutTS, h.Occupants, h.Confirmation)
	if err != nil {
		return "", fmt.Errorf("unable to store hotel room for trip %v, cause %w", h.TripID, err)
	}
	return h.ID, nil
}

func (s *Store) DeleteHotelRoom(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `delete from hotel_rooms where id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete hotel room %v, cause %w", id, err)
	}
	return nil
}

func (s *Store) AllInclusivePackages(ctx context.Context, tripID string) ([]AllInclusivePackage, error) {
	rows, err := s.db.QueryContext(ctx, `select id, trip_id, resort_name, plan_name, check_in_ts, check_out_ts, occupants, confirmation
		from ai_packages where trip_id = ? order by check_in_ts asc`, tripID)
	if err != nil {
		return nil, fmt.Errorf("unable to list all-inclusive packages of trip %v, cause %w", tripID, err)
	}
	defer rows.Close()
	out := []AllInclusivePackage{}
	for rows.Next() {
		var p AllInclusivePackage
		err = rows.Scan(&p.ID, &p.TripID, &p.ResortName, &p.PlanName, &p.CheckInTS, &p.CheckOutTS, &p.Occupants, &p.Confirmation)
		if err != nil {
			return nil, fmt.Errorf("unable to scan all-inclusive package row, cause %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) AddAllInclusivePackage(ctx context.Context, p AllInclusivePackage) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `insert into ai_packages (id, trip_id, resort_name, plan_name, check_in_ts, check_out_ts, occupants, confirmation)
		values (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.TripID, p.ResortName, p.PlanName, p.CheckInTS, p.CheckOutTS, p.Occupants, p.Confirmation)
	if err != nil {
		return "", fmt.Errorf("unable to store all-inclusive package for trip %v, cause %w", p.TripID, err)
	}
	return p.ID, nil
}

func (s *Store) DeleteAllInclusivePackage(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `delete from ai_packages where id = ?`, id)
	if err != nil {
		return fmt.Errorf("unable to delete all-inclusive package %v, cause %w", id, err)
	}
	return nil
}
