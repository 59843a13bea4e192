package store

import (
	"context"
	"testing"
	"time"
)

func TestFlightSegmentsOrdering(t *testing.T) {
	ctx := context.Background()
	st, cleanup := tempStore(ctx, t)
	defer cleanup()
	gid, err := st.CreateGroup(ctx, Group{Name: "Lisbon 2026"})
	if err != nil {
		t.Fatal(err)
	}
	tid, err := st.CreateTrip(ctx, Trip{GroupID: gid, Title: "trip"})
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now().Unix()
	_, err = st.AddFlightSegment(ctx, FlightSegment{TripID: tid, FlightNo: strptr("TP202"), DepartTS: i64ptr(now + 7200)})
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.AddFlightSegment(ctx, FlightSegment{TripID: tid, FlightNo: strptr("TP101"), DepartTS: i64ptr(now)})
	if err != nil {
		t.Fatal(err)
	}
	segments, err := st.FlightSegments(ctx, tid)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 2 {
		t.Fatalf("trip should have two segments, got %v", len(segments))
	}
	if *segments[0].FlightNo != "TP101" || *segments[1].FlightNo != "TP202" {
		t.Fatal("segments should be ordered by departure time")
	}
}

func TestCruiseCabinDelete(t *testing.T) {
	ctx := context.Background()
	st, cleanup := tempStore(ctx, t)
	defer cleanup()
	gid, err := st.CreateGroup(ctx, Group{Name: "Lisbon 2026"})
	if err != nil {
		t.Fatal(err)
	}
	tid, err := st.CreateTrip(ctx, Trip{GroupID: gid, Title: "trip"})
	if err != nil {
		t.Fatal(err)
	}
	id, err := st.AddCruiseCabin(ctx, CruiseCabin{TripID: tid, CabinNo: strptr("B-204"), Guests: i64ptr(2)})
	if err != nil {
		t.Fatal(err)
	}
	cabins, err := st.CruiseCabins(ctx, tid)
	if err != nil {
		t.Fatal(err)
	}
	if len(cabins) != 1 || *cabins[0].CabinNo != "B-204" {
		t.Fatalf("cabin should round trip, got %+v", cabins)
	}
	err = st.DeleteCruiseCabin(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	cabins, err = st.CruiseCabins(ctx, tid)
	if err != nil {
		t.Fatal(err)
	}
	if len(cabins) != 0 {
		t.Fatal("deleted cabin should be gone")
	}
}

func TestHotelAndAllInclusiveRoundTrip(t *testing.T) {
	ctx := context.Background()
	st, cleanup := tempStore(ctx, t)
	defer cleanup()
	gid, err := st.CreateGroup(ctx, Group{Name: "Lisbon 2026"})
	if err != nil {
		t.Fatal(err)
	}
	tid, err := st.CreateTrip(ctx, Trip{GroupID: gid, Title: "trip"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.AddHotelRoom(ctx, HotelRoom{TripID: tid, HotelName: strptr("Hotel Mundial"), Occupants: i64ptr(2)})
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.AddAllInclusivePackage(ctx, AllInclusivePackage{TripID: tid, ResortName: strptr("Sol Dunas")})
	if err != nil {
		t.Fatal(err)
	}
	rooms, err := st.HotelRooms(ctx, tid)
	if err != nil {
		t.Fatal(err)
	}
	if len(rooms) != 1 || *rooms[0].HotelName != "Hotel Mundial" {
		t.Fatalf("room should round trip, got %+v", rooms)
	}
	packages, err := st.AllInclusivePackages(ctx, tid)
	if err != nil {
		t.Fatal(err)
	}
	if len(packages) != 1 || *packages[0].ResortName != "Sol Dunas" {
		t.Fatalf("package should round trip, got %+v", packages)
	}
}
