package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/tripstack/tripstack/store"
)

func TestTripDetailRoutes(t *testing.T) {
	ctx := context.Background()
	handler, st, cleanup := testHandler(ctx, t)
	defer cleanup()
	gid, err := st.CreateGroup(ctx, store.Group{Name: "Lisbon 2026"})
	if err != nil {
		t.Fatal(err)
	}
	tid, err := st.CreateTrip(ctx, store.Trip{GroupID: gid, Title: "leg", IsPublic: true})
	if err != nil {
		t.Fatal(err)
	}

	// writes stay admin-only even on public trips
	apitest.New().
		Handler(handler).
		Post("/api/trips/" + tid + "/flights").
		Body(`{"flight_no":"TP101"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
	apitest.New().
		Handler(handler).
		Post("/api/trips/" + tid + "/flights").
		Header("Authorization", asAdmin()).
		Body(`{"carrier":"TAP","flight_no":"TP101","depart_airport":"LIS"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Present("$.id")).
		End()
	apitest.New().
		Handler(handler).
		Post("/api/trips/" + tid + "/hotel-rooms").
		Header("Authorization", asAdmin()).
		Body(`{"hotel_name":"Hotel Mundial","occupants":2}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	// reads follow the trip's own access tier
	apitest.New().
		Handler(handler).
		Get("/api/trips/" + tid + "/flights").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 1)).
		Assert(jsonpath.Equal("$[0].flight_no", "TP101")).
		End()

	segments, err := st.FlightSegments(ctx, tid)
	if err != nil {
		t.Fatal(err)
	}
	apitest.New().
		Handler(handler).
		Delete("/api/flight-segments/" + segments[0].ID).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
	apitest.New().
		Handler(handler).
		Delete("/api/flight-segments/" + segments[0].ID).
		Header("Authorization", asAdmin()).
		Expect(t).
		Status(http.StatusOK).
		End()
	apitest.New().
		Handler(handler).
		Get("/api/trips/" + tid + "/flights").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 0)).
		End()
}

func TestDetailReadsOnPrivateTrip(t *testing.T) {
	ctx := context.Background()
	handler, st, cleanup := testHandler(ctx, t)
	defer cleanup()
	gid, err := st.CreateGroup(ctx, store.Group{Name: "Lisbon 2026"})
	if err != nil {
		t.Fatal(err)
	}
	tid, err := st.CreateTrip(ctx, store.Trip{GroupID: gid, Title: "private leg"})
	if err != nil {
		t.Fatal(err)
	}
	apitest.New().
		Handler(handler).
		Get("/api/trips/" + tid + "/cruise-cabins").
		Expect(t).
		Status(http.StatusForbidden).
		End()
	apitest.New().
		Handler(handler).
		Get("/api/trips/" + tid + "/cruise-cabins").
		Header("Authorization", asAdmin()).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 0)).
		End()
}
