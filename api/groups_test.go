package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/tripstack/tripstack/store"
)

func TestGroupRoutesAreAdminOnly(t *testing.T) {
	ctx := context.Background()
	handler, _, cleanup := testHandler(ctx, t)
	defer cleanup()
	token := signup(t, handler, "ana@example.com", "hunter2hunter2")
	apitest.New().
		Handler(handler).
		Get("/api/groups").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
	apitest.New().
		Handler(handler).
		Post("/api/groups").
		Body(`{"name":"rogue"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestCreateGroupAndMembers(t *testing.T) {
	ctx := context.Background()
	handler, st, cleanup := testHandler(ctx, t)
	defer cleanup()
	signup(t, handler, "ana@example.com", "hunter2hunter2")

	var groupID string
	apitest.New().
		Handler(handler).
		Post("/api/groups").
		Header("Authorization", asAdmin()).
		Body(`{"name":"Lisbon 2026","capacity":12}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.ok", true)).
		End()
	groups, err := st.Groups(ctx)
	if err != nil {
		t.Fatal(err)
	}
	groupID = groups[0].ID

	// members can be added by email instead of id
	apitest.New().
		Handler(handler).
		Post("/api/groups/" + groupID + "/members").
		Header("Authorization", asAdmin()).
		Body(`{"email":"ana@example.com"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.group_id", groupID)).
		End()
	apitest.New().
		Handler(handler).
		Post("/api/groups/" + groupID + "/members").
		Header("Authorization", asAdmin()).
		Body(`{"email":"nobody@example.com"}`).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal("$.error", "user not found")).
		End()
	apitest.New().
		Handler(handler).
		Post("/api/groups/" + groupID + "/members").
		Header("Authorization", asAdmin()).
		Body(`{}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.error", "provide user_id or email")).
		End()
	apitest.New().
		Handler(handler).
		Post("/api/groups/no-such-group/members").
		Header("Authorization", asAdmin()).
		Body(`{"email":"ana@example.com"}`).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal("$.error", "group not found")).
		End()

	apitest.New().
		Handler(handler).
		Get("/api/groups/" + groupID + "/members").
		Header("Authorization", asAdmin()).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 1)).
		Assert(jsonpath.Equal("$[0].email", "ana@example.com")).
		End()
}

func TestMyGroups(t *testing.T) {
	ctx := context.Background()
	handler, st, cleanup := testHandler(ctx, t)
	defer cleanup()
	token := signup(t, handler, "ana@example.com", "hunter2hunter2")
	gid, err := st.CreateGroup(ctx, store.Group{Name: "Lisbon 2026"})
	if err != nil {
		t.Fatal(err)
	}
	uid, err := st.UserIDByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatal(err)
	}
	err = st.AddMember(ctx, gid, uid)
	if err != nil {
		t.Fatal(err)
	}
	apitest.New().
		Handler(handler).
		Get("/api/my/groups").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
	apitest.New().
		Handler(handler).
		Get("/api/my/groups").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 1)).
		Assert(jsonpath.Equal("$[0].name", "Lisbon 2026")).
		End()
}

func TestGroupVisibilityRoute(t *testing.T) {
	ctx := context.Background()
	handler, st, cleanup := testHandler(ctx, t)
	defer cleanup()
	gid, err := st.CreateGroup(ctx, store.Group{Name: "Lisbon 2026"})
	if err != nil {
		t.Fatal(err)
	}
	tid, err := st.CreateTrip(ctx, store.Trip{GroupID: gid, Title: "leg"})
	if err != nil {
		t.Fatal(err)
	}
	apitest.New().
		Handler(handler).
		Put("/api/groups/" + gid + "/visibility").
		Header("Authorization", asAdmin()).
		Body(`{}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
	apitest.New().
		Handler(handler).
		Put("/api/groups/" + gid + "/visibility").
		Header("Authorization", asAdmin()).
		Body(`{"is_public":true}`).
		Expect(t).
		Status(http.StatusOK).
		End()
	// the cascade makes the trip readable anonymously
	apitest.New().
		Handler(handler).
		Get("/api/trips/" + tid).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.is_public", true)).
		End()
}

func TestActiveTripRoute(t *testing.T) {
	ctx := context.Background()
	handler, st, cleanup := testHandler(ctx, t)
	defer cleanup()
	gid, err := st.CreateGroup(ctx, store.Group{Name: "Lisbon 2026"})
	if err != nil {
		t.Fatal(err)
	}
	token := signup(t, handler, "ana@example.com", "hunter2hunter2")
	uid, err := st.UserIDByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatal(err)
	}
	err = st.AddMember(ctx, gid, uid)
	if err != nil {
		t.Fatal(err)
	}
	// no trips yet, the route answers null
	apitest.New().
		Handler(handler).
		Get("/api/groups/" + gid + "/active-trip").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Body(`null`).
		End()
	_, err = st.CreateTrip(ctx, store.Trip{GroupID: gid, Title: "only one"})
	if err != nil {
		t.Fatal(err)
	}
	apitest.New().
		Handler(handler).
		Get("/api/groups/" + gid + "/active-trip").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.title", "only one")).
		End()
	outsider := signup(t, handler, "outsider@example.com", "hunter2hunter2")
	apitest.New().
		Handler(handler).
		Get("/api/groups/" + gid + "/active-trip").
		Header("Authorization", "Bearer "+outsider).
		Expect(t).
		Status(http.StatusForbidden).
		End()
}
