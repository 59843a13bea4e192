package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/tripstack/tripstack/auth"
	"github.com/tripstack/tripstack/internal/testutil"
	"github.com/tripstack/tripstack/store"
)

const testAdminToken = "test-admin-secret"

func testHandler(ctx context.Context, t *testing.T) (http.Handler, *store.Store, func()) {
	st, cleanup := testutil.AcquireStore(ctx, t, "test")
	svc := auth.NewService(st, auth.Options{Iterations: 1000})
	realm := NewRealm(testAdminToken, svc, st)
	throttle := auth.NewLoginThrottle(3, time.Minute)
	return New(st, svc, realm, throttle).AsHandler(), st, cleanup
}

func asAdmin() string { return "Bearer " + testAdminToken }

func TestHealth(t *testing.T) {
	ctx := context.Background()
	handler, _, cleanup := testHandler(ctx, t)
	defer cleanup()
	apitest.New().
		Handler(handler).
		Get("/health").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.ok", true)).
		End()
}

func TestCORSAndPreflight(t *testing.T) {
	ctx := context.Background()
	handler, _, cleanup := testHandler(ctx, t)
	defer cleanup()
	apitest.New().
		Handler(handler).
		Get("/health").
		Expect(t).
		Status(http.StatusOK).
		Header("Access-Control-Allow-Origin", "*").
		Header("Cache-Control", "no-store").
		End()
	apitest.New().
		Handler(handler).
		Method(http.MethodOptions).
		URL("/api/auth/login").
		Expect(t).
		Status(http.StatusNoContent).
		End()
}

func TestNotFoundIsJSON(t *testing.T) {
	ctx := context.Background()
	handler, _, cleanup := testHandler(ctx, t)
	defer cleanup()
	apitest.New().
		Handler(handler).
		Get("/api/no-such-route").
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal("$.error", "not found")).
		End()
}
