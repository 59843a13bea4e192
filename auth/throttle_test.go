package auth

import (
	"testing"
	"time"
)

func TestLoginThrottle(t *testing.T) {
	throttle := NewLoginThrottle(3, time.Minute)
	if throttle.Blocked("10.0.0.1") {
		t.Fatal("fresh client should not be blocked")
	}
	throttle.RecordFailure("10.0.0.1")
	throttle.RecordFailure("10.0.0.1")
	if throttle.Blocked("10.0.0.1") {
		t.Fatal("client below the limit should not be blocked")
	}
	throttle.RecordFailure("10.0.0.1")
	if !throttle.Blocked("10.0.0.1") {
		t.Fatal("client at the limit should be blocked")
	}
	if throttle.Blocked("10.0.0.2") {
		t.Fatal("counters should be per client address")
	}
	throttle.Reset("10.0.0.1")
	if throttle.Blocked("10.0.0.1") {
		t.Fatal("reset should clear the counter")
	}
}
