package auth

import "testing"

func TestSafeEqual(t *testing.T) {
	type testCase struct {
		a, b  string
		equal bool
	}
	for _, tc := range []testCase{
		{"", "", true},
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"abc", "ab", false},
		{"ab", "abc", false},
		{"", "a", false},
		{"a", "", false},
		{"abc\x00", "abc", false},
		{"héllo", "héllo", true},
		{"héllo", "hello", false},
	} {
		if got := SafeEqual(tc.a, tc.b); got != tc.equal {
			t.Errorf("SafeEqual(%q, %q) should return %v but got %v", tc.a, tc.b, tc.equal, got)
		}
	}
}
