package auth

import (
	"encoding/hex"
	"testing"
)

func TestHashPassword(t *testing.T) {
	salt, err := NewSaltHex()
	if err != nil {
		t.Fatal(err)
	}
	if len(salt) != saltLen*2 {
		t.Fatalf("salt should be %v hex chars, got %v", saltLen*2, len(salt))
	}
	first, err := HashPassword("correct horse", salt, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != digestLen*2 {
		t.Fatalf("digest should be %v hex chars, got %v", digestLen*2, len(first))
	}
	if _, err := hex.DecodeString(first); err != nil {
		t.Fatal("digest should be valid hex", err)
	}
	again, err := HashPassword("correct horse", salt, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Fatal("same inputs should produce the same digest")
	}
	other, err := HashPassword("correct norse", salt, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if other == first {
		t.Fatal("different passwords should produce different digests")
	}
	otherSalt, err := NewSaltHex()
	if err != nil {
		t.Fatal(err)
	}
	resalted, err := HashPassword("correct horse", otherSalt, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if resalted == first {
		t.Fatal("different salts should produce different digests")
	}
	stretched, err := HashPassword("correct horse", salt, 2000)
	if err != nil {
		t.Fatal(err)
	}
	if stretched == first {
		t.Fatal("different iteration counts should produce different digests")
	}
	if _, err := HashPassword("pwd", "not-hex", 1000); err == nil {
		t.Fatal("invalid salt should fail")
	}
}

func TestClampIterations(t *testing.T) {
	type testCase struct {
		in   int
		want int
	}
	for _, tc := range []testCase{
		{0, DefaultIterations},
		{-1, DefaultIterations},
		{1, 1},
		{MaxIterations, MaxIterations},
		{MaxIterations + 1, MaxIterations},
		{1 << 30, MaxIterations},
	} {
		if got := ClampIterations(tc.in); got != tc.want {
			t.Errorf("ClampIterations(%v) should return %v but got %v", tc.in, tc.want, got)
		}
	}
}

func TestClampIsAppliedByHash(t *testing.T) {
	salt, err := NewSaltHex()
	if err != nil {
		t.Fatal(err)
	}
	capped, err := HashPassword("pwd", salt, MaxIterations)
	if err != nil {
		t.Fatal(err)
	}
	over, err := HashPassword("pwd", salt, MaxIterations*10)
	if err != nil {
		t.Fatal(err)
	}
	if capped != over {
		t.Fatal("iteration counts above the cap should hash like the cap itself")
	}
}
