package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func tempStore(ctx context.Context, t *testing.T) (*Store, func()) {
	dir, err := os.MkdirTemp("", "tripstack-tests")
	if err != nil {
		t.Fatal(err)
	}
	st, err := Open(ctx, filepath.Join(dir, "test"))
	if err != nil {
		t.Fatal(err)
	}
	return st, func() {
		err := st.Close()
		if err != nil {
			t.Log("unable to close store", err)
		}
		err = os.RemoveAll(dir)
		if err != nil {
			t.Log("unable to cleanup temp dir", dir)
		}
	}
}

func strptr(v string) *string { return &v }
func i64ptr(v int64) *int64   { return &v }
func boolptr(v bool) *bool    { return &v }

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dir, err := os.MkdirTemp("", "tripstack-tests")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "test")
	st, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	err = st.Close()
	if err != nil {
		t.Fatal(err)
	}
	// reopening an existing store must not trip over the schema
	st, err = Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	err = st.Close()
	if err != nil {
		t.Fatal(err)
	}
}
