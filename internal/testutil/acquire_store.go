package testutil

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tripstack/tripstack/store"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
	}
)

func AcquireStore(ctx context.Context, t TestLog, name string) (*store.Store, func()) {
	dir, err := os.MkdirTemp("", "tripstack-tests")
	if err != nil {
		t.Fatal(err)
	}
	st, err := store.Open(ctx, filepath.Join(dir, name))
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
