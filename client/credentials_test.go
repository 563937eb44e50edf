package client

import (
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	return NewFileStore(path), path
}

func TestFileStore_RoundTrip(t *testing.T) {
	store, path := tempStore(t)

	user := &User{Username: "aisha_bello", Role: "accountant", StationCodes: []string{"FR-KAN"}}
	if err := store.Save("token123", user); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// A fresh store over the same file must see the same pair.
	reopened := NewFileStore(path)
	if got := reopened.Token(); got != "token123" {
		t.Fatalf("expected token123, got %q", got)
	}
	loaded := reopened.User()
	if loaded == nil || loaded.Username != "aisha_bello" || loaded.Role != "accountant" {
		t.Fatalf("unexpected user: %+v", loaded)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store, _ := tempStore(t)

	if store.Token() != "" {
		t.Fatal("expected empty token")
	}
	if store.User() != nil {
		t.Fatal("expected no user")
	}
}

func TestFileStore_CorruptUserIsAbsent(t *testing.T) {
	store, path := tempStore(t)
	if err := os.WriteFile(path, []byte(`{"token":"token123","user":"not-an-object"}`), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if got := store.Token(); got != "token123" {
		t.Fatalf("expected token123, got %q", got)
	}
	if store.User() != nil {
		t.Fatal("corrupt user record must read as absent")
	}
}

func TestFileStore_CorruptFileIsEmpty(t *testing.T) {
	store, path := tempStore(t)
	if err := os.WriteFile(path, []byte("{{{{"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if store.Token() != "" {
		t.Fatal("expected empty token")
	}
	if store.User() != nil {
		t.Fatal("expected no user")
	}
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store, _ := tempStore(t)

	if err := store.Save("token123", &User{Username: "aisha_bello"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
	if store.Token() != "" || store.User() != nil {
		t.Fatal("expected empty store after clear")
	}
}
