package auth_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rnakano/pomostudy/internal/auth"
	"github.com/rnakano/pomostudy/internal/storage"
)

func newTestGate(t *testing.T) *auth.Gate {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return auth.New(store)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	gate := newTestGate(t)

	account, err := gate.Register("alice", "pw1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if account.Username != "alice" {
		t.Errorf("Username = %q, want %q", account.Username, "alice")
	}
	if account.PasswordHash == "pw1" || account.PasswordHash == "" {
		t.Error("password was not hashed")
	}

	if err := gate.Authenticate("alice", "pw1"); err != nil {
		t.Errorf("Authenticate with correct password: %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	gate := newTestGate(t)

	if _, err := gate.Register("alice", "pw1"); err != nil {
		t.Fatal(err)
	}
	_, err := gate.Register("alice", "pw2")
	if !errors.Is(err, storage.ErrDuplicateAccount) {
		t.Errorf("duplicate Register error = %v, want ErrDuplicateAccount", err)
	}

	// The original password still works.
	if err := gate.Authenticate("alice", "pw1"); err != nil {
		t.Errorf("Authenticate after duplicate register: %v", err)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	gate := newTestGate(t)

	if _, err := gate.Register("alice", "pw1"); err != nil {
		t.Fatal(err)
	}

	// Wrong password and unknown username fail with the same error.
	if err := gate.Authenticate("alice", "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if err := gate.Authenticate("nobody", "pw1"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterRejectsEmptyCredentials(t *testing.T) {
	gate := newTestGate(t)

	if _, err := gate.Register("", "pw"); err == nil {
		t.Error("Register with empty username succeeded")
	}
	if _, err := gate.Register("alice", ""); err == nil {
		t.Error("Register with empty password succeeded")
	}
	if _, err := gate.Register("   ", "pw"); err == nil {
		t.Error("Register with blank username succeeded")
	}
}
