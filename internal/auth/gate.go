package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rnakano/pomostudy/internal/models"
)

// ErrInvalidCredentials is returned for both an unknown username and a
// wrong password, so a failed login does not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AccountStore is the persistence the gate needs. *storage.Store satisfies it.
type AccountStore interface {
	InsertAccount(username, passwordHash string) (*models.Account, error)
	FindAccount(username string) (*models.Account, error)
}

// Gate registers accounts and checks credentials.
type Gate struct {
	store AccountStore
}

// New returns a Gate over the given account store.
func New(store AccountStore) *Gate {
	return &Gate{store: store}
}

// Register creates an account with a bcrypt hash of the password.
// Registering a taken username fails with storage.ErrDuplicateAccount.
func (g *Gate) Register(username, password string) (*models.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return g.store.InsertAccount(username, string(hash))
}

// Authenticate reports whether the credentials match a registered
// account. It returns ErrInvalidCredentials on any mismatch.
func (g *Gate) Authenticate(username, password string) error {
	account, err := g.store.FindAccount(strings.TrimSpace(username))
	if err != nil {
		return err
	}
	if account == nil {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}
