package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// fileName is the session file inside the data directory.
const fileName = "session.json"

type state struct {
	Username string `json:"username"`
}

func filePath(base string) string {
	return filepath.Join(base, fileName)
}

func (s state) write(base string) error {
	if err := os.MkdirAll(base, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(filePath(base), data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Save records username as the logged-in identity.
func Save(base, username string) error {
	return state{Username: username}.write(base)
}

// Current returns the logged-in username, or "" when nobody is logged
// in. A missing session file is not an error.
func Current(base string) (string, error) {
	data, err := os.ReadFile(filePath(base))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session file: %w", err)
	}

	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("corrupt session file %s: %w", filePath(base), err)
	}
	return s.Username, nil
}

// Clear removes the session file, returning to anonymous mode. Clearing
// an already-absent session is a no-op.
func Clear(base string) error {
	err := os.Remove(filePath(base))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
