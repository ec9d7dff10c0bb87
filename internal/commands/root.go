package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rnakano/pomostudy/internal/auth"
	"github.com/rnakano/pomostudy/internal/ledger"
	"github.com/rnakano/pomostudy/internal/session"
	"github.com/rnakano/pomostudy/internal/storage"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pomostudy",
	Short: "A Pomodoro timer and study ledger",
	Long: `pomostudy pairs a Pomodoro countdown with a per-subject study ledger.
Run focus and break timers, log study minutes, and review your daily
totals, all from the terminal. Register and log in to keep a personal
ledger, or use it anonymously.`,
}

// App bundles the opened store with the services built on it. One App
// lives for the duration of a single command.
type App struct {
	Base   string
	Store  *storage.Store
	Ledger *ledger.Service
	Gate   *auth.Gate
}

// BaseDir returns the data directory (~/.pomostudy), honouring the
// POMOSTUDY_HOME override.
func BaseDir() (string, error) {
	if dir := os.Getenv("POMOSTUDY_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomostudy"), nil
}

// openApp opens the store and wires the services on top of it.
func openApp() (*App, error) {
	base, err := BaseDir()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(storage.DefaultPath(base))
	if err != nil {
		return nil, err
	}
	return &App{
		Base:   base,
		Store:  store,
		Ledger: ledger.New(store),
		Gate:   auth.New(store),
	}, nil
}

// withApp wraps a command function, opening the app first and closing
// the store afterwards.
func withApp(fn func(*App, *cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer app.Store.Close()
		fn(app, cmd, args)
	}
}

// currentUser resolves the identity from the session file; "" means
// the anonymous single-user ledger.
func (a *App) currentUser() string {
	username, err := session.Current(a.Base)
	if err != nil {
		return ""
	}
	return username
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pomostudy %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(versionCmd)
}
