package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rnakano/pomostudy/internal/auth"
	"github.com/rnakano/pomostudy/internal/session"
	"github.com/rnakano/pomostudy/internal/storage"
	"github.com/rnakano/pomostudy/internal/tui"
)

// credentials resolves a username/password pair from args and flags,
// falling back to the interactive form when the password is missing.
func credentials(cmd *cobra.Command, args []string, title string) (tui.Credentials, error) {
	username := ""
	if len(args) > 0 {
		username = args[0]
	}
	password, _ := cmd.Flags().GetString("password")

	if username != "" && password != "" {
		return tui.Credentials{Username: username, Password: password}, nil
	}
	return tui.RunCredentialsTUI(title, username)
}

var registerCmd = &cobra.Command{
	Use:   "register [username]",
	Short: "Create an account",
	Long: `Create an account so study time is recorded against your own ledger.
The password is stored as a bcrypt hash.`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		creds, err := credentials(cmd, args, "🔐 Register")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if creds.Cancelled {
			fmt.Println("❌ Registration cancelled.")
			return
		}

		if _, err := app.Gate.Register(creds.Username, creds.Password); err != nil {
			if errors.Is(err, storage.ErrDuplicateAccount) {
				fmt.Printf("Error: username %q is already taken\n", creds.Username)
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Account %q created. Use 'pomostudy login' to start a session.\n", creds.Username)
	}),
}

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in and switch to your ledger",
	Args:  cobra.MaximumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		creds, err := credentials(cmd, args, "🔓 Login")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if creds.Cancelled {
			fmt.Println("❌ Login cancelled.")
			return
		}

		if err := app.Gate.Authenticate(creds.Username, creds.Password); err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				fmt.Println("Error: invalid username or password")
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := session.Save(app.Base, creds.Username); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🔓 Logged in as %q. Study time is now recorded on your ledger.\n", creds.Username)
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and return to the anonymous ledger",
	Run: func(cmd *cobra.Command, args []string) {
		base, err := BaseDir()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := session.Clear(base); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Logged out.")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity",
	Run: func(cmd *cobra.Command, args []string) {
		base, err := BaseDir()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		username, err := session.Current(base)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if username == "" {
			fmt.Println("Not logged in. Study time is recorded on the anonymous ledger.")
			return
		}
		fmt.Println(username)
	},
}

func init() {
	registerCmd.Flags().String("password", "", "Password (prompts interactively when omitted)")
	loginCmd.Flags().String("password", "", "Password (prompts interactively when omitted)")
}
