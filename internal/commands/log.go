package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rnakano/pomostudy/internal/parser"
	"github.com/rnakano/pomostudy/internal/tui"
)

var logCmd = &cobra.Command{
	Use:     "log [subject] [minutes]",
	Aliases: []string{"record"},
	Short:   "Record study time for a subject",
	Long: `Record study time against the current ledger. A second log for the
same subject on the same day is folded into one entry unless --append
is given.

Examples:
  pomostudy log Math 25        # 25 minutes of Math today
  pomostudy log English 1h30m  # durations work too
  pomostudy log -i             # interactive form
  pomostudy log Math 25 --append  # keep separate rows per session`,
	Args: cobra.MaximumNArgs(2),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		if appendMode, _ := cmd.Flags().GetBool("append"); appendMode {
			app.Ledger.Merge = false
		}
		username := app.currentUser()

		interactive, _ := cmd.Flags().GetBool("interactive")
		if interactive || len(args) < 2 {
			prefilled := make(map[string]string)
			if len(args) > 0 {
				prefilled["subject"] = args[0]
			}
			if len(args) > 1 {
				prefilled["minutes"] = args[1]
			}
			if err := tui.RunLogTUI(app.Ledger, username, prefilled); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		subject := strings.TrimSpace(args[0])
		if subject == "" {
			fmt.Println("Error: subject must not be empty")
			return
		}
		minutes, err := parser.ParseMinutes(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		entry, err := app.Ledger.Record(username, subject, minutes)
		if err != nil {
			fmt.Printf("Error recording study time: %v\n", err)
			return
		}

		if app.Ledger.Merge && entry.StudyMinutes != minutes {
			fmt.Printf("📚 Added %dm to %s on %s (%s), now %dm total\n",
				minutes, entry.Subject, entry.Date, entry.DayOfWeek, entry.StudyMinutes)
		} else {
			fmt.Printf("📚 Recorded %dm of %s on %s (%s)\n",
				entry.StudyMinutes, entry.Subject, entry.Date, entry.DayOfWeek)
		}
	}),
}

func init() {
	logCmd.Flags().BoolP("interactive", "i", false, "Interactive form with TUI")
	logCmd.Flags().Bool("append", false, "Always add a new row instead of merging same-day entries")
}
