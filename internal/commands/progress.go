package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"ls"},
	Short:   "List recorded study sessions",
	Long:    "List the current ledger's study entries, most recent date first.",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		username := app.currentUser()
		entries, err := app.Ledger.Progress(username)
		if err != nil {
			fmt.Printf("Error fetching progress: %v\n", err)
			return
		}

		if len(entries) == 0 {
			fmt.Println("No study time recorded yet. Use 'pomostudy log \"Math\" 25' to record your first session.")
			return
		}

		fmt.Printf("%-12s %-10s %-30s %s\n", "DATE", "DAY", "SUBJECT", "MINUTES")
		fmt.Println(strings.Repeat("-", 62))

		total := 0
		for _, entry := range entries {
			subject := entry.Subject
			if len(subject) > 28 {
				subject = subject[:25] + "..."
			}
			fmt.Printf("%-12s %-10s %-30s %d\n", entry.Date, entry.DayOfWeek, subject, entry.StudyMinutes)
			total += entry.StudyMinutes
		}

		fmt.Println(strings.Repeat("-", 62))
		fmt.Printf("Total: %dm across %d entries\n", total, len(entries))
	}),
}
