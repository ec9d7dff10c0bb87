package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show total study minutes per day",
	Long:  "Sum study minutes across all subjects for each recorded date, most recent first.",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		username := app.currentUser()
		totals, err := app.Ledger.DailyTotals(username)
		if err != nil {
			fmt.Printf("Error building report: %v\n", err)
			return
		}

		if len(totals) == 0 {
			fmt.Println("Nothing to report yet. Use 'pomostudy log' to record study time first.")
			return
		}

		fmt.Printf("%-12s %s\n", "DATE", "TOTAL MINUTES")
		fmt.Println(strings.Repeat("-", 26))
		for _, t := range totals {
			fmt.Printf("%-12s %d\n", t.Date, t.TotalMinutes)
		}
	}),
}
