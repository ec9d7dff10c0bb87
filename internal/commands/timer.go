package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnakano/pomostudy/internal/parser"
	"github.com/rnakano/pomostudy/internal/timer"
	"github.com/rnakano/pomostudy/internal/tui"
)

var timerCmd = &cobra.Command{
	Use:   "timer [focus|short|long]",
	Short: "Start a Pomodoro countdown",
	Long: `Start a Pomodoro countdown. Presets: focus 25m, short break 5m,
long break 15m. The default is a focus timer.

Examples:
  pomostudy timer              # 25 minute focus timer
  pomostudy timer short        # 5 minute break
  pomostudy timer long         # 15 minute break
  pomostudy timer --for 10m    # focus timer with a custom length
  pomostudy timer --no-ui      # plain countdown without the TUI`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kindArg := ""
		if len(args) > 0 {
			kindArg = args[0]
		}
		kind, err := timer.ParseKind(kindArg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		duration := kind.Duration()
		if length, _ := cmd.Flags().GetString("for"); length != "" {
			d, err := parser.ParseTimerLength(length)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			duration = d
		}

		t := timer.NewWithDuration(kind, duration)

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			runPlainCountdown(t)
			return
		}
		if err := tui.RunCountdownTUI(t); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

// runPlainCountdown polls the timer once per second and rewrites a
// single status line, for terminals where the full TUI is unwanted.
func runPlainCountdown(t *timer.Timer) {
	fmt.Printf("⏳ Started %s timer for %s. Ctrl+C to abandon.\n", t.Kind(), formatMinutes(t.Duration()))

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		remaining := t.Remaining()
		fmt.Printf("\r   %02d:%02d remaining ", int(remaining.Minutes()), int(remaining.Seconds())%60)
		if t.Done() {
			break
		}
	}

	fmt.Printf("\n✅ %s complete!\n", t.Kind())
	if t.Kind() == timer.Focus {
		fmt.Println("   Log it with 'pomostudy log <subject> <minutes>'.")
	}
}

func formatMinutes(d time.Duration) string {
	if d >= time.Hour {
		return fmt.Sprintf("%.1fh", d.Hours())
	}
	return fmt.Sprintf("%.0fm", d.Minutes())
}

func init() {
	timerCmd.Flags().String("for", "", "Override the countdown length: 10, 10m, 1h")
	timerCmd.Flags().Bool("no-ui", false, "Run the countdown without the interactive UI")
}
