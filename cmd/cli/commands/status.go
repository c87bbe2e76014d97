package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Totix777/hauswirtschaft/pkg/core/services"
)

// StatusCmd creates the status command
func StatusCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status [date]",
		Short: "Show the per-room completion overview (defaults to today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().Format("2006-01-02")
			if len(args) > 0 {
				date = args[0]
			}

			result, err := services.DailyStatus(app.Ctx, app.Database, app.Cfg, app.Logger, date)
			if err != nil {
				return err
			}

			fmt.Printf("\nCleaning status for %s (%d/%d rooms done):\n\n", result.Date, result.CompletedCount, len(result.Rooms))
			for _, room := range result.Rooms {
				mark := "✗"
				detail := ""
				if room.Completed {
					mark = "✓"
					detail = fmt.Sprintf(" - last entry %s", room.LastEntry)
					if room.EntryCount > 1 {
						detail += fmt.Sprintf(" (%d entries)", room.EntryCount)
					}
				}
				due := ""
				if room.DueToday && !room.Completed {
					due = " [due today]"
				}
				fmt.Printf("  %s %-15s %s%s%s\n", mark, room.Label, room.RoomNumber, detail, due)
			}
			fmt.Println()

			return nil
		},
	}
}
