package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Totix777/hauswirtschaft/pkg/core/rooms"
)

// HistoryCmd creates the history command
func HistoryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history <room_number>",
		Short: "List past cleaning records for a room, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomNumber := args[0]

			tasks, err := app.Database.GetCleaningTasksByRoom(app.Ctx, roomNumber)
			if err != nil {
				return fmt.Errorf("failed to fetch history: %w", err)
			}

			app.Logger.Info("History fetched", zap.String("room", roomNumber), zap.Int("count", len(tasks)))

			classification := rooms.Classify(roomNumber, app.Cfg.SuffixTable())
			fmt.Printf("\n%d records for %s:\n\n", len(tasks), classification.Label)
			for _, task := range tasks {
				done := ""
				for _, item := range classification.Checklist() {
					if task.Flag(item) {
						if done != "" {
							done += ", "
						}
						done += item.Label()
					}
				}
				fmt.Printf("- %s %s  %s", task.Date, task.Time, done)
				if task.StaffName != "" {
					fmt.Printf("  (%s)", task.StaffName)
				}
				if task.Notes != "" {
					fmt.Printf("\n    Notes: %s", task.Notes)
				}
				fmt.Println()
			}
			fmt.Println()

			return nil
		},
	}
}
