package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Totix777/hauswirtschaft/pkg/core/rooms"
)

// RoomsCmd creates the rooms command
func RoomsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List configured rooms with their checklist variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suffixes := app.Cfg.SuffixTable()

			fmt.Printf("\nFound %d rooms:\n\n", len(app.Cfg.Rooms))
			for _, roomNumber := range app.Cfg.Rooms {
				classification := rooms.Classify(roomNumber, suffixes)

				variant := "standard"
				if classification.Special {
					variant = "special"
				}

				items := make([]string, 0, 5)
				for _, item := range classification.Checklist() {
					items = append(items, item.Label())
				}

				fmt.Printf("- %-8s %-15s [%s] %s\n", roomNumber, classification.Label, variant, strings.Join(items, ", "))
			}
			fmt.Println()

			return nil
		},
	}
}
