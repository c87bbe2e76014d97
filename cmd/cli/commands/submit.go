package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Totix777/hauswirtschaft/pkg/core/rooms"
	"github.com/Totix777/hauswirtschaft/pkg/core/services"
	"github.com/Totix777/hauswirtschaft/pkg/core/session"
)

// SubmitCmd creates the submit command
func SubmitCmd(app *AppContext) *cobra.Command {
	var (
		visual      bool
		maintenance bool
		basic       bool
		bed         bool
		windows     bool
		notes       string
		staff       string
		date        string
		photoPaths  []string
	)

	cmd := &cobra.Command{
		Use:   "submit <room_number>",
		Short: "Record a completed cleaning for a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomNumber := args[0]
			classification := rooms.Classify(roomNumber, app.Cfg.SuffixTable())

			if date != "" {
				if _, err := time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("date must be in YYYY-MM-DD form: %w", err)
				}
			}

			// Seed the completion indicator from today's existing records
			today := time.Now().Format("2006-01-02")
			existing, err := app.Database.GetCleaningTasksByDate(app.Ctx, today)
			if err != nil {
				return fmt.Errorf("failed to check existing records: %w", err)
			}
			alreadyCleaned := false
			for _, task := range existing {
				if task.RoomNumber == roomNumber {
					alreadyCleaned = true
					break
				}
			}

			sess := session.New(roomNumber, staff, classification, alreadyCleaned)
			if date != "" {
				sess.SetDate(date)
			}
			sess.Toggle(rooms.VisualCleaning, visual)
			sess.Toggle(rooms.MaintenanceCleaning, maintenance)
			if !classification.Special {
				sess.Toggle(rooms.BasicRoomCleaning, basic)
				sess.Toggle(rooms.BedCleaning, bed)
				sess.Toggle(rooms.WindowsCurtainsCleaning, windows)
			}
			sess.SetNotes(notes)

			// Photos attach in argument order
			for _, path := range photoPaths {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read photo %s: %w", path, err)
				}
				sess.AttachPhoto(session.DataURI(data))
			}

			record, err := services.SubmitTask(app.Ctx, app.Database, app.GmailClient, app.Cfg, app.Logger, sess)
			if errors.Is(err, services.ErrNoCleaningSelected) {
				return fmt.Errorf("nothing recorded: %w", err)
			}
			if err != nil {
				return err
			}

			verb := "recorded"
			if alreadyCleaned {
				verb = "recorded again (re-clean)"
			}
			fmt.Printf("\n✓ Cleaning %s for %s\n\n", verb, classification.Label)
			fmt.Printf("Record ID: %s\n", record.ID)
			fmt.Printf("Date:      %s %s\n", record.Date, record.Time)
			for _, item := range classification.Checklist() {
				if record.Flag(item) {
					fmt.Printf("  ✓ %s\n", item.Label())
				}
			}
			if record.Notes != "" {
				fmt.Printf("Notes:     %s\n", record.Notes)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&visual, "visual", false, "Visual cleaning done")
	cmd.Flags().BoolVar(&maintenance, "maintenance", false, "Maintenance cleaning done")
	cmd.Flags().BoolVar(&basic, "basic", false, "Basic room cleaning done (standard rooms only)")
	cmd.Flags().BoolVar(&bed, "bed", false, "Bed cleaning done (standard rooms only)")
	cmd.Flags().BoolVar(&windows, "windows", false, "Windows and curtains done (standard rooms only)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes (triggers a notification)")
	cmd.Flags().StringVar(&staff, "staff", "", "Staff member name")
	cmd.Flags().StringVar(&date, "date", "", "Override the record date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringArrayVar(&photoPaths, "photo", nil, "Photo evidence file, repeatable (triggers a notification)")

	return cmd
}
