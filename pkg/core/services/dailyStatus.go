package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/Totix777/hauswirtschaft/internal/config"
	"github.com/Totix777/hauswirtschaft/pkg/core/rooms"
	"github.com/Totix777/hauswirtschaft/pkg/db"
)

// RoomStatus represents one room's completion state on the report date
type RoomStatus struct {
	RoomNumber string
	Label      string
	Special    bool
	Completed  bool
	DueToday   bool
	LastEntry  string // time of the most recent record that day
	EntryCount int
}

// DailyStatusResult contains the per-room completion overview for display
type DailyStatusResult struct {
	Date           string
	Rooms          []RoomStatus
	CompletedCount int
}

// DailyStatusStore defines the database operations needed for the status report
type DailyStatusStore interface {
	GetCleaningTasksByDate(ctx context.Context, date string) ([]db.CleaningTask, error)
}

// DailyStatus builds the completion overview for all configured rooms on
// the given date. Completion is derived from existing records; the
// due-today marker evaluates the optional per-room schedule rules.
// Display only - nothing here enforces or schedules work.
func DailyStatus(
	ctx context.Context,
	store DailyStatusStore,
	cfg *config.Config,
	logger *zap.Logger,
	date string,
) (*DailyStatusResult, error) {
	logger.Debug("Building daily status", zap.String("date", date))

	tasks, err := store.GetCleaningTasksByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cleaning tasks: %w", err)
	}
	logger.Debug("Found cleaning tasks", zap.Int("count", len(tasks)))

	tasksByRoom := make(map[string][]db.CleaningTask)
	for _, task := range tasks {
		tasksByRoom[task.RoomNumber] = append(tasksByRoom[task.RoomNumber], task)
	}

	due, err := dueRooms(cfg, date)
	if err != nil {
		return nil, err
	}

	suffixes := cfg.SuffixTable()
	result := &DailyStatusResult{Date: date}

	for _, roomNumber := range cfg.Rooms {
		classification := rooms.Classify(roomNumber, suffixes)
		roomTasks := tasksByRoom[roomNumber]

		status := RoomStatus{
			RoomNumber: roomNumber,
			Label:      classification.Label,
			Special:    classification.Special,
			Completed:  len(roomTasks) > 0,
			DueToday:   due[roomNumber],
			EntryCount: len(roomTasks),
		}
		if len(roomTasks) > 0 {
			last := roomTasks[0]
			for _, task := range roomTasks[1:] {
				if task.Time > last.Time {
					last = task
				}
			}
			status.LastEntry = last.Time
			result.CompletedCount++
		}

		result.Rooms = append(result.Rooms, status)
	}

	logger.Info("Daily status built",
		zap.String("date", date),
		zap.Int("rooms", len(result.Rooms)),
		zap.Int("completed", result.CompletedCount))

	return result, nil
}

// dueRooms evaluates the configured cleaning schedule rules for the
// report date and returns the set of rooms with an occurrence that day.
// Rule syntax is already checked at config load.
func dueRooms(cfg *config.Config, date string) (map[string]bool, error) {
	due := make(map[string]bool)
	if len(cfg.RoomSchedules) == 0 {
		return due, nil
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid status date %q: %w", date, err)
	}
	dayEnd := day.Add(24*time.Hour - time.Second)

	for i, schedule := range cfg.RoomSchedules {
		rule, err := rrule.StrToRRule(schedule.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in roomSchedules[%d]: %w", i, err)
		}
		// Anchor the rule before the report date so BYDAY/BYMONTHDAY
		// rules expand over the day in question.
		rule.DTStart(day.AddDate(0, -1, 0))

		if len(rule.Between(day, dayEnd, true)) == 0 {
			continue
		}
		for _, roomNumber := range schedule.Rooms {
			due[roomNumber] = true
		}
	}

	return due, nil
}
