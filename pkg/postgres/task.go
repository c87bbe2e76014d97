package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Totix777/hauswirtschaft/pkg/db"
)

const taskColumns = `id, task_date, task_time, room_number,
	visual_cleaning, maintenance_cleaning, basic_room_cleaning,
	bed_cleaning, windows_curtains_cleaning, notes, staff_name`

// InsertCleaningTask inserts a committed cleaning task record
func (d *DB) InsertCleaningTask(task *db.CleaningTask) error {
	_, err := d.pool.Exec(context.Background(), `
		INSERT INTO cleaning_task (id, task_date, task_time, room_number,
			visual_cleaning, maintenance_cleaning, basic_room_cleaning,
			bed_cleaning, windows_curtains_cleaning, notes, staff_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, task.ID, task.Date, task.Time, task.RoomNumber,
		task.VisualCleaning, task.MaintenanceCleaning, task.BasicRoomCleaning,
		task.BedCleaning, task.WindowsCurtainsCleaning, task.Notes, task.StaffName)
	if err != nil {
		return fmt.Errorf("failed to insert cleaning task: %w", err)
	}
	return nil
}

// GetCleaningTasksByDate retrieves all cleaning task records for one day
func (d *DB) GetCleaningTasksByDate(ctx context.Context, date string) ([]db.CleaningTask, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM cleaning_task
		WHERE task_date = $1
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query cleaning tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// GetCleaningTasksByRoom retrieves all cleaning task records for one
// room, newest first
func (d *DB) GetCleaningTasksByRoom(ctx context.Context, roomNumber string) ([]db.CleaningTask, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM cleaning_task
		WHERE room_number = $1
		ORDER BY task_date DESC, task_time DESC
	`, roomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query cleaning tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanTasks(rows pgxRows) ([]db.CleaningTask, error) {
	var tasks []db.CleaningTask
	for rows.Next() {
		var t db.CleaningTask
		var taskDate time.Time
		if err := rows.Scan(&t.ID, &taskDate, &t.Time, &t.RoomNumber,
			&t.VisualCleaning, &t.MaintenanceCleaning, &t.BasicRoomCleaning,
			&t.BedCleaning, &t.WindowsCurtainsCleaning, &t.Notes, &t.StaffName); err != nil {
			return nil, fmt.Errorf("failed to scan cleaning task: %w", err)
		}
		t.Date = taskDate.Format("2006-01-02")
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cleaning tasks: %w", err)
	}

	return tasks, nil
}
