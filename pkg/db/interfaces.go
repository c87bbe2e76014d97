package db

import "context"

// Database defines the interface for all cleaning task database operations.
// The postgres.DB store implements this interface.
type Database interface {
	InsertCleaningTask(task *CleaningTask) error
	GetCleaningTasksByDate(ctx context.Context, date string) ([]CleaningTask, error)
	GetCleaningTasksByRoom(ctx context.Context, roomNumber string) ([]CleaningTask, error)
}
