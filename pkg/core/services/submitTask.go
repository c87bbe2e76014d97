package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Totix777/hauswirtschaft/internal/config"
	"github.com/Totix777/hauswirtschaft/pkg/core/rooms"
	"github.com/Totix777/hauswirtschaft/pkg/core/session"
	"github.com/Totix777/hauswirtschaft/pkg/db"
)

// ErrNoCleaningSelected is the single user-facing rejection reason for
// drafts with no checklist item selected
var ErrNoCleaningSelected = errors.New("select at least one cleaning type")

// notifyTimeout bounds the notification send so a slow provider cannot
// stall the submission
const notifyTimeout = 10 * time.Second

// TaskStore defines the database operations needed to submit a task
type TaskStore interface {
	InsertCleaningTask(task *db.CleaningTask) error
}

// Notifier defines the operations needed to deliver a task notification
type Notifier interface {
	SendTaskNotification(ctx context.Context, recipient, roomNumber, notes, images, date string) error
}

// Validate checks the minimum-selection rule: at least one checklist flag
// must be set, iterating only the subset applicable to the room variant.
// Pure and idempotent - safe to call on every checkbox toggle.
func Validate(task *db.CleaningTask, classification rooms.Classification) error {
	for _, item := range classification.Checklist() {
		if task.Flag(item) {
			return nil
		}
	}
	return ErrNoCleaningSelected
}

// ShouldNotify reports whether a submission carries notes or photo
// evidence. Pure boolean submissions never trigger a notification.
func ShouldNotify(notes string, photos []string) bool {
	return strings.TrimSpace(notes) != "" || len(photos) > 0
}

// SubmitTask runs the submission workflow for one form session:
// validate the draft, stamp the submission time, dispatch the optional
// notification, hand the record to the store, and reset the session.
//
// The notification is awaited (bounded by notifyTimeout) before the
// record is saved so ordering stays deterministic, but its result is
// discarded after logging - the commit never depends on delivery.
// A store error aborts the commit: the session keeps its draft and the
// completion flag does not flip.
func SubmitTask(
	ctx context.Context,
	store TaskStore,
	notifier Notifier,
	cfg *config.Config,
	logger *zap.Logger,
	sess *session.Session,
) (*db.CleaningTask, error) {
	draft := sess.Draft()
	classification := sess.Classification()

	logger.Info("Submitting cleaning task",
		zap.String("room", draft.RoomNumber),
		zap.String("label", classification.Label),
		zap.Bool("special", classification.Special))

	if err := Validate(&draft, classification); err != nil {
		sess.Reject(err)
		logger.Debug("Submission rejected", zap.Error(err))
		return nil, err
	}

	record := draft
	record.ID = uuid.New().String()
	record.Time = time.Now().Format("15:04")
	photos := sess.Photos()

	if ShouldNotify(record.Notes, photos) {
		if err := dispatchNotification(ctx, notifier, cfg, &record, photos); err != nil {
			logger.Warn("Failed to send task notification",
				zap.String("room", record.RoomNumber),
				zap.Error(err))
		} else {
			logger.Debug("Task notification sent",
				zap.String("room", record.RoomNumber),
				zap.Int("photos", len(photos)))
		}
	}

	if err := store.InsertCleaningTask(&record); err != nil {
		return nil, fmt.Errorf("failed to save cleaning task: %w", err)
	}

	sess.Commit(record.Time)
	logger.Info("Cleaning task recorded",
		zap.String("id", record.ID),
		zap.String("room", record.RoomNumber),
		zap.String("date", record.Date),
		zap.String("time", record.Time))

	return &record, nil
}

// dispatchNotification performs the single best-effort delivery attempt.
// Photos are joined positionally, so their selection order carries
// through to the payload.
func dispatchNotification(
	ctx context.Context,
	notifier Notifier,
	cfg *config.Config,
	record *db.CleaningTask,
	photos []string,
) error {
	notifyCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	images := strings.Join(photos, "\n")
	sentAt := time.Now().Format("2006-01-02 15:04:05")

	return notifier.SendTaskNotification(notifyCtx, cfg.NotifyRecipient, record.RoomNumber, record.Notes, images, sentAt)
}
