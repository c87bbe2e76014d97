package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Totix777/hauswirtschaft/internal/config"
	"github.com/Totix777/hauswirtschaft/pkg/core/rooms"
	"github.com/Totix777/hauswirtschaft/pkg/core/session"
	"github.com/Totix777/hauswirtschaft/pkg/db"
)

type mockTaskStore struct {
	inserted []db.CleaningTask
	err      error
}

func (m *mockTaskStore) InsertCleaningTask(task *db.CleaningTask) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, *task)
	return nil
}

type notifyCall struct {
	recipient  string
	roomNumber string
	notes      string
	images     string
	date       string
}

type mockNotifier struct {
	calls []notifyCall
	err   error
}

func (m *mockNotifier) SendTaskNotification(ctx context.Context, recipient, roomNumber, notes, images, date string) error {
	m.calls = append(m.calls, notifyCall{recipient, roomNumber, notes, images, date})
	return m.err
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:     "postgres://localhost:5432/test",
		GmailUserID:     "user@example.com",
		NotifyRecipient: "lead@example.com",
		Rooms:           []string{"101", "G1"},
	}
}

func newStandardSession(room, staff string) *session.Session {
	return session.New(room, staff, rooms.Classify(room, rooms.DefaultSuffixes()), false)
}

func TestValidate_NoSelectionRejected(t *testing.T) {
	task := &db.CleaningTask{RoomNumber: "101"}

	err := Validate(task, rooms.Classification{Label: "101"})
	assert.ErrorIs(t, err, ErrNoCleaningSelected)

	err = Validate(task, rooms.Classification{Label: "Guest WC", Special: true})
	assert.ErrorIs(t, err, ErrNoCleaningSelected)
}

func TestValidate_AnySelectionAccepted(t *testing.T) {
	for _, item := range []rooms.ChecklistItem{
		rooms.VisualCleaning,
		rooms.MaintenanceCleaning,
		rooms.BasicRoomCleaning,
		rooms.BedCleaning,
		rooms.WindowsCurtainsCleaning,
	} {
		task := &db.CleaningTask{RoomNumber: "101"}
		task.SetFlag(item, true)
		assert.NoError(t, Validate(task, rooms.Classification{Label: "101"}), "item %s", item)
	}
}

func TestValidate_SpecialRoomIgnoresInapplicableFlags(t *testing.T) {
	// Only visual and maintenance count for special rooms
	task := &db.CleaningTask{RoomNumber: "G1", BedCleaning: true}
	special := rooms.Classification{Label: "Guest WC", Special: true}

	assert.ErrorIs(t, Validate(task, special), ErrNoCleaningSelected)

	task.MaintenanceCleaning = true
	assert.NoError(t, Validate(task, special))
}

func TestShouldNotify(t *testing.T) {
	assert.False(t, ShouldNotify("", nil))
	assert.False(t, ShouldNotify("   ", nil), "whitespace-only notes do not trigger")
	assert.True(t, ShouldNotify("stain on carpet", nil))
	assert.True(t, ShouldNotify("", []string{"data:image/png;base64,abc"}))
}

func TestSubmitTask_PlainSubmissionCommitsWithoutNotification(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	store := &mockTaskStore{}
	notifier := &mockNotifier{}

	sess := newStandardSession("101", "Maria")
	sess.Toggle(rooms.VisualCleaning, true)

	record, err := SubmitTask(ctx, store, notifier, testConfig(), logger, sess)
	require.NoError(t, err)
	require.NotNil(t, record)

	require.Len(t, store.inserted, 1)
	saved := store.inserted[0]
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "101", saved.RoomNumber)
	assert.True(t, saved.VisualCleaning)
	assert.NotEmpty(t, saved.Time)

	assert.Empty(t, notifier.calls, "no notes and no photos must not dispatch")
	assert.True(t, sess.CompletedToday())
}

func TestSubmitTask_SpecialRoomAllFalseRejected(t *testing.T) {
	ctx := context.Background()
	store := &mockTaskStore{}
	notifier := &mockNotifier{}

	sess := newStandardSession("G1", "Maria")

	record, err := SubmitTask(ctx, store, notifier, testConfig(), zap.NewNop(), sess)
	assert.ErrorIs(t, err, ErrNoCleaningSelected)
	assert.Nil(t, record)

	assert.Empty(t, store.inserted, "no sink call on rejection")
	assert.Empty(t, notifier.calls, "no notification on rejection")
	assert.ErrorIs(t, sess.ValidationError(), ErrNoCleaningSelected)
	assert.False(t, sess.CompletedToday())
}

func TestSubmitTask_WhitespaceNotesDoNotDispatch(t *testing.T) {
	ctx := context.Background()
	store := &mockTaskStore{}
	notifier := &mockNotifier{}

	sess := newStandardSession("204", "")
	sess.Toggle(rooms.BedCleaning, true)
	sess.SetNotes("  ")

	_, err := SubmitTask(ctx, store, notifier, testConfig(), zap.NewNop(), sess)
	require.NoError(t, err)
	assert.Empty(t, notifier.calls)
}

func TestSubmitTask_NotesTriggerNotification(t *testing.T) {
	ctx := context.Background()
	store := &mockTaskStore{}
	notifier := &mockNotifier{}

	sess := newStandardSession("204", "Maria")
	sess.Toggle(rooms.MaintenanceCleaning, true)
	sess.SetNotes("broken lamp")

	_, err := SubmitTask(ctx, store, notifier, testConfig(), zap.NewNop(), sess)
	require.NoError(t, err)

	require.Len(t, notifier.calls, 1)
	call := notifier.calls[0]
	assert.Equal(t, "lead@example.com", call.recipient)
	assert.Equal(t, "204", call.roomNumber)
	assert.Equal(t, "broken lamp", call.notes)
	assert.Empty(t, call.images)
	assert.NotEmpty(t, call.date)
}

func TestSubmitTask_PhotosJoinedInSelectionOrder(t *testing.T) {
	ctx := context.Background()
	store := &mockTaskStore{}
	notifier := &mockNotifier{}

	sess := newStandardSession("204", "")
	sess.Toggle(rooms.VisualCleaning, true)
	sess.AttachPhoto("data:image/png;base64,first")
	sess.AttachPhoto("data:image/jpeg;base64,second")

	_, err := SubmitTask(ctx, store, notifier, testConfig(), zap.NewNop(), sess)
	require.NoError(t, err)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "data:image/png;base64,first\ndata:image/jpeg;base64,second", notifier.calls[0].images)
	assert.Empty(t, sess.Photos(), "photo accumulator cleared after commit")
}

func TestSubmitTask_NotificationFailureDoesNotBlockCommit(t *testing.T) {
	ctx := context.Background()
	store := &mockTaskStore{}
	notifier := &mockNotifier{err: errors.New("provider rejected payload")}

	sess := newStandardSession("204", "Maria")
	sess.Toggle(rooms.VisualCleaning, true)
	sess.SetNotes("water damage near window")

	record, err := SubmitTask(ctx, store, notifier, testConfig(), zap.NewNop(), sess)
	require.NoError(t, err, "delivery failure must never surface as a submission failure")
	require.NotNil(t, record)

	require.Len(t, store.inserted, 1, "record still reaches the sink")
	assert.True(t, sess.CompletedToday())
}

func TestSubmitTask_PersistenceErrorAbortsCommit(t *testing.T) {
	ctx := context.Background()
	store := &mockTaskStore{err: errors.New("connection refused")}
	notifier := &mockNotifier{}

	sess := newStandardSession("101", "Maria")
	sess.Toggle(rooms.VisualCleaning, true)
	sess.SetNotes("note that stays")

	_, err := SubmitTask(ctx, store, notifier, testConfig(), zap.NewNop(), sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save cleaning task")

	// No reset: the draft keeps its edits and completion does not flip
	draft := sess.Draft()
	assert.True(t, draft.VisualCleaning)
	assert.Equal(t, "note that stays", draft.Notes)
	assert.False(t, sess.CompletedToday())
}

func TestSubmitTask_RepeatSubmissionSameDay(t *testing.T) {
	ctx := context.Background()
	store := &mockTaskStore{}
	notifier := &mockNotifier{}
	cfg := testConfig()
	logger := zap.NewNop()

	sess := newStandardSession("101", "Maria")

	sess.Toggle(rooms.VisualCleaning, true)
	first, err := SubmitTask(ctx, store, notifier, cfg, logger, sess)
	require.NoError(t, err)

	sess.Toggle(rooms.BedCleaning, true)
	second, err := SubmitTask(ctx, store, notifier, cfg, logger, sess)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "each submission is an independent record")
	assert.Len(t, store.inserted, 2)
	assert.True(t, sess.CompletedToday())
}

func TestSubmitTask_ResetPreservesIdentityFields(t *testing.T) {
	ctx := context.Background()
	store := &mockTaskStore{}
	notifier := &mockNotifier{}

	sess := newStandardSession("318", "Maria")
	sess.SetDate("2026-05-10")
	sess.Toggle(rooms.BasicRoomCleaning, true)
	sess.SetNotes("done")

	record, err := SubmitTask(ctx, store, notifier, testConfig(), zap.NewNop(), sess)
	require.NoError(t, err)

	draft := sess.Draft()
	assert.Equal(t, "318", draft.RoomNumber)
	assert.Equal(t, "Maria", draft.StaffName)
	assert.Equal(t, "2026-05-10", draft.Date)
	assert.Equal(t, record.Time, draft.Time)
	assert.False(t, draft.BasicRoomCleaning)
	assert.Empty(t, draft.Notes)
}
