package db

import "github.com/Totix777/hauswirtschaft/pkg/core/rooms"

// CleaningTask represents a cleaning record for one room on one day.
// Committed records are immutable; the ID is assigned at commit time.
type CleaningTask struct {
	ID                      string
	Date                    string // 2006-01-02
	Time                    string // wall clock, stamped at submission
	RoomNumber              string
	VisualCleaning          bool
	MaintenanceCleaning     bool
	BasicRoomCleaning       bool
	BedCleaning             bool
	WindowsCurtainsCleaning bool
	Notes                   string
	StaffName               string
}

// Flag returns the checklist flag for the given item
func (t *CleaningTask) Flag(item rooms.ChecklistItem) bool {
	switch item {
	case rooms.VisualCleaning:
		return t.VisualCleaning
	case rooms.MaintenanceCleaning:
		return t.MaintenanceCleaning
	case rooms.BasicRoomCleaning:
		return t.BasicRoomCleaning
	case rooms.BedCleaning:
		return t.BedCleaning
	case rooms.WindowsCurtainsCleaning:
		return t.WindowsCurtainsCleaning
	}
	return false
}

// SetFlag sets the checklist flag for the given item
func (t *CleaningTask) SetFlag(item rooms.ChecklistItem, value bool) {
	switch item {
	case rooms.VisualCleaning:
		t.VisualCleaning = value
	case rooms.MaintenanceCleaning:
		t.MaintenanceCleaning = value
	case rooms.BasicRoomCleaning:
		t.BasicRoomCleaning = value
	case rooms.BedCleaning:
		t.BedCleaning = value
	case rooms.WindowsCurtainsCleaning:
		t.WindowsCurtainsCleaning = value
	}
}

// ClearChecklist resets all five checklist flags to false
func (t *CleaningTask) ClearChecklist() {
	t.VisualCleaning = false
	t.MaintenanceCleaning = false
	t.BasicRoomCleaning = false
	t.BedCleaning = false
	t.WindowsCurtainsCleaning = false
}
