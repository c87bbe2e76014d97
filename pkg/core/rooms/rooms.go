package rooms

// ChecklistItem identifies one of the cleaning types on the checklist
type ChecklistItem string

const (
	VisualCleaning          ChecklistItem = "visual"
	MaintenanceCleaning     ChecklistItem = "maintenance"
	BasicRoomCleaning       ChecklistItem = "basic"
	BedCleaning             ChecklistItem = "bed"
	WindowsCurtainsCleaning ChecklistItem = "windows"
)

// Label returns the display name for a checklist item
func (i ChecklistItem) Label() string {
	switch i {
	case VisualCleaning:
		return "Visual cleaning"
	case MaintenanceCleaning:
		return "Maintenance cleaning"
	case BasicRoomCleaning:
		return "Basic room cleaning"
	case BedCleaning:
		return "Bed cleaning"
	case WindowsCurtainsCleaning:
		return "Windows and curtains"
	}
	return string(i)
}

// Classification describes how a room identifier maps to a checklist variant
type Classification struct {
	Label   string
	Special bool
}

// DefaultSuffixes returns the built-in suffix-to-label table for special rooms.
// Deployments can override it via the roomSuffixes config section.
func DefaultSuffixes() map[string]string {
	return map[string]string{
		"G1": "Guest WC",
		"M1": "Staff WC",
		"B1": "Accessible WC",
		"P1": "Care Bath",
	}
}

// Classify maps a room identifier to its checklist variant.
// The last two characters are looked up in the suffix table (case-sensitive,
// exact length); a miss means a standard room displayed verbatim.
// Total over all strings - identifiers shorter than two characters simply miss.
func Classify(roomNumber string, suffixes map[string]string) Classification {
	if len(roomNumber) >= 2 {
		if label, ok := suffixes[roomNumber[len(roomNumber)-2:]]; ok {
			return Classification{Label: label, Special: true}
		}
	}
	return Classification{Label: roomNumber}
}

// Checklist returns the checklist items applicable to this room variant.
// Special rooms expose only visual and maintenance cleaning.
func (c Classification) Checklist() []ChecklistItem {
	if c.Special {
		return []ChecklistItem{VisualCleaning, MaintenanceCleaning}
	}
	return []ChecklistItem{
		VisualCleaning,
		MaintenanceCleaning,
		BasicRoomCleaning,
		BedCleaning,
		WindowsCurtainsCleaning,
	}
}
