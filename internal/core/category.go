package core

const (
	FocusSession TaskCategory = "focus"
	Exercise     TaskCategory = "exercise"
	Chores       TaskCategory = "chores"
	Reading      TaskCategory = "reading"
	Custom       TaskCategory = "custom"
)

// TaskCategory is the closed set of activity kinds a session can belong to.
type TaskCategory string

// AllCategories lists every category in display order.
func AllCategories() []TaskCategory {
	return []TaskCategory{FocusSession, Exercise, Chores, Reading, Custom}
}

// ParseCategory decodes a stored category value. Unrecognized values decode
// as Custom so that records written by newer versions stay readable.
func ParseCategory(raw string) TaskCategory {
	switch TaskCategory(raw) {
	case FocusSession, Exercise, Chores, Reading, Custom:
		return TaskCategory(raw)
	default:
		return Custom
	}
}

// DisplayName returns the human-readable name for the category.
func (c TaskCategory) DisplayName() string {
	switch c {
	case FocusSession:
		return "Focus Session"
	case Exercise:
		return "Exercise"
	case Chores:
		return "Chores"
	case Reading:
		return "Reading"
	default:
		return "Custom"
	}
}

// DefaultDurationMinutes returns the suggested session length for the category.
func (c TaskCategory) DefaultDurationMinutes() int {
	switch c {
	case FocusSession:
		return 25
	case Exercise:
		return 30
	case Chores:
		return 15
	case Reading:
		return 20
	default:
		return 10
	}
}
