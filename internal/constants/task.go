package constants

// TaskStatus is the numeric status enumeration stored on a task. There is
// no transition graph: any status may move to any other status.
type TaskStatus int

const (
	StatusTodo TaskStatus = iota
	StatusInProgress
	StatusInReview
	StatusBlocked
	StatusDone
	StatusCancelled
)

// TaskPriority is the numeric priority enumeration stored on a task.
type TaskPriority int

const (
	PriorityLow TaskPriority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

// Label maps a status to its canonical uppercase label. Out-of-range
// values resolve to "UNKNOWN" rather than failing.
func (s TaskStatus) Label() string {
	switch s {
	case StatusTodo:
		return "TODO"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusInReview:
		return "IN_REVIEW"
	case StatusBlocked:
		return "BLOCKED"
	case StatusDone:
		return "DONE"
	case StatusCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s is one of the defined status values.
func (s TaskStatus) Valid() bool {
	return s >= StatusTodo && s <= StatusCancelled
}

// Label maps a priority to its canonical uppercase label, with the same
// "UNKNOWN" fallback as TaskStatus.Label.
func (p TaskPriority) Label() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	case PriorityUrgent:
		return "URGENT"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether p is one of the defined priority values.
func (p TaskPriority) Valid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}
