package notify

import (
	"fmt"

	"filegrip/internal/domain"
)

// Severity grades a notification for display
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is the application-level channel for surfacing
// operation outcomes: a title/description pair plus severity, and an
// optional retry hook that re-invokes the failed operation.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
	Retry       func()
}

// CanRetry reports whether the notification offers a retry action
func (n Notification) CanRetry() bool { return n.Retry != nil }

var opVerbs = map[domain.OpKind][2]string{
	domain.OpMove:   {"Move", "Moved"},
	domain.OpCopy:   {"Copy", "Copied"},
	domain.OpDelete: {"Delete", "Deleted"},
}

// FromOpResult maps a completed batch operation to a notification.
// Successful batches get an info toast, partial or total failures an
// error toast describing the first failing path.
func FromOpResult(kind domain.OpKind, done int, failures []domain.OpFailure) Notification {
	verbs := opVerbs[kind]

	if len(failures) == 0 {
		return Notification{
			Title:       fmt.Sprintf("%s complete", verbs[0]),
			Description: fmt.Sprintf("%s %d item(s)", verbs[1], done),
			Severity:    SeverityInfo,
		}
	}

	first := failures[0]
	desc := fmt.Sprintf("%d of %d item(s) failed: %v", len(failures), done+len(failures), first.Err)
	return Notification{
		Title:       fmt.Sprintf("%s failed", verbs[0]),
		Description: desc,
		Severity:    SeverityError,
	}
}

// FromError maps a raw error to a user-facing notification without
// blocking further interaction.
func FromError(operation string, err error) Notification {
	return Notification{
		Title:       fmt.Sprintf("%s failed", operation),
		Description: err.Error(),
		Severity:    SeverityError,
	}
}
