package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"filegrip/internal/domain"
)

func TestFromOpResultSuccess(t *testing.T) {
	n := FromOpResult(domain.OpMove, 3, nil)

	assert.Equal(t, "Move complete", n.Title)
	assert.Contains(t, n.Description, "Moved 3 item(s)")
	assert.Equal(t, SeverityInfo, n.Severity)
	assert.False(t, n.CanRetry())
}

func TestFromOpResultFailure(t *testing.T) {
	failures := []domain.OpFailure{
		{Path: "/tmp/a", Err: errors.New("permission denied")},
		{Path: "/tmp/b", Err: errors.New("disk full")},
	}

	n := FromOpResult(domain.OpDelete, 1, failures)

	assert.Equal(t, "Delete failed", n.Title)
	assert.Contains(t, n.Description, "2 of 3 item(s) failed")
	assert.Contains(t, n.Description, "permission denied")
	assert.Equal(t, SeverityError, n.Severity)
}

func TestFromError(t *testing.T) {
	n := FromError("Copy", errors.New("boom"))

	assert.Equal(t, "Copy failed", n.Title)
	assert.Equal(t, "boom", n.Description)
	assert.Equal(t, SeverityError, n.Severity)
}

func TestCanRetry(t *testing.T) {
	n := Notification{Retry: func() {}}
	assert.True(t, n.CanRetry())

	assert.False(t, Notification{}.CanRetry())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
}
