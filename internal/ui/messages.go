package ui

import (
	"time"

	"filegrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// clearStatusMsg clears the status bar message
type clearStatusMsg struct{}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}
