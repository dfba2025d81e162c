package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDirLoaded    EventType = "DirLoaded"
	EventDirChanged   EventType = "DirChanged"
	EventError        EventType = "Error"
	EventOpStarted    EventType = "OperationStarted"
	EventOpCompleted  EventType = "OperationCompleted"
	EventWatchStarted EventType = "WatchStarted"
	EventWatchStopped EventType = "WatchStopped"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"

	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionCleared EventType = "SelectionCleared"
	EventAllSelected      EventType = "AllSelected"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DirLoadedEvent is emitted when a directory listing has been read
type DirLoadedEvent struct {
	Dir     string
	Entries []FileEntry
}

func (e DirLoadedEvent) Type() EventType { return EventDirLoaded }

// DirChangedEvent is emitted when the watcher sees the displayed
// directory change on disk
type DirChangedEvent struct {
	Dir string
}

func (e DirChangedEvent) Type() EventType { return EventDirChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// OpStartedEvent is emitted when a batch file operation begins
type OpStartedEvent struct {
	Kind  OpKind
	Paths []string
	Dest  string // empty for delete
}

func (e OpStartedEvent) Type() EventType { return EventOpStarted }

// OpCompletedEvent is emitted when a batch file operation finishes,
// successfully or not. Dest and ToTrash carry enough context to re-run
// the operation on the failed paths.
type OpCompletedEvent struct {
	Kind     OpKind
	Done     int
	Failures []OpFailure
	Dest     string // empty for delete
	ToTrash  bool   // delete only
}

func (e OpCompletedEvent) Type() EventType { return EventOpCompleted }

// WatchStartedEvent is emitted when the directory watcher starts
type WatchStartedEvent struct {
	Dir string
}

func (e WatchStartedEvent) Type() EventType { return EventWatchStarted }

// WatchStoppedEvent is emitted when the directory watcher stops
type WatchStoppedEvent struct {
	Dir string
}

func (e WatchStoppedEvent) Type() EventType { return EventWatchStopped }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	StartDir string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// SelectionChangedEvent is emitted when individual identifiers enter or
// leave the selection
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the selection is emptied
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// AllSelectedEvent is emitted when the whole listing is selected at once
type AllSelectedEvent struct {
	Paths []string
}

func (e AllSelectedEvent) Type() EventType { return EventAllSelected }
