package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// EnterEntryAction opens the entry under the cursor: directories are
// entered, files are opened with the system handler.
type EnterEntryAction struct{}

func (a EnterEntryAction) Type() string { return "enter_entry" }

// ParentDirAction navigates to the parent directory
type ParentDirAction struct{}

func (a ParentDirAction) Type() string { return "parent_dir" }

// Selection actions
type ToggleSelectAction struct{}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// RangeSelectAction extends the selection from the anchor to the
// cursor; with no anchor set it drops the anchor at the cursor.
type RangeSelectAction struct{}

func (a RangeSelectAction) Type() string { return "range_select" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// File operation actions
type MoveAction struct{}

func (a MoveAction) Type() string { return "move" }

type CopyAction struct{}

func (a CopyAction) Type() string { return "copy" }

type DeleteAction struct{}

func (a DeleteAction) Type() string { return "delete" }

// ConfirmAction resolves a pending confirmation prompt
type ConfirmAction struct {
	Confirmed bool
}

func (a ConfirmAction) Type() string { return "confirm" }

// ChooseOverwriteAction resolves a destination collision prompt
type ChooseOverwriteAction struct {
	Strategy string // "overwrite", "rename", "skip"
}

func (a ChooseOverwriteAction) Type() string { return "choose_overwrite" }

// Misc actions
type CopyPathsAction struct{}

func (a CopyPathsAction) Type() string { return "copy_paths" }

type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

// RetryAction re-invokes the failed operation offered by the current
// toast, if any.
type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

type ToggleHiddenAction struct{}

func (a ToggleHiddenAction) Type() string { return "toggle_hidden" }

type ToggleSizesAction struct{}

func (a ToggleSizesAction) Type() string { return "toggle_sizes" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
