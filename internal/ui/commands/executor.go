package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/eventbus"
	"filegrip/internal/fileops"
	"filegrip/internal/listing"
	"filegrip/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(appState *state.AppState, bus eventbus.EventBus, lister listing.Service, ops *fileops.Service) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:   appState,
			Bus:     bus,
			Listing: lister,
			FileOps: ops,
		},
	}
}

// ExecuteLoadDir creates and executes a load directory command
func (e *Executor) ExecuteLoadDir(dir string) tea.Cmd {
	cmd := NewLoadDirCommand(e.ctx, dir)
	return cmd.Execute()
}

// ExecuteMove creates and executes a move command
func (e *Executor) ExecuteMove(sources []string, destDir string, strategy fileops.OverwriteStrategy) tea.Cmd {
	cmd := NewMoveCommand(e.ctx, sources, destDir, strategy)
	return cmd.Execute()
}

// ExecuteCopy creates and executes a copy command
func (e *Executor) ExecuteCopy(sources []string, destDir string, strategy fileops.OverwriteStrategy) tea.Cmd {
	cmd := NewCopyCommand(e.ctx, sources, destDir, strategy)
	return cmd.Execute()
}

// ExecuteDelete creates and executes a delete command
func (e *Executor) ExecuteDelete(paths []string, toTrash bool) tea.Cmd {
	cmd := NewDeleteCommand(e.ctx, paths, toTrash)
	return cmd.Execute()
}

// ExecuteOpenEntry creates and executes an open entry command
func (e *Executor) ExecuteOpenEntry(path string) tea.Cmd {
	cmd := NewOpenEntryCommand(e.ctx, path)
	return cmd.Execute()
}

// ExecuteCopyPaths creates and executes a copy paths command
func (e *Executor) ExecuteCopyPaths(paths []string) tea.Cmd {
	cmd := NewCopyPathsCommand(e.ctx, paths)
	return cmd.Execute()
}
