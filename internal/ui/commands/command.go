package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"filegrip/internal/eventbus"
	"filegrip/internal/fileops"
	"filegrip/internal/listing"
	"filegrip/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State   *state.AppState
	Bus     eventbus.EventBus
	Listing listing.Service
	FileOps *fileops.Service
}

// LoadDirCommand loads a directory listing
type LoadDirCommand struct {
	ctx *CommandContext
	dir string
}

// NewLoadDirCommand creates a new load directory command
func NewLoadDirCommand(ctx *CommandContext, dir string) *LoadDirCommand {
	return &LoadDirCommand{
		ctx: ctx,
		dir: dir,
	}
}

// Execute starts the directory load. The result arrives as a
// DirLoaded event on the bus.
func (c *LoadDirCommand) Execute() tea.Cmd {
	if c.dir == "" {
		return nil
	}
	c.ctx.State.Loading = true
	c.ctx.State.StatusMessage = fmt.Sprintf("Loading %s...", c.dir)

	dir := c.dir
	showHidden := c.ctx.State.ShowHidden
	svc := c.ctx.Listing
	return func() tea.Msg {
		svc.LoadDir(dir, showHidden)
		return nil
	}
}

// MoveCommand moves the given paths to a destination directory
type MoveCommand struct {
	ctx      *CommandContext
	sources  []string
	destDir  string
	strategy fileops.OverwriteStrategy
}

// NewMoveCommand creates a new move command
func NewMoveCommand(ctx *CommandContext, sources []string, destDir string, strategy fileops.OverwriteStrategy) *MoveCommand {
	return &MoveCommand{
		ctx:      ctx,
		sources:  sources,
		destDir:  destDir,
		strategy: strategy,
	}
}

// Execute runs the move in the background. Completion arrives as an
// OperationCompleted event.
func (c *MoveCommand) Execute() tea.Cmd {
	if len(c.sources) == 0 || c.destDir == "" {
		return nil
	}
	c.ctx.State.OpRunning = true
	c.ctx.State.StatusMessage = fmt.Sprintf("Moving %d item(s)...", len(c.sources))

	cmd := *c
	return func() tea.Msg {
		cmd.ctx.FileOps.Move(context.Background(), cmd.sources, cmd.destDir, cmd.strategy)
		return nil
	}
}

// CopyCommand copies the given paths to a destination directory
type CopyCommand struct {
	ctx      *CommandContext
	sources  []string
	destDir  string
	strategy fileops.OverwriteStrategy
}

// NewCopyCommand creates a new copy command
func NewCopyCommand(ctx *CommandContext, sources []string, destDir string, strategy fileops.OverwriteStrategy) *CopyCommand {
	return &CopyCommand{
		ctx:      ctx,
		sources:  sources,
		destDir:  destDir,
		strategy: strategy,
	}
}

// Execute runs the copy in the background
func (c *CopyCommand) Execute() tea.Cmd {
	if len(c.sources) == 0 || c.destDir == "" {
		return nil
	}
	c.ctx.State.OpRunning = true
	c.ctx.State.StatusMessage = fmt.Sprintf("Copying %d item(s)...", len(c.sources))

	cmd := *c
	return func() tea.Msg {
		cmd.ctx.FileOps.Copy(context.Background(), cmd.sources, cmd.destDir, cmd.strategy)
		return nil
	}
}

// DeleteCommand deletes the given paths
type DeleteCommand struct {
	ctx     *CommandContext
	paths   []string
	toTrash bool
}

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(ctx *CommandContext, paths []string, toTrash bool) *DeleteCommand {
	return &DeleteCommand{
		ctx:     ctx,
		paths:   paths,
		toTrash: toTrash,
	}
}

// Execute runs the delete in the background
func (c *DeleteCommand) Execute() tea.Cmd {
	if len(c.paths) == 0 {
		return nil
	}
	c.ctx.State.OpRunning = true
	c.ctx.State.StatusMessage = fmt.Sprintf("Deleting %d item(s)...", len(c.paths))

	cmd := *c
	return func() tea.Msg {
		cmd.ctx.FileOps.Delete(context.Background(), cmd.paths, cmd.toTrash)
		return nil
	}
}

// OpenEntryCommand opens a file with the system handler
type OpenEntryCommand struct {
	ctx  *CommandContext
	path string
}

// NewOpenEntryCommand creates a new open entry command
func NewOpenEntryCommand(ctx *CommandContext, path string) *OpenEntryCommand {
	return &OpenEntryCommand{
		ctx:  ctx,
		path: path,
	}
}

// Execute opens the file
func (c *OpenEntryCommand) Execute() tea.Cmd {
	if c.path == "" {
		return nil
	}
	path := c.path
	bus := c.ctx.Bus
	return func() tea.Msg {
		if err := open.Start(path); err != nil && bus != nil {
			bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Could not open %s", path),
				Err:     err,
			})
		}
		return nil
	}
}

// CopyPathsCommand copies paths to the system clipboard, one per line
type CopyPathsCommand struct {
	ctx   *CommandContext
	paths []string
}

// NewCopyPathsCommand creates a new copy paths command
func NewCopyPathsCommand(ctx *CommandContext, paths []string) *CopyPathsCommand {
	return &CopyPathsCommand{
		ctx:   ctx,
		paths: paths,
	}
}

// Execute writes the paths to the clipboard
func (c *CopyPathsCommand) Execute() tea.Cmd {
	if len(c.paths) == 0 {
		return nil
	}
	if err := clipboard.WriteAll(strings.Join(c.paths, "\n")); err != nil {
		c.ctx.State.StatusMessage = fmt.Sprintf("Clipboard unavailable: %v", err)
		return nil
	}
	c.ctx.State.StatusMessage = fmt.Sprintf("Copied %d path(s) to clipboard", len(c.paths))
	return nil
}
