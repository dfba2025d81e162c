package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/config"
	"filegrip/internal/domain"
	"filegrip/internal/eventbus"
	"filegrip/internal/fileops"
	"filegrip/internal/listing"
	"filegrip/internal/ui/commands"
	"filegrip/internal/ui/files"
	"filegrip/internal/ui/handlers"
	"filegrip/internal/ui/input"
	inputtypes "filegrip/internal/ui/input/types"
	"filegrip/internal/ui/logic"
	"filegrip/internal/ui/services/selection"
	"filegrip/internal/ui/state"
	"filegrip/internal/ui/toolbar"
	"filegrip/internal/ui/views"
	"filegrip/internal/watch"
)

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	state     *state.AppState // centralized state

	// UI-specific state not in AppState
	width  int
	height int

	// Handlers
	selection    *selection.Service
	entryFilter  *logic.EntryFilter
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	store        files.EntryStore
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	toolbar      *toolbar.Toolbar
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	watcher      watch.Watcher

	// Destination collected for a pending move/copy
	pendingDest string

	// Command produced by a toolbar or retry callback during dispatch
	queuedCmd tea.Cmd

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService,
	lister listing.Service, ops *fileops.Service, watcher watch.Watcher) *Model {
	appState := state.NewAppState()
	appState.ShowHidden = cfg.UISettings.ShowHidden
	appState.ShowSizes = cfg.UISettings.ShowSizes
	appState.ConfirmDelete = cfg.UISettings.ConfirmDelete
	appState.DeleteToTrash = cfg.UISettings.DeleteToTrash

	m := &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		state:        appState,
		selection:    selection.NewService(bus),
		entryFilter:  logic.NewEntryFilter(appState.Entries),
		renderer:     views.NewRenderer(cfg.UISettings.ShowSizes),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
		watcher:      watcher,
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.selection.Clear, m.reloadDir, m.retryOp)
	m.store = files.NewStateEntryStore(appState, m.selection)
	m.cmdExecutor = commands.NewExecutor(appState, bus, lister, ops)

	m.toolbar = toolbar.New(toolbar.Callbacks{
		SelectAll: func() { m.selection.SelectAll(m.visibleEntries()) },
		Clear: func() {
			m.selection.Clear()
			m.state.RangeAnchor = ""
		},
		Move:   func() { m.beginOp(domain.OpMove) },
		Copy:   func() { m.beginOp(domain.OpCopy) },
		Delete: func() { m.queuedCmd = m.beginDelete() },
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.state.ViewportHeight = 20 // Will be updated on first WindowSizeMsg
	return tea.Batch(
		m.cmdExecutor.ExecuteLoadDir(m.config.StartDir),
		tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
			return tickMsg(t)
		}),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			State: m.state,
			Store: m.store,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		m.syncToolbar()
		return m, tea.Batch(cmds...)

	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if e, ok := msg.Event.(eventbus.DirLoadedEvent); ok {
			m.entryFilter = logic.NewEntryFilter(m.state.Entries)
			if m.state.IsFiltered {
				m.state.SetFilter(m.state.FilterQuery, m.entryFilter.Match(m.state.FilterQuery, m.state.OrderedEntries))
			}
			if m.watcher != nil {
				if err := m.watcher.Watch(e.Dir); err != nil {
					log.Printf("Could not watch %s: %v", e.Dir, err)
				}
			}
		}
		m.syncToolbar()
		return m, cmd

	case tickMsg:
		if m.toolbar.Animating() {
			m.toolbar.Tick()
		}
		return m, tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case handlers.ClearToastMsg:
		m.state.ClearToast()

	case clearStatusMsg:
		m.state.StatusMessage = ""

	case helpPagerMsg:
		if msg.err != nil {
			m.state.StatusMessage = fmt.Sprintf("Help pager failed: %v", msg.err)
		}

	case quitMsg:
		if msg.saveConfig {
			m.saveConfig()
		}
		return m, tea.Quit

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	selected := make(map[string]bool)
	for _, path := range m.selection.Selected() {
		selected[path] = true
	}

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		CurrentDir:     m.state.CurrentDir,
		Entries:        m.state.Entries,
		VisiblePaths:   m.state.VisibleEntries(),
		Loading:        m.state.Loading,
		CursorIndex:    m.state.CursorIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Selected:       selected,
		SelectionCount: m.selection.Count(),
		RangeAnchor:    m.state.RangeAnchor,
		OpRunning:      m.state.OpRunning,
		StatusMessage:  m.state.StatusMessage,
		Toast:          m.state.Toast,
		FilterQuery:    m.state.FilterQuery,
		IsFiltered:     m.state.IsFiltered,
		ToolbarView:    m.toolbar.View(),
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeFilter:
		vs.InputMode = "filter"
		vs.PromptText = "Filter: "
		if ti := m.inputHandler.TextInput(); ti != nil {
			vs.TextInput = ti.View()
		}
	case inputtypes.ModeDestination:
		vs.InputMode = "destination"
		vs.PromptText = "Destination: "
		if ti := m.inputHandler.TextInput(); ti != nil {
			vs.TextInput = ti.View()
		}
	case inputtypes.ModeConfirm:
		vs.InputMode = "confirm"
		vs.PromptText = m.confirmPrompt()
	case inputtypes.ModeOverwrite:
		vs.InputMode = "overwrite"
		vs.PromptText = "Destination exists: (o)verwrite, (r)ename, (s)kip?"
	}

	return m.renderer.Render(vs)
}

// processAction executes a single input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ParentDirAction:
		parent := filepath.Dir(m.state.CurrentDir)
		if parent != m.state.CurrentDir {
			return m.cmdExecutor.ExecuteLoadDir(parent)
		}

	case inputtypes.EnterEntryAction:
		entry := m.state.EntryAtCursor()
		if entry == nil {
			return nil
		}
		if entry.IsDir {
			return m.cmdExecutor.ExecuteLoadDir(entry.Path)
		}
		return m.cmdExecutor.ExecuteOpenEntry(entry.Path)

	case inputtypes.ToggleSelectAction:
		if entry := m.state.EntryAtCursor(); entry != nil {
			m.selection.Toggle(entry.Path)
			m.state.RangeAnchor = entry.Path
		}

	case inputtypes.SelectAllAction:
		if m.toolbar.Visible() {
			return m.triggerToolbar(toolbar.ActionSelectAll)
		}
		m.selection.SelectAll(m.visibleEntries())

	case inputtypes.DeselectAllAction:
		if m.toolbar.Visible() {
			return m.triggerToolbar(toolbar.ActionClear)
		}
		m.selection.Clear()
		m.state.RangeAnchor = ""

	case inputtypes.RangeSelectAction:
		m.rangeSelect()

	case inputtypes.MoveAction:
		return m.triggerToolbar(toolbar.ActionMove)

	case inputtypes.CopyAction:
		return m.triggerToolbar(toolbar.ActionCopy)

	case inputtypes.DeleteAction:
		return m.triggerToolbar(toolbar.ActionDelete)

	case inputtypes.ConfirmAction:
		return m.resolveConfirm(a.Confirmed)

	case inputtypes.ChooseOverwriteAction:
		return m.resolveOverwrite(fileops.OverwriteStrategy(a.Strategy))

	case inputtypes.SubmitTextAction:
		return m.submitText(a)

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeFilter {
			m.state.SetFilter(a.Text, m.entryFilter.Match(a.Text, m.state.OrderedEntries))
		}

	case inputtypes.CancelTextAction:
		m.state.ClearFilter()
		m.state.Pending = nil
		m.pendingDest = ""

	case inputtypes.CopyPathsAction:
		return tea.Batch(
			m.cmdExecutor.ExecuteCopyPaths(m.selection.Selected()),
			tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} }),
		)

	case inputtypes.RetryAction:
		if m.state.Toast != nil && m.state.Toast.CanRetry() {
			retry := m.state.Toast.Retry
			m.state.ClearToast()
			m.queuedCmd = nil
			retry()
			cmd := m.queuedCmd
			m.queuedCmd = nil
			return cmd
		}

	case inputtypes.RefreshAction:
		return m.reloadDir()

	case inputtypes.ToggleHiddenAction:
		m.state.ShowHidden = !m.state.ShowHidden
		m.config.UISettings.ShowHidden = m.state.ShowHidden
		m.saveConfig()
		return m.reloadDir()

	case inputtypes.ToggleSizesAction:
		m.state.ShowSizes = !m.state.ShowSizes
		m.renderer.SetShowSizes(m.state.ShowSizes)
		m.config.UISettings.ShowSizes = m.state.ShowSizes
		m.saveConfig()

	case inputtypes.ToggleHelpAction:
		return m.showHelp()

	case inputtypes.QuitAction:
		if a.Force {
			return tea.Quit
		}
		return func() tea.Msg { return quitMsg{saveConfig: true} }
	}

	return nil
}

// navigate moves the cursor
func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.state.MoveCursor(-1)
	case "down":
		m.state.MoveCursor(1)
	case "pageup":
		m.state.MoveCursor(-m.state.ViewportHeight)
	case "pagedown":
		m.state.MoveCursor(m.state.ViewportHeight)
	case "home":
		m.state.CursorToStart()
	case "end":
		m.state.CursorToEnd()
	}
}

// rangeSelect drops the anchor on first use and extends the selection
// from anchor to cursor afterwards.
func (m *Model) rangeSelect() {
	entry := m.state.EntryAtCursor()
	if entry == nil {
		return
	}

	if m.state.RangeAnchor == "" {
		m.state.RangeAnchor = entry.Path
		if !m.selection.IsSelected(entry.Path) {
			m.selection.Toggle(entry.Path)
		}
		return
	}

	m.selection.SelectRange(m.state.RangeAnchor, entry.Path, m.visibleEntries())
	m.state.RangeAnchor = entry.Path
}

// beginOp stages a move or copy and prompts for the destination
func (m *Model) beginOp(kind domain.OpKind) {
	paths := m.selection.Selected()
	if len(paths) == 0 {
		return
	}
	m.state.Pending = &state.PendingOp{Kind: kind, Paths: paths}
	m.pendingDest = ""
	m.inputHandler.ChangeMode(inputtypes.ModeDestination, m.state.CurrentDir)
}

// beginDelete stages a delete, asking for confirmation when enabled
func (m *Model) beginDelete() tea.Cmd {
	paths := m.selection.Selected()
	if len(paths) == 0 {
		return nil
	}
	m.state.Pending = &state.PendingOp{Kind: domain.OpDelete, Paths: paths}

	if m.state.ConfirmDelete {
		m.inputHandler.ChangeMode(inputtypes.ModeConfirm, "")
		return nil
	}
	return m.resolveConfirm(true)
}

// resolveConfirm runs or discards the staged delete
func (m *Model) resolveConfirm(confirmed bool) tea.Cmd {
	pending := m.state.Pending
	m.state.Pending = nil
	if !confirmed || pending == nil || pending.Kind != domain.OpDelete {
		return nil
	}

	m.selection.Clear()
	m.state.RangeAnchor = ""
	return m.cmdExecutor.ExecuteDelete(pending.Paths, m.state.DeleteToTrash)
}

// resolveOverwrite runs the staged move/copy with the chosen strategy
func (m *Model) resolveOverwrite(strategy fileops.OverwriteStrategy) tea.Cmd {
	pending := m.state.Pending
	dest := m.pendingDest
	m.state.Pending = nil
	m.pendingDest = ""
	if pending == nil || dest == "" {
		return nil
	}

	m.selection.Clear()
	m.state.RangeAnchor = ""

	switch pending.Kind {
	case domain.OpMove:
		return m.cmdExecutor.ExecuteMove(pending.Paths, dest, strategy)
	case domain.OpCopy:
		return m.cmdExecutor.ExecuteCopy(pending.Paths, dest, strategy)
	}
	return nil
}

// submitText handles a completed text prompt
func (m *Model) submitText(a inputtypes.SubmitTextAction) tea.Cmd {
	switch a.Mode {
	case inputtypes.ModeFilter:
		m.state.SetFilter(a.Text, m.entryFilter.Match(a.Text, m.state.OrderedEntries))

	case inputtypes.ModeDestination:
		if m.state.Pending == nil || a.Text == "" {
			m.state.Pending = nil
			return nil
		}
		m.pendingDest = a.Text

		if m.hasCollision(m.state.Pending.Paths, a.Text) {
			m.inputHandler.ChangeMode(inputtypes.ModeOverwrite, "")
			return nil
		}
		// No collisions, the strategy never applies
		return m.resolveOverwrite(fileops.Skip)
	}
	return nil
}

// hasCollision reports whether any source would land on an existing path
func (m *Model) hasCollision(sources []string, destDir string) bool {
	for _, src := range sources {
		dest := filepath.Join(destDir, filepath.Base(src))
		if _, err := os.Stat(dest); err == nil {
			return true
		}
	}
	return false
}

func (m *Model) confirmPrompt() string {
	if m.state.Pending == nil {
		return ""
	}
	target := "to trash"
	if !m.state.DeleteToTrash {
		target = "permanently"
	}
	return fmt.Sprintf("Delete %d item(s) %s? (y/n)", len(m.state.Pending.Paths), target)
}

// visibleEntries snapshots the visible listing as entries
func (m *Model) visibleEntries() []domain.FileEntry {
	paths := m.state.VisibleEntries()
	entries := make([]domain.FileEntry, 0, len(paths))
	for _, path := range paths {
		if entry, ok := m.state.GetEntry(path); ok {
			entries = append(entries, *entry)
		}
	}
	return entries
}

// triggerToolbar dispatches an action through the toolbar so its
// offered-action rules apply, and collects any command a callback
// produced.
func (m *Model) triggerToolbar(action toolbar.Action) tea.Cmd {
	m.queuedCmd = nil
	m.toolbar.Trigger(action)
	cmd := m.queuedCmd
	m.queuedCmd = nil
	return cmd
}

// retryOp re-runs a failed batch operation on the paths that failed.
// Invoked through the toast's retry hook.
func (m *Model) retryOp(kind domain.OpKind, paths []string, dest string, toTrash bool) {
	switch kind {
	case domain.OpMove:
		m.queuedCmd = m.cmdExecutor.ExecuteMove(paths, dest, fileops.Skip)
	case domain.OpCopy:
		m.queuedCmd = m.cmdExecutor.ExecuteCopy(paths, dest, fileops.Skip)
	case domain.OpDelete:
		m.queuedCmd = m.cmdExecutor.ExecuteDelete(paths, toTrash)
	}
}

// syncToolbar refreshes the toolbar from the selection state
func (m *Model) syncToolbar() {
	m.toolbar.SetProps(toolbar.Props{
		SelectedCount: m.selection.Count(),
		TotalCount:    len(m.state.VisibleEntries()),
		AllSelected:   m.store.IsAllSelected(),
	})
}

// reloadDir re-reads the current directory
func (m *Model) reloadDir() tea.Cmd {
	if m.state.CurrentDir == "" {
		return nil
	}
	return m.cmdExecutor.ExecuteLoadDir(m.state.CurrentDir)
}

// showHelp runs the help pager, taking over the terminal
func (m *Model) showHelp() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent()
	return func() tea.Msg {
		err := m.helpOps.ShowHelpInPager(content)
		return helpPagerMsg{err: err}
	}
}

func (m *Model) saveConfig() {
	m.config.StartDir = m.state.CurrentDir
	m.config.UISettings.ShowHidden = m.state.ShowHidden
	m.config.UISettings.ShowSizes = m.state.ShowSizes
	m.config.UISettings.ConfirmDelete = m.state.ConfirmDelete
	m.config.UISettings.DeleteToTrash = m.state.DeleteToTrash
	if err := m.configSvc.Save(m.config); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}

func (m *Model) updateViewportHeight() {
	// Title, prompt area, toolbar, toast and footer share the screen
	// with the listing
	reserved := 8
	h := m.height - reserved
	if h < 5 {
		h = 5
	}
	m.state.ViewportHeight = h
}
