package modes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filegrip/internal/ui/input/types"
)

// fakeContext is a minimal Context for mode tests
type fakeContext struct {
	index       int
	total       int
	selected    int
	allSelected bool
	entryPath   string
	onDir       bool
	anchor      bool
	filter      string
}

func (c *fakeContext) CurrentIndex() int        { return c.index }
func (c *fakeContext) TotalItems() int          { return c.total }
func (c *fakeContext) HasSelection() bool       { return c.selected > 0 }
func (c *fakeContext) SelectedCount() int       { return c.selected }
func (c *fakeContext) AllSelected() bool        { return c.allSelected }
func (c *fakeContext) CurrentEntryPath() string { return c.entryPath }
func (c *fakeContext) IsOnDir() bool            { return c.onDir }
func (c *fakeContext) HasRangeAnchor() bool     { return c.anchor }
func (c *fakeContext) FilterQuery() string      { return c.filter }

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeSelectionKeys(t *testing.T) {
	m := NewNormalMode()
	ctx := &fakeContext{total: 3, entryPath: "/d/a"}

	actions, consumed := m.HandleKey(key(" "), ctx)
	require.True(t, consumed)
	require.Len(t, actions, 1)
	assert.IsType(t, types.ToggleSelectAction{}, actions[0])

	actions, consumed = m.HandleKey(key("v"), ctx)
	require.True(t, consumed)
	assert.IsType(t, types.RangeSelectAction{}, actions[0])

	actions, consumed = m.HandleKey(key("a"), ctx)
	require.True(t, consumed)
	assert.IsType(t, types.SelectAllAction{}, actions[0])

	ctx.allSelected = true
	actions, _ = m.HandleKey(key("a"), ctx)
	assert.IsType(t, types.DeselectAllAction{}, actions[0])
}

func TestNormalModeSpaceOnEmptyListing(t *testing.T) {
	m := NewNormalMode()
	ctx := &fakeContext{total: 0}

	actions, consumed := m.HandleKey(key(" "), ctx)
	assert.False(t, consumed)
	assert.Empty(t, actions)
}

func TestNormalModeOperationKeysNeedSelection(t *testing.T) {
	m := NewNormalMode()
	ctx := &fakeContext{total: 3, entryPath: "/d/a"}

	for _, k := range []string{"m", "c", "d", "y"} {
		actions, consumed := m.HandleKey(key(k), ctx)
		assert.False(t, consumed, "key %q without selection", k)
		assert.Empty(t, actions)
	}

	ctx.selected = 2
	actions, consumed := m.HandleKey(key("m"), ctx)
	require.True(t, consumed)
	assert.IsType(t, types.MoveAction{}, actions[0])

	actions, _ = m.HandleKey(key("c"), ctx)
	assert.IsType(t, types.CopyAction{}, actions[0])

	actions, _ = m.HandleKey(key("d"), ctx)
	assert.IsType(t, types.DeleteAction{}, actions[0])

	actions, _ = m.HandleKey(key("y"), ctx)
	assert.IsType(t, types.CopyPathsAction{}, actions[0])
}

func TestNormalModeEscOrder(t *testing.T) {
	m := NewNormalMode()

	// Filter first
	ctx := &fakeContext{selected: 2, filter: "q"}
	actions, consumed := m.HandleKey(key("esc"), ctx)
	require.True(t, consumed)
	require.Len(t, actions, 1)
	assert.IsType(t, types.CancelTextAction{}, actions[0])

	// Then selection
	ctx = &fakeContext{selected: 2}
	actions, _ = m.HandleKey(key("esc"), ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.DeselectAllAction{}, actions[0])

	// Nothing to clear: consumed, no action
	ctx = &fakeContext{}
	actions, consumed = m.HandleKey(key("esc"), ctx)
	assert.True(t, consumed)
	assert.Empty(t, actions)
}

func TestNormalModeNavigation(t *testing.T) {
	m := NewNormalMode()
	ctx := &fakeContext{total: 3}

	actions, _ := m.HandleKey(key("j"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.NavigateAction{Direction: "down"}, actions[0])

	actions, _ = m.HandleKey(key("k"), ctx)
	assert.Equal(t, types.NavigateAction{Direction: "up"}, actions[0])

	actions, _ = m.HandleKey(key("G"), ctx)
	assert.Equal(t, types.NavigateAction{Direction: "end"}, actions[0])

	// gg goes to the top
	actions, consumed := m.HandleKey(key("g"), ctx)
	assert.True(t, consumed)
	assert.Empty(t, actions)
	actions, _ = m.HandleKey(key("g"), ctx)
	assert.Equal(t, types.NavigateAction{Direction: "home"}, actions[0])
}

func TestNormalModeEnterDirectory(t *testing.T) {
	m := NewNormalMode()

	ctx := &fakeContext{entryPath: "/d/sub", onDir: true}
	actions, consumed := m.HandleKey(key("l"), ctx)
	require.True(t, consumed)
	assert.IsType(t, types.EnterEntryAction{}, actions[0])

	// l on a file does nothing
	ctx = &fakeContext{entryPath: "/d/a.txt"}
	_, consumed = m.HandleKey(key("l"), ctx)
	assert.False(t, consumed)

	// h always goes up
	actions, _ = m.HandleKey(key("h"), ctx)
	assert.IsType(t, types.ParentDirAction{}, actions[0])
}

func TestNormalModeMiscKeys(t *testing.T) {
	m := NewNormalMode()
	ctx := &fakeContext{total: 3, entryPath: "/d/a"}

	actions, _ := m.HandleKey(key("/"), ctx)
	assert.Equal(t, types.ChangeModeAction{Mode: types.ModeFilter}, actions[0])

	actions, _ = m.HandleKey(key("."), ctx)
	assert.IsType(t, types.ToggleHiddenAction{}, actions[0])

	actions, _ = m.HandleKey(key("s"), ctx)
	assert.IsType(t, types.ToggleSizesAction{}, actions[0])

	actions, _ = m.HandleKey(key("R"), ctx)
	assert.IsType(t, types.RetryAction{}, actions[0])

	actions, _ = m.HandleKey(key("?"), ctx)
	assert.IsType(t, types.ToggleHelpAction{}, actions[0])

	actions, _ = m.HandleKey(key("q"), ctx)
	assert.Equal(t, types.QuitAction{Force: false}, actions[0])
}

func TestConfirmMode(t *testing.T) {
	m := NewConfirmMode()
	ctx := &fakeContext{}

	actions, consumed := m.HandleKey(key("y"), ctx)
	require.True(t, consumed)
	require.Len(t, actions, 2)
	assert.Equal(t, types.ConfirmAction{Confirmed: true}, actions[0])
	assert.Equal(t, types.ChangeModeAction{Mode: types.ModeNormal}, actions[1])

	actions, _ = m.HandleKey(key("n"), ctx)
	assert.Equal(t, types.ConfirmAction{Confirmed: false}, actions[0])

	actions, _ = m.HandleKey(key("esc"), ctx)
	assert.Equal(t, types.ConfirmAction{Confirmed: false}, actions[0])
}

func TestOverwriteMode(t *testing.T) {
	m := NewOverwriteMode()
	ctx := &fakeContext{}

	cases := map[string]string{
		"o": "overwrite",
		"r": "rename",
		"s": "skip",
	}
	for k, strategy := range cases {
		actions, consumed := m.HandleKey(key(k), ctx)
		require.True(t, consumed, "key %q", k)
		assert.Equal(t, types.ChooseOverwriteAction{Strategy: strategy}, actions[0])
	}

	actions, _ := m.HandleKey(key("esc"), ctx)
	assert.Equal(t, types.ConfirmAction{Confirmed: false}, actions[0])
}
