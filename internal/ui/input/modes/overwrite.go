package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"filegrip/internal/ui/input/types"
)

// OverwriteMode asks how to handle destination collisions before a
// move or copy runs.
type OverwriteMode struct{}

func NewOverwriteMode() *OverwriteMode {
	return &OverwriteMode{}
}

func (m *OverwriteMode) Name() string {
	return "overwrite"
}

func (m *OverwriteMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *OverwriteMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *OverwriteMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "o", "O":
		return []types.Action{
			types.ChooseOverwriteAction{Strategy: "overwrite"},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "r", "R":
		return []types.Action{
			types.ChooseOverwriteAction{Strategy: "rename"},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "s", "S":
		return []types.Action{
			types.ChooseOverwriteAction{Strategy: "skip"},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "esc":
		return []types.Action{
			types.ConfirmAction{Confirmed: false},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return nil, false
}
