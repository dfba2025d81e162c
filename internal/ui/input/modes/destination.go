package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"filegrip/internal/ui/input/types"
)

// DestinationMode collects the target directory for a move or copy
type DestinationMode struct {
	TextInputMode
}

func NewDestinationMode(ti *textinput.Model) *DestinationMode {
	return &DestinationMode{
		TextInputMode: NewTextInputMode(types.ModeDestination, "destination", "Destination: ", ti),
	}
}
