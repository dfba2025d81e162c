package selection

// State holds selection state
type State struct {
	Selected map[string]bool
}
