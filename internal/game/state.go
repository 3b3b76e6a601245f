// Package game wires configuration, generation and the interactive viewer.
package game

// State represents the current viewer mode.
type State int

const (
	// StateSurvey shows the whole map with no cursor.
	StateSurvey State = iota
	// StateExplore shows the explorer, who moves over floor tiles.
	StateExplore
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSurvey:
		return "survey"
	case StateExplore:
		return "explore"
	default:
		return "unknown"
	}
}
