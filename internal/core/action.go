package core

import "strings"

// Action represents a semantic puzzle action, abstracted from whatever
// controller (script, CLI, UI) produced it.
type Action int

const (
	ActionNone       Action = iota
	ActionRotate            // rotate one cell clockwise
	ActionMove              // move the power station one step
	ActionRegenerate        // new puzzle, same size, same station cell
	ActionSolve             // re-apply the spanning tree wiring ("give up")
	ActionReset             // new puzzle with the station back at the origin
	ActionTick              // advance the puzzle clock
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionRotate:     "rotate",
	ActionMove:       "move",
	ActionRegenerate: "regenerate",
	ActionSolve:      "solve",
	ActionReset:      "reset",
	ActionTick:       "tick",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps a name (case-insensitive) back to an Action.
func ParseAction(s string) (Action, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range actionNames {
		if name == s {
			return a, true
		}
	}
	return ActionNone, false
}
