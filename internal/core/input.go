// Package core provides fundamental types shared by the platform layers.
// It has no external dependencies (especially no Bubble Tea) so input
// handling stays testable.
package core

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move category cursor up
	ActionDown           // S, Down arrow - move category cursor down
	ActionRoll           // Space, R - roll or re-roll
	ActionConfirm        // Enter - commit selected category / buy package
	ActionBack           // B, Escape - close popup, cancel, back to menu
	ActionShop           // G - open the gem shop
	ActionRestart        // N - new game after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionHold1          // 1 - toggle hold on die 1
	ActionHold2          // 2
	ActionHold3          // 3
	ActionHold4          // 4
	ActionHold5          // 5
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRoll:
		return "Roll"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionShop:
		return "Shop"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	}
	if i, ok := a.DieIndex(); ok {
		return "Hold" + string(rune('1'+i))
	}
	return "Unknown"
}

// HoldAction returns the hold action for a 0-based die index.
func HoldAction(index int) Action {
	if index < 0 || index > int(ActionHold5-ActionHold1) {
		return ActionNone
	}
	return ActionHold1 + Action(index)
}

// DieIndex returns the 0-based die index for hold actions.
func (a Action) DieIndex() (int, bool) {
	if a < ActionHold1 || a > ActionHold5 {
		return 0, false
	}
	return int(a - ActionHold1), true
}
