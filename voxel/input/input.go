// Package input turns device key events or scripts into per-frame button
// snapshots.
//
// Camera control is level-triggered: it only looks at Snapshot.Held. New is
// kept for app-level toggles.
package input

import "strings"

// Buttons is a bitset of held buttons.
type Buttons uint16

const (
	Left Buttons = 1 << iota
	Right
	Up
	Down
	Forward
	Back
	Start
	Select
)

var buttonNames = [...]string{"left", "right", "up", "down", "forward", "back", "start", "select"}

func (b Buttons) Has(x Buttons) bool { return b&x != 0 }

func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}
	var parts []string
	for i, name := range buttonNames {
		if b&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Snapshot is the input state for one frame.
type Snapshot struct {
	Held Buttons
	// New holds buttons that went down since the previous snapshot.
	New Buttons
}

// Next returns the snapshot that follows s when held is the new button state.
func (s Snapshot) Next(held Buttons) Snapshot {
	return Snapshot{Held: held, New: held & (s.Held ^ held)}
}

// Source produces one snapshot per frame.
type Source interface {
	Next() (Snapshot, error)
}
