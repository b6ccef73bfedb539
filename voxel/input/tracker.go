package input

import "voxelspace/hal"

// Tracker folds hal key events into held-button state.
type Tracker struct {
	kbd  hal.Keyboard
	held Buttons
	last Snapshot
	quit bool
}

func NewTracker(kbd hal.Keyboard) *Tracker {
	return &Tracker{kbd: kbd}
}

// Next drains pending key events and returns the current snapshot.
func (t *Tracker) Next() (Snapshot, error) {
	if t.kbd != nil {
		ch := t.kbd.Events()
	drain:
		for {
			select {
			case ev, ok := <-ch:
				if !ok {
					break drain
				}
				t.apply(ev)
			default:
				break drain
			}
		}
	}
	t.last = t.last.Next(t.held)
	return t.last, nil
}

// QuitRequested reports whether Escape was pressed.
func (t *Tracker) QuitRequested() bool { return t.quit }

func (t *Tracker) apply(ev hal.KeyEvent) {
	if ev.Code == hal.KeyEscape && ev.Press {
		t.quit = true
		return
	}
	b := buttonFor(ev.Code)
	if b == 0 {
		return
	}
	if ev.Press {
		t.held |= b
	} else {
		t.held &^= b
	}
}

func buttonFor(code hal.KeyCode) Buttons {
	switch code {
	case hal.KeyLeft:
		return Left
	case hal.KeyRight:
		return Right
	case hal.KeyUp:
		return Up
	case hal.KeyDown:
		return Down
	case hal.KeyA:
		return Forward
	case hal.KeyB:
		return Back
	case hal.KeyStart:
		return Start
	case hal.KeySelect:
		return Select
	default:
		return 0
	}
}
