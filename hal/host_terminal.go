//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the tcell runner.
type TerminalConfig struct {
	Hz    int
	Ticks uint64
	// HoldWindow is how long a key counts as held after its last press or
	// auto-repeat. Terminals do not report key releases.
	HoldWindow time.Duration
}

// RunTerminal renders the visible page into the terminal with half-block
// cells, two pixels per cell, downscaled to fit.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if cfg.HoldWindow <= 0 {
		cfg.HoldWindow = 150 * time.Millisecond
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	kbd := newTermKeyboard(cfg.HoldWindow)
	h := newHostHAL(kbd)
	// Log lines would scroll the screen.
	h.logger.w = io.Discard
	step := newApp(h)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			default:
			}
		}
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if code := termKeyCode(ev); code != KeyUnknown {
					kbd.press(code, time.Now())
				}
			}
		case now := <-t.C:
			kbd.expire(now)
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrStopped) {
						return nil
					}
					return err
				}
			}
			w, ht := screen.Size()
			drawTerminal(screen, h.fb.pagedFramebuffer, w, ht)
			screen.Show()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func termKeyCode(ev *tcell.EventKey) KeyCode {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyStart
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeySelect
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyF1:
		return KeyF1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'z', 'Z', 'a', 'A', ' ':
			return KeyA
		case 'x', 'X', 'b', 'B':
			return KeyB
		case 'q', 'Q':
			return KeyEscape
		}
	}
	return KeyUnknown
}

type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// terminalScale returns the smallest integer pixel step that fits a w×h
// surface into cols×rows half-block cells.
func terminalScale(w, h, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 0
	}
	s := (w + cols - 1) / cols
	if sv := (h + 2*rows - 1) / (2 * rows); sv > s {
		s = sv
	}
	if s < 1 {
		s = 1
	}
	return s
}

func drawTerminal(dst cellSetter, f *pagedFramebuffer, cols, rows int) {
	s := terminalScale(f.width, f.height, cols, rows)
	if s == 0 {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	top := make([]uint16, f.width)
	bot := make([]uint16, f.width)
	for cy := 0; cy*2*s < f.height; cy++ {
		f.frontRow(cy*2*s, top)
		if y := cy*2*s + s; y < f.height {
			f.frontRow(y, bot)
		} else {
			copy(bot, top)
		}
		for cx := 0; cx*s < f.width; cx++ {
			style := tcell.StyleDefault.
				Foreground(tcellColor(top[cx*s])).
				Background(tcellColor(bot[cx*s]))
			dst.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

func tcellColor(p uint16) tcell.Color {
	r, g, b := rgb888From565(p)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// termKeyboard turns press-only terminal key events into press/release
// pairs using a hold window.
type termKeyboard struct {
	ch   chan KeyEvent
	hold time.Duration
	seen map[KeyCode]time.Time
}

func newTermKeyboard(hold time.Duration) *termKeyboard {
	return &termKeyboard{
		ch:   make(chan KeyEvent, 64),
		hold: hold,
		seen: make(map[KeyCode]time.Time),
	}
}

func (k *termKeyboard) Events() <-chan KeyEvent { return k.ch }

// press marks code as held. A press dropped on a full channel is not
// recorded, so no unmatched release follows it.
func (k *termKeyboard) press(code KeyCode, now time.Time) {
	if _, held := k.seen[code]; !held && !k.emit(KeyEvent{Code: code, Press: true}) {
		return
	}
	k.seen[code] = now
}

// expire releases keys not repeated within the hold window. A release that
// does not fit is retried on the next call.
func (k *termKeyboard) expire(now time.Time) {
	for code, last := range k.seen {
		if now.Sub(last) >= k.hold && k.emit(KeyEvent{Code: code, Press: false}) {
			delete(k.seen, code)
		}
	}
}

func (k *termKeyboard) emit(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}
