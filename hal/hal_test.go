//go:build !tinygo

package hal

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPagedFramebufferFlip(t *testing.T) {
	f := newHostFramebuffer(ScreenWidth, ScreenHeight)
	if f.Format() != PixelFormatIndexed8 || f.StrideBytes() != ScreenWidth {
		t.Fatalf("format %d stride %d", f.Format(), f.StrideBytes())
	}

	first := f.Buffer()
	f.ClearIndex(7)
	if err := f.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	second := f.Buffer()
	if &first[0] == &second[0] {
		t.Fatalf("Buffer() returned the visible page after Present")
	}
	if second[0] == 7 {
		t.Fatalf("back page shares pixels with the front page")
	}
	if err := f.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if &f.Buffer()[0] != &first[0] {
		t.Fatalf("pages did not alternate")
	}
	if f.Flips() != 2 {
		t.Fatalf("Flips() = %d, want 2", f.Flips())
	}
}

func TestSnapshotComposesOverlay(t *testing.T) {
	f := newHostFramebuffer(4, 2)
	var bg, over [256]uint16
	bg[3] = 0xF800 // red
	over[1] = 0x001F
	f.SetPalette(LayerBackground, &bg)
	f.SetPalette(LayerOverlay, &over)

	f.ClearIndex(3)
	f.Overlay()[1] = 1
	if err := f.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	img, err := Snapshot(f)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if got := img.RGBAAt(0, 0); got.R != 0xFF || got.B != 0 {
		t.Fatalf("pixel 0 = %+v, want red", got)
	}
	if got := img.RGBAAt(1, 0); got.B != 0xFF || got.R != 0 {
		t.Fatalf("pixel 1 = %+v, want overlay blue", got)
	}
}

type fakeFramebuffer struct{ Framebuffer }

func TestSnapshotUnsupported(t *testing.T) {
	if _, err := Snapshot(fakeFramebuffer{}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("err = %v, want ErrNotImplemented", err)
	}
}

func TestTermKeyboardHoldWindow(t *testing.T) {
	k := newTermKeyboard(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	k.press(KeyUp, t0)
	k.press(KeyUp, t0.Add(50*time.Millisecond)) // auto-repeat
	k.expire(t0.Add(120 * time.Millisecond))

	select {
	case ev := <-k.Events():
		if ev.Code != KeyUp || !ev.Press {
			t.Fatalf("first event = %+v, want KeyUp press", ev)
		}
	default:
		t.Fatalf("no press event")
	}
	select {
	case ev := <-k.Events():
		t.Fatalf("unexpected event before hold window: %+v", ev)
	default:
	}

	k.expire(t0.Add(150 * time.Millisecond))
	select {
	case ev := <-k.Events():
		if ev.Code != KeyUp || ev.Press {
			t.Fatalf("event = %+v, want KeyUp release", ev)
		}
	default:
		t.Fatalf("no release after hold window")
	}
}

func TestTermKeyboardFullChannel(t *testing.T) {
	k := newTermKeyboard(100 * time.Millisecond)
	t0 := time.Unix(0, 0)
	for i := 0; i < cap(k.ch); i++ {
		k.ch <- KeyEvent{Code: KeyA, Press: true}
	}

	k.press(KeyUp, t0)
	if _, held := k.seen[KeyUp]; held {
		t.Fatalf("dropped press recorded as held")
	}
	k.expire(t0.Add(time.Second))
	for len(k.ch) > 0 {
		if ev := <-k.ch; ev.Code == KeyUp {
			t.Fatalf("event %+v for a dropped press", ev)
		}
	}

	k.press(KeyUp, t0)
	if ev := <-k.ch; ev.Code != KeyUp || !ev.Press {
		t.Fatalf("event = %+v, want KeyUp press", ev)
	}
	for i := 0; i < cap(k.ch); i++ {
		k.ch <- KeyEvent{Code: KeyA, Press: true}
	}
	k.expire(t0.Add(time.Second))
	if _, held := k.seen[KeyUp]; !held {
		t.Fatalf("release dropped but key forgotten")
	}
	<-k.ch
	k.expire(t0.Add(time.Second))
	if _, held := k.seen[KeyUp]; held {
		t.Fatalf("key still held after its release was sent")
	}
}

func TestHeldStepKeepsFailure(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	s := heldStep{step: func() error {
		calls++
		return boom
	}}
	for i := 0; i < 3; i++ {
		if err := s.update(false); err != nil {
			t.Fatalf("update %d = %v, want nil while the failure is shown", i, err)
		}
	}
	if calls != 1 {
		t.Fatalf("step called %d times after failing, want 1", calls)
	}
	if err := s.update(true); !errors.Is(err, boom) {
		t.Fatalf("update(quit) = %v, want %v", err, boom)
	}

	stopped := heldStep{step: func() error { return ErrStopped }}
	if err := stopped.update(false); !errors.Is(err, ErrStopped) {
		t.Fatalf("update = %v, want ErrStopped", err)
	}
	if stopped.failed != nil {
		t.Fatalf("ErrStopped kept as a failure")
	}
}

func TestTermKeyCode(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want KeyCode
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyStart},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), KeyA},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyA},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), KeyB},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyEscape},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), KeyUnknown},
	}
	for _, tt := range tests {
		if got := termKeyCode(tt.ev); got != tt.want {
			t.Errorf("termKeyCode(%v) = %d, want %d", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestTerminalScale(t *testing.T) {
	tests := []struct {
		cols, rows, want int
	}{
		{240, 80, 1},
		{300, 100, 1},
		{120, 40, 2},
		{80, 24, 4},
		{0, 24, 0},
	}
	for _, tt := range tests {
		if got := terminalScale(240, 160, tt.cols, tt.rows); got != tt.want {
			t.Errorf("terminalScale(%d,%d) = %d, want %d", tt.cols, tt.rows, got, tt.want)
		}
	}
}

type cellGrid map[[2]int]tcell.Style

func (g cellGrid) SetContent(x, y int, _ rune, _ []rune, style tcell.Style) {
	g[[2]int{x, y}] = style
}

func TestDrawTerminalFitsScreen(t *testing.T) {
	f := newHostFramebuffer(ScreenWidth, ScreenHeight)
	f.Present()
	g := cellGrid{}
	drawTerminal(g, f.pagedFramebuffer, 80, 24)
	for pos := range g {
		if pos[0] >= 80 || pos[1] >= 24 {
			t.Fatalf("cell %v outside 80x24", pos)
		}
	}
	if len(g) != 60*20 {
		t.Fatalf("drew %d cells, want %d", len(g), 60*20)
	}
}
