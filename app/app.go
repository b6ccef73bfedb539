package app

import (
	"errors"
	"fmt"
	"time"

	"voxelspace/hal"
	"voxelspace/internal/buildinfo"
	"voxelspace/voxel/camera"
	"voxelspace/voxel/hud"
	"voxelspace/voxel/input"
	"voxelspace/voxel/render"
	"voxelspace/voxel/terrain"
)

// engine runs one frame per step: input, camera, render, HUD, present.
type engine struct {
	h   hal.HAL
	cfg Config
	log hal.Logger
	fb  hal.Framebuffer

	field *terrain.Field
	cam   *camera.Camera
	r     *render.Renderer
	hud   *hud.HUD

	src     input.Source
	tracker *input.Tracker
	script  *input.Script

	showHUD bool
	stats   frameStats
}

// NewWithConfig loads assets and returns the per-frame step function. Setup
// failures are reported by the first call to step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	e, err := newEngine(h, cfg.withDefaults())
	if err != nil {
		logLine(h, "app: "+err.Error())
		return func() error { return err }
	}
	return e.safeStep
}

// RunWithConfig steps the engine once every cfg.FrameTicks hal ticks. It
// blocks forever; after the engine stops or fails the last frame stays on
// screen.
func RunWithConfig(h hal.HAL, cfg Config) {
	cfg = cfg.withDefaults()
	step := NewWithConfig(h, cfg)
	p := NewPacer(h.Time(), cfg.FrameTicks)
	for {
		p.Wait()
		if err := step(); err != nil {
			if !errors.Is(err, hal.ErrStopped) {
				logLine(h, "app: halted: "+err.Error())
			}
			select {}
		}
	}
}

func newEngine(h hal.HAL, cfg Config) (*engine, error) {
	e := &engine{
		h:       h,
		cfg:     cfg,
		log:     h.Logger(),
		cam:     camera.New(),
		r:       render.New(),
		hud:     hud.New(),
		showHUD: cfg.HUD,
	}
	e.logf("app: voxelspace %s", buildinfo.Long())

	if d := h.Display(); d != nil {
		e.fb = d.Framebuffer()
	}
	if e.fb == nil {
		return nil, errors.New("app: no display")
	}
	if e.fb.Format() != hal.PixelFormatIndexed8 {
		return nil, fmt.Errorf("app: display format %d is not indexed", e.fb.Format())
	}
	if _, err := render.NewTarget(e.fb.Buffer(), e.fb.StrideBytes()); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	if cfg.Field == nil && cfg.TerrainPath == "" {
		splash(e.fb, "generating terrain...")
	}
	field, pal, origin, err := loadAssets(cfg)
	if err != nil {
		return nil, err
	}
	e.field = field
	e.logf("app: terrain %s", origin)
	e.fb.SetPalette(hal.LayerBackground, (*[256]uint16)(pal))
	e.fb.SetPalette(hal.LayerOverlay, (*[256]uint16)(hud.Palette()))

	var kbd hal.Keyboard
	if in := h.Input(); in != nil {
		kbd = in.Keyboard()
	}
	e.tracker = input.NewTracker(kbd)
	e.src = e.tracker
	if cfg.ScriptPath != "" {
		s, err := input.LoadScript(cfg.ScriptPath)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		e.script = s
		e.src = s
		e.logf("app: input script %s", cfg.ScriptPath)
	}
	return e, nil
}

func (e *engine) step() error {
	if e.script != nil {
		// Keep draining the keyboard so Escape still quits.
		if _, err := e.tracker.Next(); err != nil {
			return err
		}
	}
	snap, err := e.src.Next()
	if err != nil {
		err = fmt.Errorf("app: input: %w", err)
		e.logf("%v", err)
		return err
	}
	if e.tracker.QuitRequested() {
		e.stop("quit")
		return hal.ErrStopped
	}
	if snap.New.Has(input.Select) {
		e.showHUD = !e.showHUD
	}
	if snap.New.Has(input.Start) {
		e.cam = camera.New()
	}

	e.cam.Update(snap.Held)

	t, err := render.NewTarget(e.fb.Buffer(), e.fb.StrideBytes())
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	start := time.Now()
	e.r.Render(t, e.cam, e.field)
	end := time.Now()

	text := ""
	if e.showHUD {
		x, y := e.cam.Position()
		text = hud.Format(x, y, e.cam.Height, e.stats.fps, e.stats.last)
	}
	e.hud.SetText(text)
	e.hud.Compose(e.fb.Overlay(), e.fb.Width(), e.fb.Height(), e.fb.StrideBytes())

	if err := e.fb.Present(); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}

	e.stats.frame(end, end.Sub(start))
	if n := e.cfg.StatsEvery; n > 0 && e.stats.frames%n == 0 {
		x, y := e.cam.Position()
		e.logf("app: frame=%d fps=%d render=%dus avg=%dus pos=%d,%d,%d",
			e.stats.frames, e.stats.fps, e.stats.last.Microseconds(),
			e.stats.averageRender().Microseconds(), x, y, e.cam.Height)
	}
	if e.cfg.MaxFrames > 0 && e.stats.frames >= e.cfg.MaxFrames {
		e.stop("frame limit")
		return hal.ErrStopped
	}
	return nil
}

func (e *engine) stop(reason string) {
	e.logf("app: stopped (%s) after %d frames", reason, e.stats.frames)
	if e.script != nil {
		e.script.Close()
		e.script = nil
	}
}

func (e *engine) logf(format string, args ...any) {
	if e.log != nil {
		e.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

func logLine(h hal.HAL, s string) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(s)
	}
}
