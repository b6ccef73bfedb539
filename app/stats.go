package app

import "time"

// fpsWindow is the number of frames the frame rate is averaged over.
const fpsWindow = 60

// frameStats tracks the frame rate and render time shown on the HUD.
type frameStats struct {
	frames uint64

	windowStart time.Time
	windowCount int
	fps         int

	last  time.Duration
	total time.Duration
}

// frame records one finished frame that spent render in the renderer.
func (s *frameStats) frame(now time.Time, render time.Duration) {
	s.frames++
	s.last = render
	s.total += render

	if s.windowStart.IsZero() {
		s.windowStart = now
		return
	}
	s.windowCount++
	if s.windowCount < fpsWindow {
		return
	}
	if el := now.Sub(s.windowStart); el > 0 {
		s.fps = int((time.Duration(s.windowCount)*time.Second + el/2) / el)
	}
	s.windowStart = now
	s.windowCount = 0
}

// averageRender is the mean render time over all frames.
func (s *frameStats) averageRender() time.Duration {
	if s.frames == 0 {
		return 0
	}
	return s.total / time.Duration(s.frames)
}
