//go:build !tinygo

package hal

import "errors"

// heldStep runs a step function until it fails. After a failure other than
// ErrStopped the last frame stays on screen and the error is returned only
// once the user quits.
type heldStep struct {
	step   func() error
	failed error
}

func (s *heldStep) update(quit bool) error {
	if s.failed != nil {
		if quit {
			return s.failed
		}
		return nil
	}
	if s.step == nil {
		return nil
	}
	err := s.step()
	if err == nil || errors.Is(err, ErrStopped) {
		return err
	}
	s.failed = err
	return nil
}
