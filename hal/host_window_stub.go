//go:build !tinygo && !cgo

package hal

import "errors"

// RunWindow is unavailable without cgo. -headless and -term need no window.
func RunWindow(_ func(HAL) func() error) error {
	return errors.New("hal: the window needs cgo; rebuild with CGO_ENABLED=1 or run with -headless or -term")
}
