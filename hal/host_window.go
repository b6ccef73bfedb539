//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"voxelspace/internal/buildinfo"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or the step function stops. A failing
// step leaves its last frame visible until Escape or close.
//
// Update runs at 60 TPS, one engine frame per tick.
func RunWindow(newApp func(HAL) func() error) error {
	kbd := newHostKeyboard()
	h := newHostHAL(kbd)
	step := newApp(h)

	g := &hostGame{h: h, kbd: kbd, run: heldStep{step: step}}
	ebiten.SetWindowTitle("voxelspace (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*3, h.fb.height*3)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ErrStopped) {
		return err
	}
	return g.run.failed
}

type hostGame struct {
	h     *hostHAL
	kbd   *hostKeyboard
	img   *image.RGBA
	fbImg *ebiten.Image
	run   heldStep
}

func (g *hostGame) Update() error {
	g.kbd.poll()
	g.h.t.step(1)
	return g.run.update(ebiten.IsKeyPressed(ebiten.KeyEscape))
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGBA(g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
