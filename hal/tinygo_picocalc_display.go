//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf []byte
	row   []uint16
}

func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	lcd := &ili9488{
		spi:   *machine.SPI1,
		cs:    machine.GP13,
		dc:    machine.GP14,
		rst:   machine.GP15,
		txBuf: make([]byte, 4096),
		row:   make([]uint16, ScreenWidth),
	}

	lcd.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.cs.High()
	lcd.dc.High()
	lcd.rst.High()

	lcd.reset()
	lcd.init()
	lcd.fill(0)

	return lcd, nil
}

func (d *ili9488) reset() {
	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)
}

func (d *ili9488) init() {
	// Power control.
	d.cmd(0xC0, 0x17, 0x15) // PWCTRL1
	d.cmd(0xC1, 0x41)       // PWCTRL2

	// VCOM control.
	d.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL

	// Pixel format: 16bpp.
	d.cmd(0x3A, 0x55) // COLMOD

	// Frame rate / display function.
	d.cmd(0xB1, 0xA0, 0x11)       // FRMCTRL1
	d.cmd(0xB6, 0x02, 0x22, 0x27) // DISCTRL (320 lines)

	// Inversion mode. Many panels look correct with inversion enabled.
	d.cmd(0x21) // INVON

	// Memory access control: mirror for PicoCalc wiring + BGR panel order.
	d.cmd(0x36, 0x40|0x04|0x08) // MX|MH|BGR

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
}

func (d *ili9488) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *ili9488) setWindow(x0, y0, x1, y1 uint16) {
	d.cmd(
		0x2A,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	)
	d.cmd(
		0x2B,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
	d.cmd(0x2C)
}

const (
	panelWidth  = 320
	panelHeight = 320
)

// fill paints the whole panel with one RGB565 color.
func (d *ili9488) fill(c uint16) {
	d.setWindow(0, 0, panelWidth-1, panelHeight-1)

	d.cs.Low()
	d.dc.High()
	chunk := d.txBuf[:len(d.txBuf)&^1]
	for i := 0; i < len(chunk); i += 2 {
		chunk[i] = byte(c >> 8)
		chunk[i+1] = byte(c)
	}
	for remain := panelWidth * panelHeight * 2; remain > 0; {
		n := len(chunk)
		if n > remain {
			n = remain
		}
		d.spi.Tx(chunk[:n], nil)
		remain -= n
	}
	d.cs.High()
}

// blitFront pushes the visible page of f, converted through its palettes,
// centred on the panel.
func (d *ili9488) blitFront(f *pagedFramebuffer) error {
	w, h := f.width, f.height
	if w > panelWidth || h > panelHeight || len(d.txBuf) < w*2 {
		return errors.New("invalid framebuffer")
	}
	x0 := uint16(panelWidth-w) / 2
	y0 := uint16(panelHeight-h) / 2
	d.setWindow(x0, y0, x0+uint16(w)-1, y0+uint16(h)-1)

	f.mu.Lock()
	defer f.mu.Unlock()

	d.cs.Low()
	d.dc.High()
	chunk := d.txBuf[:w*2]
	for y := 0; y < h; y++ {
		f.frontRow(y, d.row)
		for x, p := range d.row {
			// The LCD expects big-endian RGB565.
			chunk[x*2] = byte(p >> 8)
			chunk[x*2+1] = byte(p)
		}
		d.spi.Tx(chunk, nil)
	}
	d.cs.High()
	return nil
}
