//go:build tinygo && baremetal && picocalc

package hal

import (
	"machine"
	"time"
)

type picoCalcHAL struct {
	logger *uartLogger
	fb     Framebuffer
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. The 240×160 surface is
// shown centred on the 320×320 panel.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var fb Framebuffer
	if disp, err := newPicoCalcDisplay(); err == nil {
		fb = disp
	} else {
		logger.WriteLineString("hal: display: " + err.Error())
		fb = newHeadlessFramebuffer(ScreenWidth, ScreenHeight)
	}

	var kbd Keyboard
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	} else {
		logger.WriteLineString("hal: " + err.Error())
		kbd = &stubKeyboard{}
	}

	return &picoCalcHAL{
		logger: logger,
		fb:     fb,
		kbd:    kbd,
		t:      newTinyGoTime(),
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *picoCalcHAL) Time() Time       { return h.t }

type picoCalcFramebuffer struct {
	*pagedFramebuffer

	lcd *ili9488
}

// Present flips pages and pushes the new front page to the panel.
func (f *picoCalcFramebuffer) Present() error {
	f.flip()
	return f.lcd.blitFront(f.pagedFramebuffer)
}

func newPicoCalcDisplay() (*picoCalcFramebuffer, error) {
	lcd, err := initILI9488()
	if err != nil {
		return nil, err
	}
	return &picoCalcFramebuffer{
		pagedFramebuffer: newPagedFramebuffer(ScreenWidth, ScreenHeight),
		lcd:              lcd,
	}, nil
}

type picoCalcKeyboard struct {
	ch chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	dev := &picoCalcKeyboard{ch: make(chan KeyEvent, 64)}
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}

	go func() {
		defer close(dev.ch)
		for {
			ev, ok := kbd.readEvent()
			if ok {
				select {
				case dev.ch <- ev:
				default:
				}
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()

	return dev, nil
}
