// Package hwreset drives the optional hardware RESET_N line some
// carrier boards wire to the receiver, for a cold reset that doesn't
// rely on the receiver itself acting on UBX-CFG-RST.
package hwreset

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Line drives a single active-low reset pin. A zero-value Line (no pin
// configured) makes Pulse a no-op, so the driver runs the same on boards
// without a wired reset line.
type Line struct {
	pin gpio.PinIO
}

// Open initializes periph's host drivers and binds Line to the named
// GPIO pin, idling it high (inactive). pinName is any name periph's
// gpioreg knows about, such as "GPIO27"; an empty pinName returns a
// no-op Line.
func Open(pinName string) (*Line, error) {
	if pinName == "" {
		return &Line{}, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("hwreset: %w", err)
	}
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("hwreset: unknown pin %q", pinName)
	}
	if err := pin.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("hwreset: %w", err)
	}
	return &Line{pin: pin}, nil
}

// Pulse drives the reset line low for the given duration, then releases
// it high again. It blocks for the duration of the pulse.
func (l *Line) Pulse(low time.Duration) error {
	if l.pin == nil {
		return nil
	}
	if err := l.pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("hwreset: %w", err)
	}
	time.Sleep(low)
	if err := l.pin.Out(gpio.High); err != nil {
		return fmt.Errorf("hwreset: %w", err)
	}
	return nil
}

// Wired reports whether a real GPIO pin backs this Line.
func (l *Line) Wired() bool { return l.pin != nil }
