// Copyright 2026 The HCSR04 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pulsein measures the width of logic-high pulses on a GPIO input.
//
// Capture models a pulse-duration capture peripheral: a paused/running
// recorder with a buffer of pulse widths in microsecond ticks. There is no
// background goroutine and no edge interrupt; the capture advances by
// polling, one line sample per Pending call, so the caller's wait loop sets
// the sampling rate. This keeps the package portable to hosts whose GPIO
// drivers have no usable edge detection, at the cost of occupying the
// calling goroutine.
package pulsein

import (
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Overflow is the width reported when the line holds the high level for
// 65535 ticks or longer without coming back down, meaning the pulse never
// completed.
const Overflow uint16 = 0xFFFF

// tick is the unit widths are reported in.
const tick = time.Microsecond

var now = time.Now

// Capture records the widths of logic-high pulses on a single GPIO input.
//
// A new Capture is paused with an empty buffer. It is not safe for
// concurrent use.
type Capture struct {
	pin     gpio.PinIO
	running bool
	high    bool      // a pulse is in flight
	rose    time.Time // when the line went high, valid while high
	buf     []uint16
}

// New configures p as a pulled-down input and returns a paused, empty
// Capture on it.
func New(p gpio.PinIO) (*Capture, error) {
	if err := p.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, err
	}
	return &Capture{pin: p}, nil
}

func (c *Capture) String() string {
	return "pulsein{" + c.pin.Name() + "}"
}

// Clear discards all buffered widths and any pulse in flight.
func (c *Capture) Clear() {
	c.buf = c.buf[:0]
	c.high = false
}

// Resume starts recording pulses. Sampling only happens inside Pending, so
// after Resume the caller must poll Pending to make progress.
func (c *Capture) Resume() {
	c.running = true
}

// Pause stops recording. Buffered widths are kept for reading; a pulse in
// flight is abandoned.
func (c *Capture) Pause() {
	c.running = false
	c.high = false
}

// Pending samples the line once if the capture is running and returns how
// many widths are buffered.
func (c *Capture) Pending() int {
	if c.running {
		c.sample()
	}
	return len(c.buf)
}

// At returns the i-th buffered width in ticks. It panics if i is out of
// range; use Pending to learn how many widths are buffered.
func (c *Capture) At(i int) uint16 {
	return c.buf[i]
}

// Halt implements conn.Resource. It pauses the capture, discards the buffer
// and returns the line to high impedance so another driver can claim it.
func (c *Capture) Halt() error {
	c.Pause()
	c.Clear()
	return c.pin.In(gpio.Float, gpio.NoEdge)
}

// sample advances the recorder by one line reading.
func (c *Capture) sample() {
	lvl := c.pin.Read()
	if !c.high {
		if lvl == gpio.High {
			c.high = true
			c.rose = now()
		}
		return
	}
	elapsed := now().Sub(c.rose)
	if lvl == gpio.Low {
		c.high = false
		c.buf = append(c.buf, width(elapsed))
	} else if elapsed >= time.Duration(Overflow)*tick {
		// The line never came back down. Report the sentinel and stop
		// tracking so a later falling edge is not recorded twice.
		c.high = false
		c.buf = append(c.buf, Overflow)
	}
}

// width converts an elapsed duration to ticks, saturating at Overflow.
func width(d time.Duration) uint16 {
	t := d / tick
	if t >= time.Duration(Overflow) {
		return Overflow
	}
	return uint16(t)
}

var _ conn.Resource = &Capture{}
