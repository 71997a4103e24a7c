// Copyright 2026 The HCSR04 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hcsr04

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/gosensors/hcsr04/pulsein"
)

// NoReading is returned by DistanceCm when no usable echo was obtained this
// cycle: nothing answered within the timeout, or the echo pulse never ended
// because nothing was in range. Both mean "try again", not a fault.
const NoReading = -1.0

// MinTimeout is the smallest accepted echo timeout. Below it the sensor's
// own echo latency becomes indistinguishable from a timeout.
const MinTimeout = 50 * time.Millisecond

// triggerPulse is the datasheet's minimum trigger pulse width. Shorter
// pulses are unreliable, longer ones only delay the measurement.
const triggerPulse = 10 * time.Microsecond

// usPerCm is the one-way travel time of sound per centimeter of distance,
// from 343.2m/s in dry air at 20°C.
const usPerCm = 29.1

// Opts holds the configuration options for the sensor.
type Opts struct {
	// Timeout is the longest DistanceCm waits for an echo before giving up
	// and returning NoReading. Must be at least MinTimeout; leave 0 to use
	// the default. The default of 100ms sits comfortably above the ~23ms
	// round trip of the sensor's rated 400cm range.
	Timeout time.Duration
}

// DefaultOpts holds the default configuration options for the sensor.
var DefaultOpts = Opts{
	Timeout: 100 * time.Millisecond,
}

// echoCapture is the pulse recorder DistanceCm drives. *pulsein.Capture is
// the hardware implementation.
type echoCapture interface {
	Clear()
	Resume()
	Pause()
	Pending() int
	At(i int) uint16
	Halt() error
}

// Dev is a handle to an HC-SR04 ultrasonic range sensor wired to a trigger
// output and an echo input.
//
// A Dev owns both lines exclusively until Halt. It performs no internal
// locking: a measurement blocks the calling goroutine for up to the
// configured timeout, and callers measuring from several goroutines must
// serialize access themselves.
type Dev struct {
	trig     gpio.PinIO
	echo     echoCapture
	timeout  time.Duration
	released bool

	trigName string
	echoName string
}

var (
	sleep = time.Sleep
	now   = time.Now
)

// New claims the trigger and echo lines and returns a sensor ready to
// measure. The trigger line is driven push-pull and left low; the echo line
// is configured for pulse capture, paused and cleared. opts can be nil for
// the defaults.
//
// New fails with a *PinConfigurationError when either line cannot be
// resolved or claimed, and leaves no line claimed in that case.
func New(trig, echo Pin, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultOpts.Timeout
	}
	if timeout < MinTimeout {
		return nil, fmt.Errorf("hcsr04: timeout %s is below the %s minimum", timeout, MinTimeout)
	}

	t, err := trig.resolve()
	if err != nil {
		return nil, &PinConfigurationError{Line: "trig", Name: trig.String(), Cause: err}
	}
	if err := t.Out(gpio.Low); err != nil {
		return nil, &PinConfigurationError{Line: "trig", Name: t.Name(), Cause: err}
	}
	e, err := echo.resolve()
	if err != nil {
		_ = t.In(gpio.Float, gpio.NoEdge) // release the trigger claimed above
		return nil, &PinConfigurationError{Line: "echo", Name: echo.String(), Cause: err}
	}
	c, err := pulsein.New(e)
	if err != nil {
		_ = t.In(gpio.Float, gpio.NoEdge)
		return nil, &PinConfigurationError{Line: "echo", Name: e.Name(), Cause: err}
	}
	return &Dev{
		trig:     t,
		echo:     c,
		timeout:  timeout,
		trigName: t.Name(),
		echoName: e.Name(),
	}, nil
}

func (d *Dev) String() string {
	return "HCSR04{trig:" + d.trigName + ", echo:" + d.echoName + "}"
}

// DistanceCm triggers one measurement and returns the distance to the
// nearest reflecting object in centimeters.
//
// It returns NoReading with a nil error when no usable echo was obtained;
// poll again on your own cadence. A non-nil error means the sensor was
// already released or the trigger line faulted, never a missed echo.
//
// The wait for the echo is a tight poll, not a sleeping one: expected
// latency is tens of microseconds to tens of milliseconds, and the poll is
// bounded by the configured timeout.
func (d *Dev) DistanceCm() (float64, error) {
	if d.released {
		return 0, &NotInitializedError{}
	}

	// A previous ping can leave a stale width behind, e.g. from the
	// sensor's own resonance. Never read it as this cycle's echo.
	d.echo.Clear()

	if err := d.trig.Out(gpio.High); err != nil {
		return 0, err
	}
	sleep(triggerPulse)
	if err := d.trig.Out(gpio.Low); err != nil {
		return 0, err
	}

	deadline := now().Add(d.timeout)
	d.echo.Resume()
	for d.echo.Pending() == 0 {
		if now().After(deadline) {
			d.echo.Pause()
			return NoReading, nil
		}
	}
	d.echo.Pause()

	ticks := d.echo.At(0)
	if ticks == pulsein.Overflow {
		return NoReading, nil
	}
	return convert(ticks), nil
}

// Measure is DistanceCm in periph-native units. The no-reading sentinel is
// surfaced as ErrNoReading instead of a negative distance.
func (d *Dev) Measure() (physic.Distance, error) {
	cm, err := d.DistanceCm()
	if err != nil {
		return 0, err
	}
	if cm == NoReading {
		return 0, ErrNoReading
	}
	return physic.Distance(cm * 10 * float64(physic.MilliMetre)), nil
}

// Halt implements conn.Resource. It releases both lines, returning them to
// high impedance so other drivers can claim them.
//
// Call Halt exactly once. Any use of the Dev afterwards, Halt included,
// fails with *NotInitializedError.
func (d *Dev) Halt() error {
	if d.released {
		return &NotInitializedError{}
	}
	d.released = true
	return errors.Join(
		d.trig.In(gpio.Float, gpio.NoEdge),
		d.echo.Halt(),
	)
}

// Scoped claims a sensor, runs fn with it and guarantees both lines are
// released when fn returns or panics, so a polling loop cannot leak the
// pins.
func Scoped(trig, echo Pin, opts *Opts, fn func(*Dev) error) error {
	d, err := New(trig, echo, opts)
	if err != nil {
		return err
	}
	defer func() {
		if !d.released {
			_ = d.Halt()
		}
	}()
	return fn(d)
}

// convert maps an echo pulse width in microsecond ticks to centimeters.
// Half the width is the one-way travel time, at 29.1µs per centimeter.
func convert(ticks uint16) float64 {
	return float64(ticks) / 2 / usPerCm
}

var _ conn.Resource = &Dev{}
var _ echoCapture = &pulsein.Capture{}
