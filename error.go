// Copyright 2026 The HCSR04 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hcsr04

import (
	"errors"
	"fmt"
)

// PinConfigurationError is returned by New when one of the sensor's lines
// cannot be resolved or claimed. No line is left claimed when New fails.
type PinConfigurationError struct {
	// Line is the sensor line that failed, "trig" or "echo".
	Line string
	// Name is the identifier given for the line.
	Name string
	// Cause is the underlying failure.
	Cause error
}

func (e *PinConfigurationError) Error() string {
	return fmt.Sprintf("hcsr04: configuring %s pin %q: %v", e.Line, e.Name, e.Cause)
}

func (e *PinConfigurationError) Unwrap() error {
	return e.Cause
}

// NotInitializedError is returned when the sensor is used after Halt
// released its lines.
type NotInitializedError struct{}

func (e *NotInitializedError) Error() string {
	return "hcsr04: sensor was released, lines are no longer claimed"
}

// ErrNoReading is returned by Measure when no usable echo was obtained this
// cycle. Treat it as "try again on the next poll", not as a fault.
var ErrNoReading = errors.New("hcsr04: no usable echo")
