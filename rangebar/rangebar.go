// Copyright 2026 The HCSR04 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rangebar renders range readings as colored bars on a terminal
// (stdout) using ANSI color codes.
//
// Useful to eyeball a sonar while wiring it up, without hooking up a real
// display.
package rangebar

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for the bar.
type Opts struct {
	// Cells is the bar length in terminal cells at full scale. Default is
	// 40.
	Cells int
	// FullScale is the reading in centimeters mapped to a full bar.
	// Default is 400, the HC-SR04's rated range.
	FullScale float64
	// Palette maps colors to ANSI codes. Default is ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

// Bar writes readings one line each, as a colored bar with the numeric
// value in front.
type Bar struct {
	w         io.Writer
	cells     int
	fullScale float64
	palette   ansi256.Palette

	buf bytes.Buffer
}

// New returns a Bar that renders to the console.
func New(opts *Opts) *Bar {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Bar that renders to w.
func NewWriter(w io.Writer, opts *Opts) *Bar {
	cells := opts.Cells
	if cells <= 0 {
		cells = 40
	}
	fullScale := opts.FullScale
	if fullScale <= 0 {
		fullScale = 400
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Bar{w: w, cells: cells, fullScale: fullScale, palette: *p}
}

func (b *Bar) String() string {
	return "RangeBar"
}

// Print renders one reading. A negative reading means "no echo this cycle"
// and renders as a placeholder instead of a bar.
func (b *Bar) Print(cm float64) error {
	// Reuse the buffer to keep per-reading allocations down.
	b.buf.Reset()
	if cm < 0 {
		b.buf.WriteString("     -- no echo\n")
		_, err := b.buf.WriteTo(b.w)
		return err
	}
	n := int(cm / b.fullScale * float64(b.cells))
	if n > b.cells {
		n = b.cells
	}
	fmt.Fprintf(&b.buf, "%7.1f ", cm)
	for i := 0; i < n; i++ {
		_, _ = io.WriteString(&b.buf, b.palette.Block(b.cellColor(i)))
	}
	b.buf.WriteString("\033[0m\n")
	_, err := b.buf.WriteTo(b.w)
	return err
}

// cellColor fades from red up close to green at full scale.
func (b *Bar) cellColor(i int) color.NRGBA {
	g := 255 * i / b.cells
	return color.NRGBA{R: uint8(255 - g), G: uint8(g), B: 0, A: 255}
}

var _ fmt.Stringer = &Bar{}
