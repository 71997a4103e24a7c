// Copyright 2026 The HCSR04 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hcsr04

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Pin designates one of the sensor's GPIO lines, either by a name to be
// looked up in the host's pin registry or as an already-resolved handle.
// Named pins are resolved once, in New.
type Pin struct {
	name string
	pin  gpio.PinIO
}

// ByName designates a line by gpioreg registry name, like "GPIO23" or
// "P1_16" on a Raspberry Pi. Call host.Init() before New so the registry
// is populated.
func ByName(name string) Pin {
	return Pin{name: name}
}

// ByPin designates a line by an already-resolved handle.
func ByPin(p gpio.PinIO) Pin {
	return Pin{pin: p}
}

func (p Pin) String() string {
	if p.pin != nil {
		return p.pin.Name()
	}
	return p.name
}

// resolve returns the concrete handle, consulting the registry for named
// lines.
func (p Pin) resolve() (gpio.PinIO, error) {
	if p.pin != nil {
		return p.pin, nil
	}
	if p.name == "" {
		return nil, errors.New("pin not designated")
	}
	if pin := gpioreg.ByName(p.name); pin != nil {
		return pin, nil
	}
	return nil, fmt.Errorf("no GPIO pin named %q", p.name)
}
