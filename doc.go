// Copyright 2026 The HCSR04 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hcsr04 controls an HC-SR04 ultrasonic range sensor over two GPIO
// lines.
//
// The sensor emits an ultrasonic ping when its Trig pin receives a 10µs
// logic-high pulse, then holds its Echo pin high for as long as the ping
// took to bounce off the nearest object and return. Knowing that sound
// travels through dry air at roughly 343.2m/s at 20°C, the width of the
// echo pulse converts directly to a distance; Dev does that arithmetic and
// the bounded wait for you.
//
// The HC-SR04 uses 5V logic. On a 3.3V host, put a level shifter or a
// resistor divider on the Echo line or the host's input pin will be
// overdriven.
//
// Datasheet: https://cdn.sparkfun.com/datasheets/Sensors/Proximity/HCSR04.pdf
package hcsr04
