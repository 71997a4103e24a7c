// Copyright 2026 The HCSR04 Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command hcsr04range polls an HC-SR04 ultrasonic range sensor and prints
// each reading, optionally as a colored bar.
//
// Example on a Raspberry Pi, Trig on GPIO23 and Echo on GPIO24:
//
//	hcsr04range -trig GPIO23 -echo GPIO24 -bar
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"periph.io/x/host/v3"

	"github.com/gosensors/hcsr04"
	"github.com/gosensors/hcsr04/rangebar"
)

func mainImpl() error {
	trig := flag.String("trig", "", "name of the GPIO pin wired to Trig")
	echo := flag.String("echo", "", "name of the GPIO pin wired to Echo")
	interval := flag.Duration("interval", 2*time.Second, "delay between readings")
	timeout := flag.Duration("timeout", hcsr04.DefaultOpts.Timeout, "longest wait for an echo")
	bar := flag.Bool("bar", false, "render readings as a colored bar")
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("unexpected argument: %s", flag.Arg(0))
	}
	if *trig == "" || *echo == "" {
		return errors.New("-trig and -echo are required")
	}

	if _, err := host.Init(); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	opts := hcsr04.Opts{Timeout: *timeout}
	return hcsr04.Scoped(hcsr04.ByName(*trig), hcsr04.ByName(*echo), &opts, func(d *hcsr04.Dev) error {
		var b *rangebar.Bar
		if *bar {
			b = rangebar.New(&rangebar.Opts{})
		}
		t := time.NewTicker(*interval)
		defer t.Stop()
		for {
			cm, err := d.DistanceCm()
			if err != nil {
				return err
			}
			switch {
			case b != nil:
				if err := b.Print(cm); err != nil {
					return err
				}
			case cm == hcsr04.NoReading:
				fmt.Println("no echo")
			default:
				fmt.Printf("%.1fcm\n", cm)
			}
			select {
			case <-stop:
				return nil
			case <-t.C:
			}
		}
	})
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "hcsr04range: %s.\n", err)
		os.Exit(1)
	}
}
