/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package engine

import (
	"fmt"

	"dirpx.dev/dxown/dxcore/owned"
)

// Window is a component whose lifecycle does nothing except announce Create.
type Window struct {
	owned.Ref[Engine]

	created   bool
	greetings int
}

func (w *Window) Create(owned.NoArgs) {
	w.created = true
	w.Owner().say("Window", "created")
}

func (w *Window) Destroy() {}

func (w *Window) Recreate() {}

// Greet prints the engine's greeting.
func (w *Window) Greet() {
	w.greetings++
	e := w.Owner()
	e.say("Window", e.cfg.Greeting)
}

// Created reports whether Create ran.
func (w *Window) Created() bool { return w.created }

// Greetings counts Greet calls.
func (w *Window) Greetings() int { return w.greetings }

// Device is a component whose Create takes an int and greets the window.
type Device struct {
	owned.Ref[Engine]

	arg     int
	created bool
}

// Create records x and greets the sibling window through the engine.
func (d *Device) Create(x int) {
	d.arg = x
	d.created = true
	e := d.Owner()
	e.say("Device", fmt.Sprintf("created (x = %d)", x))
	e.Window.Get().Greet()
}

func (d *Device) Destroy() {}

func (d *Device) Recreate() {}

// Greet prints the engine's greeting.
func (d *Device) Greet() {
	e := d.Owner()
	e.say("Device", e.cfg.Greeting)
}

// Arg returns the value passed to Create.
func (d *Device) Arg() int { return d.arg }

// Created reports whether Create ran.
func (d *Device) Created() bool { return d.created }
