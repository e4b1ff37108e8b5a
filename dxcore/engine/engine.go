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

// Package engine is a small owner built on package owned: an Engine hosting
// a Window and a Device. The Device, when created, reaches the Window through
// its back-reference to the Engine.
//
// The Engine follows the owner construction protocol: it is allocated first
// so its address is fixed, binds its component fields in declaration order,
// then runs its activation body. Console output goes to the writer given with
// WithOutput; diagnostics go to the logr.Logger given with WithLogger.
package engine

import (
	"fmt"
	"io"

	"dirpx.dev/dxown/dxcore/config"
	"dirpx.dev/dxown/dxcore/errors"
	"dirpx.dev/dxown/dxcore/owned"
	"dirpx.dev/dxown/dxcore/phase"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Engine is the owner. Its exported fields are its components, in the order
// they are bound.
type Engine struct {
	Window owned.Handle[Engine, owned.NoArgs, Window, *Window]
	Device owned.Handle[Engine, int, Device, *Device]

	id    uuid.UUID
	cfg   config.Config
	log   logr.Logger
	out   io.Writer
	phase phase.Phase
}

// Option configures an Engine before its fields are bound.
type Option func(*Engine)

// WithConfig replaces the default configuration. The configuration is not
// validated here; use config.Load or Config.Validate first.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(log logr.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithOutput sets the console writer. The default discards output.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// New constructs and activates an Engine.
//
// Activation prints "Engine: activating", lets the device greet when
// GreetFirst is set, then creates the device with the configured argument.
// Window.Create is not called; the device only greets the window.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:  uuid.New(),
		cfg: config.Default(),
		log: logr.Discard(),
		out: io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithValues("engine", e.id.String())

	e.Fields().Bind(e, func(f owned.Field[Engine]) {
		e.log.V(1).Info("component bound", "component", f.Name)
		e.say("Engine", "bound "+f.Name)
	})
	e.advance(phase.FieldsConstructed)

	e.advance(phase.Activating)
	e.say("Engine", "activating")
	if e.cfg.GreetFirst {
		e.Device.Get().Greet()
	}
	e.Device.Create(e.cfg.Device.Arg)
	e.advance(phase.Ready)

	e.log.Info("engine ready", "components", len(e.Fields()))
	return e
}

// Fields lists the components in declaration order.
func (e *Engine) Fields() owned.Fields[Engine] {
	return owned.Fields[Engine]{
		{Name: "window", Handle: &e.Window},
		{Name: "device", Handle: &e.Device},
	}
}

// ID returns the identifier assigned at construction.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Phase returns the current phase.
func (e *Engine) Phase() phase.Phase {
	return e.phase
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Close moves a ready engine to the destroyed phase. It does not call
// Destroy on the components. Closing an engine that is not ready returns a
// *errors.TransitionError.
func (e *Engine) Close() error {
	next, err := e.phase.Transition("Engine", phase.Destroyed)
	if err != nil {
		return err
	}
	e.log.V(1).Info("phase changed", "from", e.phase.String(), "to", next.String())
	e.phase = next
	return nil
}

// advance moves along the construction chain. A refused step means New is
// broken, not that the caller did something wrong.
func (e *Engine) advance(next phase.Phase) {
	p, err := e.phase.Transition("Engine", next)
	if err != nil {
		errors.AbortDepth(1, err.Error())
	}
	e.log.V(1).Info("phase changed", "from", e.phase.String(), "to", p.String())
	e.phase = p
}

// say writes one console line as "<who>: <msg>".
func (e *Engine) say(who, msg string) {
	fmt.Fprintf(e.out, "%s: %s\n", who, msg)
}
