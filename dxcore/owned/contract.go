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

// Package owned defines the lifecycle contract that a component MUST satisfy
// to be hosted by an owner, and the adapter that gives such a component a
// non-owning back-reference to that owner.
//
// An owner is a plain struct (the composition root) whose fields are the
// components it hosts. Each field is a Handle wrapping one component type.
// The owner binds every handle to itself, in field declaration order, before
// running any activation logic; after that, a component can call Owner() to
// reach the owner and, through it, any sibling component:
//
//	type Engine struct {
//	    Window owned.Handle[Engine, owned.NoArgs, Window, *Window]
//	    Device owned.Handle[Engine, int, Device, *Device]
//	}
//
//	type Window struct {
//	    owned.Ref[Engine]
//	}
//
//	func (w *Window) Create(owned.NoArgs) {}
//	func (w *Window) Destroy()            {}
//	func (w *Window) Recreate()           {}
//
//	func New() *Engine {
//	    e := &Engine{}
//	    e.Window.Bind(e)
//	    e.Device.Bind(e)
//	    e.Device.Create(1)
//	    return e
//	}
//
// # Lifecycle contract
//
// The contract is the Object constraint: Create, Destroy and Recreate with no
// results, plus the Owned role. It is enforced by the compiler when a Handle
// is instantiated, once per component type. A type that misses one of the
// operations, declares a result on one of them, accepts a Create argument
// other than the one named in the Handle, or does not embed Ref is rejected at
// build time. There is no runtime fallback.
//
// The argument of Create is a type parameter, so each component chooses its
// own. Components whose Create needs nothing use NoArgs. As a consequence two
// components can both satisfy the contract and still not be callable through
// one Lifecycle value: the contract is necessary but not sufficient for
// uniform invocation. This is an accepted limitation.
//
// # Back-reference
//
// A component never implements Owner itself. It embeds Ref, which is the only
// way to satisfy Owned, and the Handle installs a resolver into that Ref when
// it is bound. The resolver is a closure over the owner pointer; it is not
// ownership. Owners MUST outlive the handles they bind, which holds trivially
// when the handles are fields of the owner.
//
// Destroy and Recreate are part of the contract but nothing in this package
// calls them. Owners decide if and when to drive them.
//
// None of the types in this package are safe for concurrent use. Binding and
// activation are expected to run on one goroutine, in one linear sequence.
package owned

import "dirpx.dev/dxown/dxcore/errors"

// NoArgs is the Create argument type for components whose activation needs
// no input.
type NoArgs struct{}

// Lifecycle is the set of operations every component MUST provide. None of
// them returns a value.
//
// Create is invoked by the owner once, at a point the owner chooses, after
// all of the owner's fields are bound. Destroy and Recreate are available for
// later use and are not invoked by this package.
type Lifecycle[A any] interface {
	Create(args A)
	Destroy()
	Recreate()
}

// Owned is the role of being hosted by an owner of type O.
//
// Owned has an unexported method, so it can only be satisfied by embedding
// Ref[O]. This is what ties a component type to one owner type.
type Owned[O any] interface {
	// Owner resolves the back-reference installed when the component was
	// bound. It returns the same pointer on every call.
	Owner() *O

	bind(resolve func() *O)
}

// Object is the lifecycle contract: the constraint a component pointer type
// MUST satisfy to be wrapped by Handle.
type Object[O, A any] interface {
	Lifecycle[A]
	Owned[O]
}

// Ref is the embeddable Owned role. Its zero value is unbound; a Handle binds
// it. Components embed Ref by value and MUST NOT bind it themselves.
type Ref[O any] struct {
	resolve func() *O
}

// Owner returns the owner this component was bound to. Calling Owner on a
// component that was never bound is call-site misuse and aborts the process.
//
// Owner is valid only while the owner is alive and in use. Calling it after
// the owner was torn down is outside the contract; nothing here detects it.
func (r *Ref[O]) Owner() *O {
	if r.resolve == nil {
		errors.AbortDepth(1, "owned: Owner called on a component that was never bound")
	}
	return r.resolve()
}

func (r *Ref[O]) bind(resolve func() *O) {
	r.resolve = resolve
}
