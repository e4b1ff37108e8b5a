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

package owned

import (
	"fmt"

	"dirpx.dev/dxown/dxcore/errors"
)

// Handle is the ownership adapter. It holds one component of type T by value
// and binds it to an owner of type O.
//
// The type parameters are:
//
//	O  the owner type
//	A  the argument type of the component's Create
//	T  the component type
//	P  *T, which MUST satisfy Object[O, A]
//
// The constraint on P is the compile-time gate of the lifecycle contract.
//
// Go cannot embed a type parameter, so the component is reached through Get
// for anything beyond the lifecycle operations, which Handle forwards as is.
//
// The zero value is an unbound handle, ready to be declared as an owner
// field. A Handle MUST NOT be copied after Bind.
type Handle[O, A, T any, P interface {
	*T
	Object[O, A]
}] struct {
	value T
	bound bool
}

// Bind installs the back-reference to owner. It stores a resolver and does
// nothing else; in particular it does not call Create.
//
// Binding to a nil owner or binding the same handle twice aborts the process.
func (h *Handle[O, A, T, P]) Bind(owner *O) {
	if owner == nil {
		errors.AbortDepth(1, "owned: Bind called with a nil owner")
	}
	if h.bound {
		errors.AbortDepth(1, "owned: Bind called on a handle that is already bound")
	}
	P(&h.value).bind(func() *O {
		return owner
	})
	h.bound = true
}

// Bound reports whether Bind has been called.
func (h *Handle[O, A, T, P]) Bound() bool {
	return h.bound
}

// Owner returns the owner the handle was bound to.
func (h *Handle[O, A, T, P]) Owner() *O {
	return P(&h.value).Owner()
}

// Get returns the wrapped component.
func (h *Handle[O, A, T, P]) Get() P {
	return &h.value
}

// Create forwards to the component's Create.
func (h *Handle[O, A, T, P]) Create(args A) {
	P(&h.value).Create(args)
}

// Destroy forwards to the component's Destroy.
func (h *Handle[O, A, T, P]) Destroy() {
	P(&h.value).Destroy()
}

// Recreate forwards to the component's Recreate.
func (h *Handle[O, A, T, P]) Recreate() {
	P(&h.value).Recreate()
}

// Describe returns a snapshot of the handle for diagnostics.
func (h *Handle[O, A, T, P]) Describe() Descriptor {
	var args A
	return Descriptor{
		Component: fmt.Sprintf("%T", h.value),
		Args:      fmt.Sprintf("%T", args),
		Bound:     h.bound,
	}
}

// Descriptor describes one hosted component.
type Descriptor struct {
	// Name is the owner's field name. Filled in by Describe on Fields.
	Name string `json:"name" yaml:"name"`

	// Component is the Go type of the component.
	Component string `json:"component" yaml:"component"`

	// Args is the Go type of the component's Create argument.
	Args string `json:"args" yaml:"args"`

	// Bound reports whether the component has a back-reference.
	Bound bool `json:"bound" yaml:"bound"`
}

// Component is the owner-facing view of a Handle that does not depend on the
// component or argument types. It lets an owner walk its fields.
type Component[O any] interface {
	Bind(owner *O)
	Bound() bool
	Describe() Descriptor
}

// Field names one component of an owner.
type Field[O any] struct {
	Name   string
	Handle Component[O]
}

// Fields is an owner's components in declaration order.
type Fields[O any] []Field[O]

// Bind binds every field to owner, in order. visit, if not nil, is called
// after each field is bound and before the next one starts.
func (fs Fields[O]) Bind(owner *O, visit func(Field[O])) {
	for _, f := range fs {
		f.Handle.Bind(owner)
		if visit != nil {
			visit(f)
		}
	}
}

// Describe returns a descriptor per field, in order, with Name set.
func (fs Fields[O]) Describe() []Descriptor {
	out := make([]Descriptor, 0, len(fs))
	for _, f := range fs {
		d := f.Handle.Describe()
		d.Name = f.Name
		out = append(out, d)
	}
	return out
}
