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

// Package model defines the contract shared by dxown value types: the
// configuration of an owner, the phases of its state machine and anything
// else that is validated, logged and serialized rather than hosted.
//
// Hosted components follow a different contract, defined in package owned.
// The two are deliberately independent: a component has a lifecycle and an
// owner, a model has a value and invariants.
//
// Types implementing Model can be used with the generic helpers of this
// package (ValidateAll, MustValidate, ToJSON, ToYAML, FromYAML). The helpers
// are constrained on Model, so applying them to a type that does not
// implement it is a compile-time error.
//
// Unless explicitly documented otherwise, implementations are value types and
// are not safe for concurrent mutation.
package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Model is the root interface for dxown value types.
//
// Implementations MUST satisfy all embedded interfaces. Methods defined on
// Model MUST NOT mutate the receiver.
//
// Example implementation:
//
//	type Limits struct {
//	    Max int
//	}
//
//	func (l Limits) Validate() error {
//	    if l.Max <= 0 {
//	        return errors.New("Limits.Max must be positive")
//	    }
//	    return nil
//	}
//
//	func (l Limits) TypeName() string { return "Limits" }
//	func (l Limits) IsZero() bool     { return l.Max == 0 }
//	func (l Limits) String() string   { return fmt.Sprintf("Limits{Max:%d}", l.Max) }
//
//	var _ Model = Limits{}  // Compile-time check
type Model interface {
	Validatable
	Identifiable
	ZeroCheckable
	fmt.Stringer
}

// Validatable is implemented by types that check their own invariants.
//
// Validate MUST return nil if and only if the value is fully valid. It MUST be
// fast, deterministic and free of side effects: no I/O, no logging, no
// mutation of the receiver. Errors SHOULD name the offending field, for
// example "Config.Greeting must not be empty", and SHOULD use
// *errors.ValidationError from package dxcore/errors.
//
// Callers SHOULD validate at boundaries: right after decoding configuration,
// and before handing a value to an owner.
type Validatable interface {
	Validate() error
}

// Identifiable is implemented by types that report a canonical name for
// themselves. The name MUST be constant for the type, in CamelCase, without a
// package prefix. It is used in error messages and log keys.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable is implemented by types that can tell whether they hold any
// meaningful data. A zero value MAY still be valid; IsZero says nothing about
// validity.
type ZeroCheckable interface {
	IsZero() bool
}

// Serializable is implemented by types with explicit JSON and YAML codecs.
//
// Enum-like types SHOULD implement it so that their canonical textual form,
// not their numeric representation, appears in output. Marshal methods MUST
// reject invalid values instead of emitting them.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}
