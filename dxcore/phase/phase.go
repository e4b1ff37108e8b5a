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

// Package phase defines the construction state machine of an owner.
//
// An owner goes through the phases strictly in this order:
//
//	Uninitialized -> FieldsConstructed -> Activating -> Ready -> Destroyed
//
// FieldsConstructed is reached once every component field is bound to the
// owner. Activating covers the owner's activation body, where components are
// created and may reach their siblings. Destroyed is terminal. There is no
// transition back to Uninitialized and none that skips a phase.
package phase

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxown/dxcore/errors"
	"dirpx.dev/dxown/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Phase is the state of an owner.
type Phase int

const (
	// Uninitialized is the phase of a freshly allocated owner whose fields
	// are not bound yet.
	Uninitialized Phase = iota

	// FieldsConstructed means every component field is bound, in declaration
	// order, and no Create has run.
	FieldsConstructed

	// Activating means the owner's activation body is running.
	Activating

	// Ready means activation finished.
	Ready

	// Destroyed is terminal.
	Destroyed
)

// Compile-time checks.
var (
	_ model.Model        = Phase(0)
	_ model.Serializable = (*Phase)(nil)
)

// String constants for Phase values. They are the canonical external
// representation used in logs, JSON and YAML.
const (
	UninitializedStr     = "uninitialized"
	FieldsConstructedStr = "fields-constructed"
	ActivatingStr        = "activating"
	ReadyStr             = "ready"
	DestroyedStr         = "destroyed"
)

// String returns the canonical kebab-case name of the phase, or "unknown" for
// a value outside the defined constants.
func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return UninitializedStr
	case FieldsConstructed:
		return FieldsConstructedStr
	case Activating:
		return ActivatingStr
	case Ready:
		return ReadyStr
	case Destroyed:
		return DestroyedStr
	default:
		return "unknown"
	}
}

// ParsePhase converts a textual representation into a Phase.
//
// Matching is case-insensitive, and underscores are accepted in place of
// dashes, so "FIELDS_CONSTRUCTED" and "fields-constructed" are the same. Any
// other input returns a *errors.ParseError.
func ParsePhase(str string) (Phase, error) {
	switch strings.ReplaceAll(strings.ToLower(str), "_", "-") {
	case UninitializedStr:
		return Uninitialized, nil
	case FieldsConstructedStr, "fieldsconstructed":
		return FieldsConstructed, nil
	case ActivatingStr:
		return Activating, nil
	case ReadyStr:
		return Ready, nil
	case DestroyedStr:
		return Destroyed, nil
	default:
		return Uninitialized, &errors.ParseError{Type: "Phase", Value: str}
	}
}

// Valid reports whether p is one of the defined constants.
func (p Phase) Valid() bool {
	return p >= Uninitialized && p <= Destroyed
}

// CanTransition reports whether an owner in phase p may move to next. Only
// the single step forward along the chain is allowed.
func (p Phase) CanTransition(next Phase) bool {
	return p.Valid() && next.Valid() && next == p+1
}

// Transition returns next if the move from p is allowed, and a
// *errors.TransitionError naming both phases otherwise. owner is the type name
// used in the error.
func (p Phase) Transition(owner string, next Phase) (Phase, error) {
	if !p.CanTransition(next) {
		return p, &errors.TransitionError{Type: owner, From: p.String(), To: next.String()}
	}
	return next, nil
}

// Terminal reports whether no transition leaves p.
func (p Phase) Terminal() bool {
	return p == Destroyed
}

// TypeName returns "Phase".
func (p Phase) TypeName() string {
	return "Phase"
}

// IsZero reports whether p is Uninitialized. The zero value is valid.
func (p Phase) IsZero() bool {
	return p == Uninitialized
}

// Validate returns a *errors.ValidationError if p is not a defined constant.
func (p Phase) Validate() error {
	if !p.Valid() {
		return &errors.ValidationError{Type: "Phase", Reason: "invalid value", Value: int(p)}
	}
	return nil
}

// MarshalJSON encodes a valid Phase as its canonical string. An invalid
// value returns a *errors.MarshalError.
func (p Phase) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Phase", Value: int(p)}
	}
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON accepts the string forms understood by ParsePhase and the
// numeric values of the constants.
func (p *Phase) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Phase", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Phase", Data: data, Reason: err.Error()}
		}
		parsed, err := ParsePhase(str)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Phase", Data: data, Reason: err.Error()}
	}
	if !Phase(i).Valid() {
		return &errors.UnmarshalError{Type: "Phase", Data: data, Reason: "invalid numeric value"}
	}
	*p = Phase(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Phase", Value: int(p)}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParsePhase.
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Phase) MarshalYAML() (any, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Phase", Value: int(p)}
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using ParsePhase.
func (p *Phase) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Phase", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParsePhase(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
