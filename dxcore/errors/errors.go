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

// Package errors provides the error types and the fatal abort utility shared
// by the dxown packages.
//
// dxown has exactly two failure tiers. The first is compile-time rejection:
// a component type that does not satisfy the lifecycle contract of package
// owned cannot be wrapped at all, so there is nothing to report at runtime.
// The second is the fatal abort: call-site misuse the type system cannot
// express (binding a component to a nil owner, binding it twice, resolving an
// owner that was never bound) is reported with the caller's source location
// and terminates the process. See Abort.
//
// Everything else in dxown is ordinary value plumbing (parsing enum-like
// values, decoding configuration, validating state transitions) and uses the
// plain error values defined here. They are deliberately simple carriers with
// stable message formats:
//
//   - ParseError: a string could not be parsed into an enum-like value.
//   - MarshalError: an invalid enum-like value was about to be serialized.
//   - UnmarshalError: serialized data could not be decoded.
//   - ValidationError: a value failed its Validate method.
//   - TransitionError: a state machine was asked to make an illegal move.
//
// Callers SHOULD match on these with errors.As from the standard library
// rather than on message text.
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Phase"), and
// Value contains the exact string that could not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Phase").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxown: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxown: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails because it is
// outside the set of valid constants. It usually indicates a programming
// error, such as a numeric cast that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that does not correspond
	// to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxown: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxown: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Data keeps the raw payload for callers that want to log it. It is
// intentionally left out of Error so that messages stay short.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxown: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxown: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned by Validate methods when a value violates one of
// its constraints. Field is empty when the problem concerns the value as a
// whole.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation. May be empty.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxown: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxown: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxown: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxown: invalid " + e.Type + ": " + e.Reason
}

// TransitionError is returned when a state machine is asked to move between
// two states that are not connected.
//
// From and To hold the textual names of the states, so the error does not
// depend on the concrete state type.
type TransitionError struct {
	// Type is the logical name of the state machine (for example, "Engine").
	Type string

	// From is the current state.
	From string

	// To is the requested state.
	To string
}

// Error implements the error interface for TransitionError.
//
// The error message format is:
//
//	"dxown: illegal {Type} transition: {From} -> {To}"
func (e *TransitionError) Error() string {
	return "dxown: illegal " + e.Type + " transition: " + e.From + " -> " + e.To
}
