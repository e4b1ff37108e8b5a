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

package errors

import "testing"

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"Phase type",
			&ParseError{Type: "Phase", Value: "unknown"},
			"dxown: invalid Phase value: unknown",
		},
		{
			"Output type",
			&ParseError{Type: "Output", Value: "xml"},
			"dxown: invalid Output value: xml",
		},
		{
			"empty value",
			&ParseError{Type: "Phase", Value: ""},
			"dxown: invalid Phase value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "Phase", Value: 99},
			"dxown: cannot marshal invalid Phase value: 99",
		},
		{
			"negative value",
			&MarshalError{Type: "Phase", Value: -1},
			"dxown: cannot marshal invalid Phase value: -1",
		},
		{
			"value 42 should be decimal not unicode",
			&MarshalError{Type: "Test", Value: 42},
			"dxown: cannot marshal invalid Test value: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	err := &UnmarshalError{Type: "Phase", Data: []byte(`{broken`), Reason: "unexpected end of JSON input"}
	want := "dxown: cannot unmarshal Phase: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("UnmarshalError.Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Config", Field: "Greeting", Reason: "must not be empty"},
			"dxown: invalid Config.Greeting: must not be empty",
		},
		{
			"without field",
			&ValidationError{Type: "Phase", Reason: "invalid value"},
			"dxown: invalid Phase: invalid value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransitionError_Error(t *testing.T) {
	err := &TransitionError{Type: "Engine", From: "ready", To: "activating"}
	want := "dxown: illegal Engine transition: ready -> activating"
	if got := err.Error(); got != want {
		t.Errorf("TransitionError.Error() = %q, want %q", got, want)
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var _ error = (*ParseError)(nil)
	var _ error = (*MarshalError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
	var _ error = (*TransitionError)(nil)
}
