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

package model_test

import (
	"errors"
	"strings"
	"testing"

	"dirpx.dev/dxown/dxcore/model"
)

// limits is a minimal Model implementation.
type limits struct {
	Name string `json:"name" yaml:"name"`
	Max  int    `json:"max" yaml:"max"`
}

func (l limits) Validate() error {
	if l.Name == "" {
		return errors.New("name required")
	}
	if l.Max <= 0 {
		return errors.New("max must be positive")
	}
	return nil
}

func (l limits) TypeName() string { return "Limits" }
func (l limits) IsZero() bool     { return l.Name == "" && l.Max == 0 }
func (l limits) String() string   { return "Limits{" + l.Name + "}" }

var _ model.Model = limits{}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name      string
		models    []limits
		wantErr   bool
		wantParts []string
	}{
		{"empty", nil, false, nil},
		{"all valid", []limits{{"a", 1}, {"b", 2}}, false, nil},
		{
			"collects every failure",
			[]limits{{"a", 1}, {"", 1}, {"c", 0}},
			true,
			[]string{"model[1] (Limits): name required", "model[2] (Limits): max must be positive"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.models)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(err.Error(), part) {
					t.Errorf("ValidateAll() error = %q, want it to contain %q", err, part)
				}
			}
		})
	}
}

func TestMustValidate(t *testing.T) {
	got := model.MustValidate(limits{"a", 1})
	if got.Name != "a" {
		t.Errorf("MustValidate() = %+v, want the input back", got)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustValidate() on an invalid model did not panic")
		}
	}()
	model.MustValidate(limits{})
}

func TestToJSON(t *testing.T) {
	data, err := model.ToJSON(limits{"a", 3})
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if want := `{"name":"a","max":3}`; string(data) != want {
		t.Errorf("ToJSON() = %s, want %s", data, want)
	}

	if _, err := model.ToJSON(limits{}); err == nil {
		t.Errorf("ToJSON() on an invalid model returned no error")
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	data, err := model.ToYAML(limits{"a", 3})
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var got limits
	if err := model.FromYAML(data, &got); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if got != (limits{"a", 3}) {
		t.Errorf("round trip = %+v, want %+v", got, limits{"a", 3})
	}
}

func TestFromYAML_FailsOnInvalid(t *testing.T) {
	var got limits
	err := model.FromYAML([]byte("name: a\nmax: 0\n"), &got)
	if err == nil {
		t.Fatalf("FromYAML() on an invalid document returned no error")
	}
	if !strings.Contains(err.Error(), "Limits") {
		t.Errorf("FromYAML() error = %q, want it to name the type", err)
	}

	if err := model.FromYAML([]byte("max: [\n"), &got); err == nil {
		t.Errorf("FromYAML() on malformed YAML returned no error")
	}
}
