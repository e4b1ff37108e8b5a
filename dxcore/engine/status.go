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

	"dirpx.dev/dxown/dxcore/errors"
	"dirpx.dev/dxown/dxcore/model"
	"dirpx.dev/dxown/dxcore/owned"
	"dirpx.dev/dxown/dxcore/phase"
)

// Status is a snapshot of an Engine.
type Status struct {
	ID         string             `json:"id" yaml:"id"`
	Phase      phase.Phase        `json:"phase" yaml:"phase"`
	Components []owned.Descriptor `json:"components" yaml:"components"`
}

var _ model.Model = Status{}

// Describe returns the engine's current status.
func (e *Engine) Describe() Status {
	return Status{
		ID:         e.id.String(),
		Phase:      e.phase,
		Components: e.Fields().Describe(),
	}
}

// Validate checks the id and phase and that every component has a name.
func (s Status) Validate() error {
	if s.ID == "" {
		return &errors.ValidationError{Type: s.TypeName(), Field: "ID", Reason: "must not be empty"}
	}
	if err := s.Phase.Validate(); err != nil {
		return err
	}
	for i, c := range s.Components {
		if c.Name == "" {
			return &errors.ValidationError{
				Type:   s.TypeName(),
				Field:  fmt.Sprintf("Components[%d].Name", i),
				Reason: "must not be empty",
			}
		}
	}
	return nil
}

func (s Status) TypeName() string {
	return "Status"
}

func (s Status) IsZero() bool {
	return s.ID == "" && s.Phase.IsZero() && len(s.Components) == 0
}

func (s Status) String() string {
	return fmt.Sprintf("Status{ID:%s, Phase:%s, Components:%d}", s.ID, s.Phase, len(s.Components))
}
