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

package cli

import (
	"fmt"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command. version must be a SemVer
// string; a leading "v" is tolerated.
func NewVersionCommand(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := semver.Parse(strings.TrimPrefix(version, "v"))
			if err != nil {
				return fmt.Errorf("invalid version format %q: %w", version, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dxown v%s (commit %s)\n", v, commit)
			return nil
		},
	}
}
