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
	"dirpx.dev/dxown/dxcore/engine"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Build the engine and print its console output",
		Long: `Build the engine, bind its components, activate it and close it.
Component output is written to stdout, logs to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			e := engine.New(
				engine.WithConfig(GetConfig(ctx)),
				engine.WithLogger(GetLogger(ctx)),
				engine.WithOutput(cmd.OutOrStdout()),
			)
			return e.Close()
		},
	}
}
