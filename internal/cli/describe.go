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
	"encoding/json"
	"fmt"
	"io"

	"dirpx.dev/dxown/dxcore/config"
	"dirpx.dev/dxown/dxcore/engine"
	"dirpx.dev/dxown/dxcore/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Show the engine's components",
		Long: `Build the engine and print its id, phase and the components it hosts.
The format is chosen with --output (table, json or yaml).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			e := engine.New(
				engine.WithConfig(cfg),
				engine.WithLogger(GetLogger(ctx)),
			)
			if err := renderStatus(cmd.OutOrStdout(), cfg.Output, e.Describe()); err != nil {
				return err
			}
			return e.Close()
		},
	}
}

func renderStatus(w io.Writer, format string, st engine.Status) error {
	switch format {
	case config.OutputJSON:
		return renderJSON(w, st)
	case config.OutputYAML:
		data, err := model.ToYAML(st)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case config.OutputTable, "":
		return renderTable(w, st)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderTable(w io.Writer, st engine.Status) error {
	_, _ = fmt.Fprintf(w, "Engine %s (%s)\n", st.ID, st.Phase)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Component", "Args", "Bound"})
	for _, c := range st.Components {
		t.AppendRow(table.Row{c.Name, c.Component, c.Args, c.Bound})
	}
	t.Render()
	return nil
}

func renderJSON(w io.Writer, st engine.Status) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("cannot render invalid %s: %w", st.TypeName(), err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}
