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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/dxown/dxcore/config"
	"dirpx.dev/dxown/dxcore/engine"
	"dirpx.dev/dxown/dxcore/model"
	"dirpx.dev/dxown/dxcore/phase"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRun_Default(t *testing.T) {
	out, _, err := execute(t, "run")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Engine: bound window",
		"Engine: bound device",
		"Engine: activating",
		"Device: Hello world!",
		"Device: created (x = 1)",
		"Window: Hello world!",
	}, "\n")+"\n", out)
}

func TestRun_Flags(t *testing.T) {
	out, _, err := execute(t, "run", "--device-arg", "7", "--greeting", "Hey", "--greet-first=false")
	require.NoError(t, err)
	assert.NotContains(t, out, "Device: Hey")
	assert.Contains(t, out, "Device: created (x = 7)\nWindow: Hey\n")
}

func TestRun_ConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dxown.yaml")
	require.NoError(t, os.WriteFile(path, []byte("greeting: Howdy\ndevice:\n  arg: 3\n"), 0o600))
	t.Setenv("DXOWN_DEVICE_ARG", "4")

	out, _, err := execute(t, "--config", path, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "Device: Howdy\n")
	assert.Contains(t, out, "Device: created (x = 4)\n")
}

func TestRun_Logging(t *testing.T) {
	_, stderr, err := execute(t, "run", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "component bound")
	assert.Contains(t, stderr, "engine ready")

	_, stderr, err = execute(t, "run", "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "run", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "run")
	require.Error(t, err)

	_, _, err = execute(t, "run", "extra")
	require.Error(t, err)
}

func TestDescribe_Table(t *testing.T) {
	out, _, err := execute(t, "describe")
	require.NoError(t, err)
	assert.Contains(t, out, "(ready)")
	assert.Contains(t, out, "window")
	assert.Contains(t, out, "engine.Window")
	assert.Contains(t, out, "owned.NoArgs")
	assert.Contains(t, out, "engine.Device")
	assert.NotContains(t, out, "Engine: activating")
}

func TestDescribe_JSON(t *testing.T) {
	out, _, err := execute(t, "describe", "-o", "json")
	require.NoError(t, err)

	var st engine.Status
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, phase.Ready, st.Phase)
	assert.NotEmpty(t, st.ID)
	require.Len(t, st.Components, 2)
	assert.Equal(t, "window", st.Components[0].Name)
	assert.Equal(t, "device", st.Components[1].Name)
	assert.Equal(t, "int", st.Components[1].Args)
	assert.True(t, st.Components[1].Bound)
}

func TestDescribe_YAML(t *testing.T) {
	out, _, err := execute(t, "describe", "--output", "yaml")
	require.NoError(t, err)

	var st engine.Status
	require.NoError(t, model.FromYAML([]byte(out), &st))
	assert.Equal(t, phase.Ready, st.Phase)
	assert.Len(t, st.Components, 2)
}

func TestRenderStatus_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, renderStatus(&buf, "xml", engine.Status{}))
	assert.Error(t, renderStatus(&buf, config.OutputJSON, engine.Status{}))
	assert.Error(t, renderStatus(&buf, config.OutputYAML, engine.Status{}))
	assert.Empty(t, buf.String())
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dxown v"+Version+" (commit "+GitCommit+")\n", out)

	tests := []struct {
		name    string
		version string
		want    string
		wantErr bool
	}{
		{name: "plain", version: "1.2.3", want: "dxown v1.2.3 (commit abc)\n"},
		{name: "leading v", version: "v2.0.0-rc.1", want: "dxown v2.0.0-rc.1 (commit abc)\n"},
		{name: "not semver", version: "dev", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.version, "abc")
			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetErr(&buf)
			cmd.SetArgs([]string{})
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestContextFallbacks(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, config.Default(), GetConfig(ctx))
	assert.Equal(t, logr.Discard(), GetLogger(ctx))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(logrus.InfoLevel, &buf)
	require.NoError(t, err)

	log.V(1).Info("hidden")
	log.Info("shown", "key", "value")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
}
