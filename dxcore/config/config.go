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

// Package config holds the configuration of the demo engine and loads it
// from defaults, a YAML file, DXOWN_ environment variables and command-line
// flags, in that order of precedence (later wins).
package config

import (
	"fmt"
	"strings"

	"dirpx.dev/dxown/dxcore/errors"
	"dirpx.dev/dxown/dxcore/model"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Defaults.
const (
	DefaultGreeting   = "Hello world!"
	DefaultGreetFirst = true
	DefaultDeviceArg  = 1
	DefaultLogLevel   = "info"
	DefaultOutput     = OutputTable
)

// Output formats understood by the describe command.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config is the engine configuration.
type Config struct {
	// Greeting is what components say when they greet.
	Greeting string `koanf:"greeting" json:"greeting" yaml:"greeting"`

	// GreetFirst makes the engine let the device greet before creating it.
	GreetFirst bool `koanf:"greet_first" json:"greet_first" yaml:"greet_first"`

	Device DeviceConfig `koanf:"device" json:"device" yaml:"device"`
	Log    LogConfig    `koanf:"log" json:"log" yaml:"log"`

	// Output is the describe format: table, json or yaml.
	Output string `koanf:"output" json:"output" yaml:"output"`
}

// DeviceConfig configures the device component.
type DeviceConfig struct {
	// Arg is passed to the device's Create during activation.
	Arg int `koanf:"arg" json:"arg" yaml:"arg"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is a logrus level name.
	Level string `koanf:"level" json:"level" yaml:"level"`
}

var _ model.Model = Config{}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Greeting:   DefaultGreeting,
		GreetFirst: DefaultGreetFirst,
		Device:     DeviceConfig{Arg: DefaultDeviceArg},
		Log:        LogConfig{Level: DefaultLogLevel},
		Output:     DefaultOutput,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if strings.TrimSpace(c.Greeting) == "" {
		err = multierr.Append(err, &errors.ValidationError{
			Type: "Config", Field: "Greeting", Reason: "must not be empty",
		})
	}
	if _, perr := logrus.ParseLevel(c.Log.Level); perr != nil {
		err = multierr.Append(err, &errors.ValidationError{
			Type: "Config", Field: "Log.Level", Reason: perr.Error(), Value: c.Log.Level,
		})
	}
	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		err = multierr.Append(err, &errors.ValidationError{
			Type: "Config", Field: "Output",
			Reason: fmt.Sprintf("must be one of %s, %s, %s", OutputTable, OutputJSON, OutputYAML),
			Value:  c.Output,
		})
	}
	return err
}

// LogLevel returns the parsed log level, falling back to info.
func (c Config) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// TypeName returns "Config".
func (c Config) TypeName() string {
	return "Config"
}

// IsZero reports whether no field is set.
func (c Config) IsZero() bool {
	return c == Config{}
}

func (c Config) String() string {
	return fmt.Sprintf("Config{Greeting:%q, GreetFirst:%t, Device.Arg:%d, Log.Level:%s, Output:%s}",
		c.Greeting, c.GreetFirst, c.Device.Arg, c.Log.Level, c.Output)
}
