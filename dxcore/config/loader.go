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

package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DXOWN_"

// envKeys maps environment variable names, without EnvPrefix, to config keys.
// Underscores are ambiguous between nesting and word breaks, so the mapping
// is explicit.
var envKeys = map[string]string{
	"GREETING":    "greeting",
	"GREET_FIRST": "greet_first",
	"DEVICE_ARG":  "device.arg",
	"LOG_LEVEL":   "log.level",
	"OUTPUT":      "output",
}

// flagKeys maps flag names to config keys. Flags not listed are not config.
var flagKeys = map[string]string{
	"greeting":    "greeting",
	"greet-first": "greet_first",
	"device-arg":  "device.arg",
	"log-level":   "log.level",
	"output":      "output",
}

// Load builds the configuration from, in increasing precedence: the
// defaults, the YAML file at path (skipped when path is empty), DXOWN_
// environment variables, and the flags in flags that were explicitly set.
// flags may be nil.
//
// The result is validated; every invalid field is reported.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	def := Default()
	if err := k.Load(confmap.Provider(map[string]any{
		"greeting":    def.Greeting,
		"greet_first": def.GreetFirst,
		"device.arg":  def.Device.Arg,
		"log.level":   def.Log.Level,
		"output":      def.Output,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.TrimPrefix(s, EnvPrefix)]
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// BindFlags registers the flags Load understands on fs, with the defaults as
// their values.
func BindFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String("greeting", def.Greeting, "Greeting used by components")
	fs.Bool("greet-first", def.GreetFirst, "Let the device greet before it is created")
	fs.Int("device-arg", def.Device.Arg, "Argument passed to the device's Create")
	fs.String("log-level", def.Log.Level, "Log level (trace|debug|info|warn|error)")
	fs.StringP("output", "o", def.Output, "Output format for describe (table|json|yaml)")
}
