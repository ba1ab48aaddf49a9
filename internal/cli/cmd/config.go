// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
// mapex config command

package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mapexchange/mapex/config"
	"github.com/mapexchange/mapex/internal/export"
)

const configFile = "config.yaml"

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Manage persistent values for global flags",
		Long: `Manage persistent values for global flags.

This command allows setting a persistent value for a given global flag. On
future invocations the flag can then be omitted as it is read from the config
file instead.

Configuration is written to $HOME/.mapex by default. This path can be
overridden by setting the MAPEX_HOME environment variable.

The following global flags/options can be configured:

format

Format of decoded settings. Must be "json", "yaml" or "cbor". This option
can also be set with the MAPEX_FORMAT environment variable.

output-dir

Directory where 'mapex decode' writes decoded settings. This option can also
be set with the MAPEX_OUTPUT_DIR environment variable.

legacy-positions

Whether relative positions are decoded the way older tools did. Must be
"true" or "false".

color

Whether to use colors in output. Must be "auto", "never" or "always". This
option can also be set with the MAPEX_COLOR environment variable.

quiet

Whether to print only errors. Must be "true" or "false".

A value given as a command-line flag takes precedence over an environment
variable, which takes precedence over the config file.`,
		DisableAutoGenTag: true,
		SilenceUsage:      false,
		Args:              cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("invalid command: %s", args[0])
		},
	}
}

func newConfigSetCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "set option-name value",
		Short: "Set a configuration option.",
		Example: `# Write decoded settings as YAML
$ mapex config set format yaml

# Write decoded settings to a separate directory
$ mapex config set output-dir decoded`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Args:              cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.config.set(args[0], args[1]); err != nil {
				return err
			}
			return cli.config.write()
		},
	}
}

func newConfigUnsetCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "unset option-name",
		Short: "Unset a configuration option.",
		Long: `Unset a configuration option.

Unsetting a configuration option will reset it to its default value.`,
		Example:           `$ mapex config unset format`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Args:              cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.config.unset(args[0]); err != nil {
				return err
			}
			return cli.config.write()
		},
	}
}

func newConfigGetCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "get [option-name]",
		Short: "Show given configuration option, or all configuration options",
		Example: `$ mapex config get
$ mapex config get format`,
		Args:              cobra.MaximumNArgs(1),
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 { // Print all values
				var flags []string
				for flag := range cli.config.bindings.flag {
					flags = append(flags, flag)
				}
				sort.Strings(flags)
				for _, flag := range flags {
					cli.config.printOption(flag)
				}
				return nil
			}
			if _, ok := cli.config.bindings.flag[args[0]]; !ok {
				return fmt.Errorf("invalid option: %s", args[0])
			}
			cli.config.printOption(args[0])
			return nil
		},
	}
}

// Config holds the resolved configuration of the CLI.
type Config struct {
	homeDir     string
	environment map[string]string
	bindings    ConfigBindings
	config      *config.Config
}

// ConfigBindings maps option names to the flags and environment variables that can set them.
type ConfigBindings struct {
	flag        map[string]*pflag.Flag
	environment map[string]string
}

func NewConfigBindings() ConfigBindings {
	return ConfigBindings{
		flag:        make(map[string]*pflag.Flag),
		environment: make(map[string]string),
	}
}

func (b *ConfigBindings) bindFlag(name string, flag *pflag.Flag) {
	b.flag[name] = flag
}

func (b *ConfigBindings) bindEnvironment(flagName string, variable string) {
	b.environment[flagName] = variable
}

func loadConfig(environment map[string]string, bindings ConfigBindings) (*Config, error) {
	home, err := mapexHome(environment)
	if err != nil {
		return nil, fmt.Errorf("could not detect config directory: %w", err)
	}
	cfg, err := config.ReadFile(filepath.Join(home, configFile))
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	return &Config{
		homeDir:     home,
		environment: environment,
		bindings:    bindings,
		config:      cfg,
	}, nil
}

func mapexHome(environment map[string]string) (string, error) {
	if home, ok := environment["MAPEX_HOME"]; ok && home != "" {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userHome, ".mapex"), nil
}

func (c *Config) write() error {
	return c.config.WriteFile(filepath.Join(c.homeDir, configFile))
}

// get returns the value of option. A flag given on the command line takes precedence, followed by the environment, the
// config file and finally the flag default.
func (c *Config) get(option string) (string, bool) {
	flag, isFlag := c.bindings.flag[option]
	if isFlag && flag.Changed {
		return flag.Value.String(), true
	}
	if envVar, ok := c.bindings.environment[option]; ok {
		if value, ok := c.environment[envVar]; ok {
			return value, true
		}
	}
	if value, ok := c.config.Get(option); ok {
		return value, true
	}
	if isFlag {
		return flag.DefValue, true
	}
	return "", false
}

func (c *Config) getBool(option string) (bool, error) {
	value, _ := c.get(option)
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s option: %q", option, value)
	}
	return b, nil
}

func (c *Config) format() (export.Format, error) {
	value, _ := c.get(formatFlag)
	f, err := export.ParseFormat(value)
	if err != nil {
		return "", errHint(err, "Try the --"+formatFlag+" flag")
	}
	return f, nil
}

func (c *Config) outputDir() string {
	dir, _ := c.get(outputDirFlag)
	return dir
}

func (c *Config) legacyPositions() (bool, error) { return c.getBool(legacyPositionsFlag) }

func (c *Config) isQuiet() bool {
	quiet, _ := c.getBool(quietFlag)
	return quiet
}

func (c *Config) set(option, value string) error {
	switch option {
	case formatFlag:
		if _, err := export.ParseFormat(value); err == nil {
			c.config.Set(option, value)
			return nil
		}
	case outputDirFlag:
		if value != "" {
			c.config.Set(option, value)
			return nil
		}
	case colorFlag:
		switch value {
		case "auto", "never", "always":
			c.config.Set(option, value)
			return nil
		}
	case quietFlag, legacyPositionsFlag:
		switch value {
		case "true", "false":
			c.config.Set(option, value)
			return nil
		}
	}
	return fmt.Errorf("invalid option or value: %s = %s", option, value)
}

func (c *Config) unset(option string) error {
	if _, ok := c.bindings.flag[option]; !ok {
		return fmt.Errorf("invalid option: %s", option)
	}
	c.config.Del(option)
	return nil
}

func (c *Config) printOption(option string) {
	value, ok := c.get(option)
	if !ok {
		value = color.YellowString("<unset>")
	} else {
		value = color.CyanString(value)
	}
	log.Printf("%s = %s", option, value)
}
