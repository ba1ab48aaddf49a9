// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mapexchange/mapex/internal/ioutil"
	"github.com/mapexchange/mapex/internal/mapstring"
	"github.com/mapexchange/mapex/internal/util"
)

const (
	formatFlag          = "format"
	outputDirFlag       = "output-dir"
	legacyPositionsFlag = "legacy-positions"
	colorFlag           = "color"
	quietFlag           = "quiet"
)

// CLI holds the mapex command tree, configuration and dependencies.
type CLI struct {
	// Environment holds the process environment.
	Environment map[string]string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer

	cmd        *cobra.Command
	config     *Config
	isTerminal func() bool
	spinner    func(w io.Writer, message string, fn func() error) error
	openFile   func(path string) error
}

// ErrCLI is an error returned to the user. It wraps an exit status, a regular error and optional hints for resolving
// the error.
type ErrCLI struct {
	Status int
	quiet  bool
	hints  []string
	error
}

func (e ErrCLI) Unwrap() error { return e.error }

// errHint creates a new CLI error, with optional hints that will be printed after the error
func errHint(err error, hints ...string) ErrCLI { return ErrCLI{Status: 1, hints: hints, error: err} }

// New creates the mapex CLI, writing output to stdout and stderr, and reading environment variables from environment.
func New(stdout, stderr io.Writer, environment []string) (*CLI, error) {
	cmd := &cobra.Command{
		Use:   "mapex command-name",
		Short: "Decode and inspect map exchange strings",
		Long: `Decode and inspect map exchange strings.

A map exchange string is the text a player copies from the map generator to
share map settings. It starts with >>> and ends with <<<.

For detailed description of flags and configuration, see 'mapex help config'.
`,
		DisableAutoGenTag: true,
		SilenceErrors:     true, // We have our own error printing
		SilenceUsage:      false,
		Args:              cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("invalid command: %s", args[0])
		},
	}
	env := make(map[string]string)
	for _, entry := range environment {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) == 2 {
			env[parts[0]] = parts[1]
		}
	}
	cli := CLI{
		Environment: env,
		Stdin:       os.Stdin,
		Stdout:      stdout,
		Stderr:      stderr,

		cmd:      cmd,
		openFile: openFile,
	}
	cli.isTerminal = func() bool { return isTerminal(cli.Stdout) && isTerminal(cli.Stderr) }
	if err := cli.loadConfig(); err != nil {
		return nil, err
	}
	cli.configureCommands()
	cmd.PersistentPreRunE = cli.configureOutput
	return &cli, nil
}

func (c *CLI) loadConfig() error {
	bindings := NewConfigBindings()
	for name, flag := range c.configureFlags() {
		bindings.bindFlag(name, flag)
	}
	bindings.bindEnvironment(formatFlag, "MAPEX_FORMAT")
	bindings.bindEnvironment(outputDirFlag, "MAPEX_OUTPUT_DIR")
	bindings.bindEnvironment(colorFlag, "MAPEX_COLOR")
	config, err := loadConfig(c.Environment, bindings)
	if err != nil {
		return err
	}
	c.config = config
	return nil
}

func (c *CLI) configureOutput(cmd *cobra.Command, args []string) error {
	if f, ok := c.Stdout.(*os.File); ok {
		c.Stdout = colorable.NewColorable(f)
	}
	if f, ok := c.Stderr.(*os.File); ok {
		c.Stderr = colorable.NewColorable(f)
	}
	if c.config.isQuiet() {
		c.Stdout = io.Discard
	}
	log.SetFlags(0) // No timestamps
	log.SetOutput(c.Stdout)
	colorValue, _ := c.config.get(colorFlag)
	colorize := false
	switch colorValue {
	case "auto":
		_, nocolor := c.Environment["NO_COLOR"] // https://no-color.org
		colorize = !nocolor && c.isTerminal()
	case "always":
		colorize = true
	case "never":
	default:
		return fmt.Errorf("invalid color option: %s", colorValue)
	}
	color.NoColor = !colorize
	c.configureSpinner()
	return nil
}

func (c *CLI) configureFlags() map[string]*pflag.Flag {
	var (
		format          string
		outputDir       string
		legacyPositions bool
		color           string
		quiet           bool
	)
	c.cmd.PersistentFlags().StringVarP(&format, formatFlag, "f", "json", `Output format. Must be "json", "yaml" or "cbor"`)
	c.cmd.PersistentFlags().StringVarP(&outputDir, outputDirFlag, "d", ".", "Directory where decoded settings are written")
	c.cmd.PersistentFlags().BoolVar(&legacyPositions, legacyPositionsFlag, false, "Decode relative positions the way older tools did, carrying the previous y coordinate as x")
	c.cmd.PersistentFlags().StringVarP(&color, colorFlag, "c", "auto", `Whether to use colors in output. Must be "auto", "never", or "always"`)
	c.cmd.PersistentFlags().BoolVarP(&quiet, quietFlag, "q", false, "Print only errors")
	flags := make(map[string]*pflag.Flag)
	c.cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flags[flag.Name] = flag
	})
	return flags
}

func (c *CLI) configureSpinner() {
	if c.config.isQuiet() || !c.isTerminal() {
		c.spinner = func(w io.Writer, message string, fn func() error) error {
			return fn()
		}
	} else {
		c.spinner = util.Spinner
	}
}

func (c *CLI) configureCommands() {
	rootCmd := c.cmd
	configCmd := newConfigCmd()
	configCmd.AddCommand(newConfigGetCmd(c))   // config get
	configCmd.AddCommand(newConfigSetCmd(c))   // config set
	configCmd.AddCommand(newConfigUnsetCmd(c)) // config unset
	rootCmd.AddCommand(configCmd)              // config
	rootCmd.AddCommand(newDecodeCmd(c))        // decode
	rootCmd.AddCommand(newInspectCmd(c))       // inspect
	rootCmd.AddCommand(newRenderCmd(c))        // render
	rootCmd.AddCommand(newSchemaCmd(c))        // schema
	rootCmd.AddCommand(newVersionCmd(c))       // version
}

func (c *CLI) printErr(err error, hints ...string) {
	fmt.Fprintln(c.Stderr, color.RedString("Error:"), err)
	for _, hint := range hints {
		fmt.Fprintln(c.Stderr, color.CyanString("Hint:"), hint)
	}
}

func (c *CLI) printSuccess(msg ...interface{}) {
	fmt.Fprintln(c.Stdout, color.GreenString("Success:"), fmt.Sprint(msg...))
}

func (c *CLI) printWarning(msg interface{}, hints ...string) {
	fmt.Fprintln(c.Stderr, color.YellowString("Warning:"), msg)
	for _, hint := range hints {
		fmt.Fprintln(c.Stderr, color.CyanString("Hint:"), hint)
	}
}

// decoder returns a map exchange string decoder configured according to this CLI.
func (c *CLI) decoder() (mapstring.Decoder, error) {
	legacy, err := c.config.legacyPositions()
	if err != nil {
		return mapstring.Decoder{}, err
	}
	return mapstring.Decoder{LegacyPositions: legacy}, nil
}

// decodeErr converts an error from decoding filename to a CLI error with hints.
func decodeErr(filename string, err error) error {
	err = fmt.Errorf("%s: %w", filename, err)
	switch {
	case errors.Is(err, mapstring.ErrNotAMapString):
		return errHint(err, "A map exchange string starts with >>> and ends with <<<")
	case errors.Is(err, mapstring.ErrDecompression):
		return errHint(err, "The string may have been altered when copied")
	case errors.Is(err, mapstring.ErrTruncatedInput), errors.Is(err, mapstring.ErrTrailingData),
		errors.Is(err, mapstring.ErrUnknownEnumIndex), errors.Is(err, mapstring.ErrDuplicateKey):
		return errHint(err, "The string may come from an unsupported game version. Try 'mapex inspect' to see its version")
	}
	return errHint(err)
}

// checkInput returns an error if filename is neither stdin nor an existing regular file.
func checkInput(filename string) error {
	switch {
	case filename == ioutil.Stdin || ioutil.IsFile(filename):
		return nil
	case ioutil.IsDir(filename):
		return errHint(fmt.Errorf("%s: is a directory", filename), "Pass the files inside the directory, e.g. "+filepath.Join(filename, "*.txt"))
	case ioutil.Exists(filename):
		return errHint(fmt.Errorf("%s: not a regular file", filename))
	}
	return errHint(fmt.Errorf("%s: no such file", filename))
}

// Run executes the CLI with given args. If args is nil, it defaults to os.Args[1:].
func (c *CLI) Run(args ...string) error {
	c.cmd.SetArgs(args)
	err := c.cmd.Execute()
	if err != nil {
		if cliErr, ok := err.(ErrCLI); ok {
			if !cliErr.quiet {
				c.printErr(cliErr, cliErr.hints...)
			}
		} else {
			c.printErr(err)
		}
	}
	return err
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}
