// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mapexchange/mapex/internal/export"
	"github.com/mapexchange/mapex/internal/ioutil"
	"github.com/mapexchange/mapex/internal/mapstring"
)

func newDecodeCmd(cli *CLI) *cobra.Command {
	var toStdout bool
	cmd := &cobra.Command{
		Use:   "decode file...",
		Short: "Decode map exchange strings",
		Long: `Decode map exchange strings.

Each file must contain one map exchange string. Whitespace, including line
breaks, is ignored and gzip compressed files are decompressed. Use "-" to
read from standard input.

For every file two documents are written to the output directory, named after
the file up to its first dot:

<name>.mapGenSettings.<format> holds the map generation settings
<name>.mapSettings.<format> holds the map settings`,
		Example: `$ mapex decode island.txt
$ mapex decode --format yaml --output-dir decoded *.txt
$ pbpaste | mapex decode --stdout -`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Args:              cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.config.format()
			if err != nil {
				return err
			}
			dec, err := cli.decoder()
			if err != nil {
				return err
			}
			if !toStdout {
				if err := os.MkdirAll(cli.config.outputDir(), 0755); err != nil {
					return err
				}
			}
			for _, filename := range args {
				exchange, err := cli.decodeFile(dec, filename)
				if err != nil {
					return err
				}
				if toStdout {
					if err := export.Write(cli.Stdout, exchange, format); err != nil {
						return err
					}
					continue
				}
				if err := cli.writeSettings(filename, exchange, format); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&toStdout, "stdout", "s", false, "Print map settings, map generation settings and checksum to stdout instead of writing files")
	return cmd
}

// decodeFile reads and decodes the map exchange string in filename.
func (c *CLI) decodeFile(dec mapstring.Decoder, filename string) (*mapstring.Exchange, error) {
	if err := checkInput(filename); err != nil {
		return nil, err
	}
	data, err := ioutil.ReadFile(filename, c.Stdin)
	if err != nil {
		return nil, err
	}
	var exchange *mapstring.Exchange
	err = c.spinner(c.Stderr, fmt.Sprintf("Decoding %s ...", filename), func() error {
		exchange, err = dec.Decode(string(data))
		return err
	})
	if err != nil {
		return nil, decodeErr(filename, err)
	}
	return exchange, nil
}

func (c *CLI) writeSettings(filename string, exchange *mapstring.Exchange, format export.Format) error {
	base := ioutil.BaseName(filename)
	documents := []struct {
		kind  string
		value any
	}{
		{"mapGenSettings", exchange.MapGenSettings},
		{"mapSettings", exchange.MapSettings},
	}
	for _, doc := range documents {
		data, err := export.Marshal(doc.value, format)
		if err != nil {
			return err
		}
		path := filepath.Join(c.config.outputDir(), base+"."+doc.kind+"."+format.Extension())
		if err := ioutil.AtomicWriteFile(path, data); err != nil {
			return err
		}
		log.Printf("Wrote %s", color.CyanString(path))
	}
	return nil
}
