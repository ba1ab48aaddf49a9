// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/mapexchange/mapex/internal/ioutil"
	"github.com/mapexchange/mapex/internal/render"
)

func openFile(path string) error { return browser.OpenFile(path) }

func newRenderCmd(cli *CLI) *cobra.Command {
	var (
		out   string
		scale int
		open  bool
	)
	cmd := &cobra.Command{
		Use:   "render file",
		Short: "Render a resource map to a PNG image",
		Long: `Render a resource map to a PNG image.

The input is a JSON document listing the resources and tiles of a generated
map, as exported from the game:

{"resource": [{"name": "iron-ore", "position": {"x": 1.5, "y": -3.5}}, ...],
 "tile": [{"name": "water", "position": {"x": 4, "y": 2}}, ...]}

Each map unit becomes one pixel, or a square of pixels when scaled. Iron ore,
copper ore, stone, coal, uranium ore and water have colors. Other entities are
skipped.`,
		Example: `$ mapex render island.json
$ mapex render --scale 4 -o island.png --open island.json`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Args:              cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if err := checkInput(filename); err != nil {
				return err
			}
			name := ioutil.BaseName(filename) + ".png"
			switch {
			case out == "":
				out = filepath.Join(cli.config.outputDir(), name)
			case ioutil.IsDir(out):
				out = filepath.Join(out, name)
			}
			data, err := ioutil.ReadFile(filename, cli.Stdin)
			if err != nil {
				return err
			}
			surface, err := render.ReadSurface(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}
			var img *render.Image
			err = cli.spinner(cli.Stderr, fmt.Sprintf("Rendering %s ...", filename), func() error {
				img, err = render.Render(surface, scale)
				return err
			})
			if err != nil {
				return err
			}
			for _, name := range img.Unknown {
				cli.printWarning(fmt.Sprintf("skipped entities named %s", name), "Only ores, stone and water are drawn")
			}
			png, err := img.EncodePNG()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
				return err
			}
			if err := ioutil.AtomicWriteFile(out, png); err != nil {
				return err
			}
			names := make([]string, 0, len(img.Counts))
			for name := range img.Counts {
				names = append(names, name)
			}
			sort.Strings(names)
			counts := table{}
			for _, name := range names {
				counts.add(name, strconv.Itoa(img.Counts[name]))
			}
			counts.write(cli.Stdout)
			log.Printf("Wrote %dx%d image to %s", img.Bounds().Dx(), img.Bounds().Dy(), color.CyanString(out))
			if open {
				return cli.openFile(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "File or directory to write the image to. Defaults to the input name with a .png extension in the output directory")
	cmd.Flags().IntVar(&scale, "scale", 1, "Side length in pixels of one map unit")
	cmd.Flags().BoolVar(&open, "open", false, "Open the image once written")
	return cmd
}
