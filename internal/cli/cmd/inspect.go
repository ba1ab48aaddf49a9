// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dchest/siphash"
	"github.com/spf13/cobra"

	"github.com/mapexchange/mapex/internal/ioutil"
	"github.com/mapexchange/mapex/internal/mapstring"
	"github.com/mapexchange/mapex/version"
)

// oldestSupportedVersion is the oldest game version whose map exchange strings share the decoded layout.
var oldestSupportedVersion = version.MustParse("1.1.0")

func newInspectCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect file",
		Short: "Show a summary of a map exchange string",
		Long: `Show a summary of a map exchange string.

The fingerprint identifies the decoded settings. Two strings with the same
fingerprint describe the same map, even if their text differs.`,
		Example:           `$ mapex inspect island.txt`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Args:              cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.inspect(args[0])
		},
	}
}

func (c *CLI) inspect(filename string) error {
	dec, err := c.decoder()
	if err != nil {
		return err
	}
	if err := checkInput(filename); err != nil {
		return err
	}
	data, err := ioutil.ReadFile(filename, c.Stdin)
	if err != nil {
		return err
	}
	payload, err := dec.Inflate(string(data))
	if err != nil {
		return decodeErr(filename, err)
	}
	exchange, err := dec.DecodePayload(payload)
	if err != nil {
		if v, ok := payloadVersion(payload); ok {
			fmt.Fprintf(c.Stdout, "Version  %s\n", v)
		}
		return decodeErr(filename, err)
	}
	if exchange.Version.Less(oldestSupportedVersion) {
		c.printWarning(fmt.Sprintf("%s is from game version %s", filename, exchange.Version),
			"Map exchange strings older than "+oldestSupportedVersion.String()+" may not decode correctly")
	}
	gen := exchange.MapGenSettings
	var points []string
	for _, p := range gen.StartingPoints {
		points = append(points, formatPosition(p))
	}
	summary := table{}
	summary.add("Version", exchange.Version.String())
	summary.add("Seed", strconv.FormatUint(uint64(gen.Seed), 10))
	summary.add("Size", fmt.Sprintf("%dx%d", gen.Width, gen.Height))
	summary.add("Peaceful mode", strconv.FormatBool(gen.PeacefulMode))
	// absent toggles keep the game default, which is on
	summary.add("Pollution", strconv.FormatBool(exchange.MapSettings.Pollution.Enabled.Or(true)))
	summary.add("Biter expansion", strconv.FormatBool(exchange.MapSettings.EnemyExpansion.Enabled.Or(true)))
	summary.add("Starting points", strings.Join(points, " "))
	summary.add("Research queue", string(exchange.MapSettings.DifficultySettings.ResearchQueueSetting))
	summary.add("Checksum", fmt.Sprintf("0x%08x", exchange.Checksum))
	summary.add("Fingerprint", fingerprint(payload))
	summary.write(c.Stdout)

	if len(gen.AutoplaceControls) == 0 {
		return nil
	}
	names := make([]string, 0, len(gen.AutoplaceControls))
	for name := range gen.AutoplaceControls {
		names = append(names, name)
	}
	sort.Strings(names)
	controls := table{header: []string{"Autoplace control", "Frequency", "Size", "Richness"}}
	for _, name := range names {
		fsr := gen.AutoplaceControls[name]
		controls.add(name, formatFloat32(fsr.Frequency), formatFloat32(fsr.Size), formatFloat32(fsr.Richness))
	}
	fmt.Fprintln(c.Stdout)
	controls.write(c.Stdout)
	return nil
}

// payloadVersion reads the game version at the start of an inflated payload.
func payloadVersion(payload []byte) (version.Version, bool) {
	v, err := mapstring.NewCursor(payload).ReadVersion()
	return v, err == nil
}

// fingerprint returns a 128-bit SipHash of payload in hex.
func fingerprint(payload []byte) string {
	lo, hi := siphash.Hash128(0, 0, payload)
	return fmt.Sprintf("%016x%016x", hi, lo)
}

func formatFloat32(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) }

func formatPosition(p mapstring.Position) string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}
