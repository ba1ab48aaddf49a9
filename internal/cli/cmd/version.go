// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package cmd

import (
	"fmt"
	"log"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mapexchange/mapex/internal/cli/build"
	"github.com/mapexchange/mapex/version"
)

func newVersionCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Show current version",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Args:              cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := version.Parse(build.Version)
			if err != nil {
				return fmt.Errorf("invalid build version: %w", err)
			}
			devel := ""
			if current.IsZero() {
				devel = " (development build)"
			}
			log.Printf("mapex version %s%s compiled with %v on %v/%v", build.Version, devel, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			log.Printf("Decodes map exchange strings from game version %s and newer", oldestSupportedVersion)
			return nil
		},
	}
}
