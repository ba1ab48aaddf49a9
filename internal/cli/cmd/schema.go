// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mapexchange/mapex/internal/mapstring"
)

func newSchemaCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [record-name]",
		Short: "Show the field order of encoded records",
		Long: `Show the field order of encoded records.

Fields are listed in the order they appear in a map exchange string. A field
marked optional is preceded by a presence byte.`,
		Example: `$ mapex schema
$ mapex schema path_finder`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Args:              cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemas := mapstring.Schemas()
			if len(args) == 1 {
				s, ok := mapstring.Schema(args[0])
				if !ok {
					var names []string
					for _, s := range schemas {
						names = append(names, s.Name)
					}
					return errHint(fmt.Errorf("invalid record: %s", args[0]), fmt.Sprintf("Valid records are %v", names))
				}
				schemas = []mapstring.RecordSchema{s}
			}
			for i, s := range schemas {
				if i > 0 {
					fmt.Fprintln(cli.Stdout)
				}
				fmt.Fprintln(cli.Stdout, color.CyanString(s.Name))
				t := table{header: []string{"#", "Field", "Type"}}
				for j, f := range s.Fields {
					typ := f.Type
					if f.Optional {
						typ = "optional<" + typ + ">"
					}
					t.add(strconv.Itoa(j+1), f.Name, typ)
				}
				t.write(cli.Stdout)
			}
			return nil
		},
	}
}
