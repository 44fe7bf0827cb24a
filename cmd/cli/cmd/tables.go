// Package cmd - table file commands
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"kingshot-calc/core/tabledef"
)

func newTablesCmd() *cobra.Command {
	tablesCmd := &cobra.Command{
		Use:   "tables",
		Short: "Work with replacement cost table files",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Load and validate HCL or TOML table files",
		Long: `Load every table in the given files and report every problem found.

Examples:
  kscalc tables check tables/mastery.hcl
  kscalc tables check tables/*.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := tabledef.LoadTables(args...)

			names := make([]string, 0, len(tables))
			for n := range tables {
				names = append(names, n)
			}
			sort.Strings(names)
			for _, n := range names {
				t := tables[n]
				lower, upper := t.Bounds()
				fmt.Fprintf(cmd.OutOrStdout(), "ok  %-12s %s %d..%d  %v\n", n, t.Kind(), lower, upper, t.Schema().Strings())
			}
			return err
		},
	}

	tablesCmd.AddCommand(checkCmd)
	return tablesCmd
}
