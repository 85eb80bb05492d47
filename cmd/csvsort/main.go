// Command csvsort sorts a CSV file's rows by one or more key columns,
// using each key's inferred type for comparison.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wiluite/csvsuite-sub000/internal/cli"
	"github.com/wiluite/csvsuite-sub000/internal/csvcore"
)

func main() {
	flags := &cli.CommonFlags{}
	var ignoreCase bool
	var reverse bool
	cmd := &cobra.Command{
		Use:   "csvsort [file]",
		Short: "Sort a CSV file by one or more columns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return run(source, flags, ignoreCase, reverse)
		},
	}
	cli.AddCommonFlags(cmd.Flags(), flags)
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "case-insensitive text comparison")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "sort in descending order")
	cli.Execute(cmd)
}

func run(source string, flags *cli.CommonFlags, ignoreCase bool, reverse bool) error {
	header, rows, closer, err := cli.OpenAndTokenize(source, flags)
	if closer != nil {
		defer closer.Close()
	}
	if err != nil {
		return err
	}

	if flags.Names {
		cli.PrintNamesAndExit(header)
		return nil
	}

	ctx, err := cli.BuildContext(flags)
	if err != nil {
		return err
	}

	table := csvcore.NewTable(header, rows, &ctx)
	keyIdx, err := csvcore.ResolveColumns(flags.Columns, header, 0)
	if err != nil {
		return err
	}
	meta := table.InferTypes()
	keys := make([]csvcore.KeyColumn, len(keyIdx))
	for i, idx := range keyIdx {
		keys[i] = csvcore.KeyColumn{Index: idx, Type: meta[idx].Type}
	}

	// Ties preserve input order for a user-facing sort too (scenario 3);
	// passing stable=true makes SortTable use sort.SliceStable, with or
	// without -r.
	csvcore.SortTable(table, keys, ignoreCase, true, reverse)

	header, sortedRows := cli.ApplyLineNumbers(table.Header, table.Rows, flags.LineNumbers)
	return cli.WriteCSV(os.Stdout, header, sortedRows)
}
