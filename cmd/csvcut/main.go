// Command csvcut filters a CSV file's columns by index, name, or range.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wiluite/csvsuite-sub000/internal/cli"
	"github.com/wiluite/csvsuite-sub000/internal/csvcore"
)

func main() {
	flags := &cli.CommonFlags{}
	cmd := &cobra.Command{
		Use:   "csvcut [file]",
		Short: "Filter CSV columns by identifier expression",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return run(source, flags)
		},
	}
	cli.AddCommonFlags(cmd.Flags(), flags)
	cli.Execute(cmd)
}

func run(source string, flags *cli.CommonFlags) error {
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

	include, err := csvcore.ResolveColumns(flags.Columns, header, 0)
	if err != nil {
		return err
	}
	include, err = csvcore.ResolveExcludes(include, flags.NotColumns, header, 0)
	if err != nil {
		return err
	}

	selHeader := make([]string, len(include))
	for i, idx := range include {
		selHeader[i] = header[idx]
	}
	selRows := make([]csvcore.Row, len(rows))
	for r, row := range rows {
		nr := make(csvcore.Row, len(include))
		for i, idx := range include {
			if idx < len(row) {
				nr[i] = row[idx]
			}
		}
		selRows[r] = nr
	}

	selHeader, selRows2 := cli.ApplyLineNumbers(selHeader, selRows, flags.LineNumbers)
	return cli.WriteCSV(os.Stdout, selHeader, selRows2)
}
