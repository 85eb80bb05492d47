// Command csvlook renders a CSV file as a Markdown-like grid, via
// tablewriter (the external collaborator spec.md §6 names for grid
// rendering).
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wiluite/csvsuite-sub000/internal/cli"
)

func main() {
	flags := &cli.CommonFlags{}
	cmd := &cobra.Command{
		Use:   "csvlook [file]",
		Short: "Render a CSV file as a text grid",
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

	header, rows = cli.ApplyLineNumbers(header, rows, flags.LineNumbers)
	cli.WriteGrid(os.Stdout, header, rows)
	return nil
}
