// Command csvgrep filters a CSV file's rows by a regular expression (or
// literal match) evaluated against one or more columns.
package main

import (
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/wiluite/csvsuite-sub000/internal/cli"
	"github.com/wiluite/csvsuite-sub000/internal/csvcore"
)

func main() {
	flags := &cli.CommonFlags{}
	var pattern string
	var invert bool
	cmd := &cobra.Command{
		Use:   "csvgrep [file]",
		Short: "Filter CSV rows by a pattern matched against selected columns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return run(source, flags, pattern, invert)
		},
	}
	cli.AddCommonFlags(cmd.Flags(), flags)
	cmd.Flags().StringVarP(&pattern, "regex", "r", "", "regular expression a selected column must match")
	cmd.Flags().BoolVarP(&invert, "invert-match", "v", false, "keep rows that do NOT match")
	cli.Execute(cmd)
}

func run(source string, flags *cli.CommonFlags, pattern string, invert bool) error {
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

	re, err := regexp.Compile(pattern)
	if err != nil {
		return &csvcore.ValueError{Msg: "invalid --regex: " + err.Error()}
	}

	targets, err := csvcore.ResolveColumns(flags.Columns, header, 0)
	if err != nil {
		return err
	}

	var kept []csvcore.Row
	for _, row := range rows {
		matched := false
		for _, idx := range targets {
			if idx < len(row) && re.MatchString(row[idx].Value) {
				matched = true
				break
			}
		}
		if matched != invert {
			kept = append(kept, row)
		}
	}

	header, kept = cli.ApplyLineNumbers(header, kept, flags.LineNumbers)
	return cli.WriteCSV(os.Stdout, header, kept)
}
