// Command csvstack concatenates multiple CSV files sharing a header,
// optionally tagging each source's rows with a grouping label.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wiluite/csvsuite-sub000/internal/cli"
	"github.com/wiluite/csvsuite-sub000/internal/csvcore"
)

func main() {
	flags := &cli.CommonFlags{}
	var groups string
	var groupName string
	cmd := &cobra.Command{
		Use:   "csvstack [files...]",
		Short: "Stack the rows of multiple CSV files sharing a header",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, flags, groups, groupName)
		},
	}
	cli.AddCommonFlags(cmd.Flags(), flags)
	cmd.Flags().StringVarP(&groups, "groups", "g", "", "comma-separated grouping label per input file")
	// No shorthand: -n is already bound to --names by AddCommonFlags, and
	// pflag panics on a duplicate shorthand registration.
	cmd.Flags().StringVar(&groupName, "group-name", "group", "name of the synthesized grouping column")
	cli.Execute(cmd)
}

// run reads each source fully into a per-file batch of rows (a plain
// slice, since csvstack's inputs are bounded and read fully before the
// stack is emitted) and concatenates the batches in input order.
func run(sources []string, flags *cli.CommonFlags, groups, groupName string) error {
	var labels []string
	if groups != "" {
		labels = strings.Split(groups, ",")
		if len(labels) != len(sources) {
			return &csvcore.ValueError{Msg: "number of --groups labels must match number of input files"}
		}
	}

	var header []string
	var allRows []csvcore.Row
	for i, source := range sources {
		h, rows, closer, err := cli.OpenAndTokenize(source, flags)
		if closer != nil {
			defer closer.Close()
		}
		if err != nil {
			return err
		}
		if header == nil {
			header = h
		}
		if labels != nil {
			for _, row := range rows {
				allRows = append(allRows, append(csvcore.Row{{Value: labels[i]}}, row...))
			}
		} else {
			allRows = append(allRows, rows...)
		}
	}

	if labels != nil {
		header = append([]string{groupName}, header...)
	}

	if flags.Names {
		cli.PrintNamesAndExit(header)
		return nil
	}

	header, allRows = cli.ApplyLineNumbers(header, allRows, flags.LineNumbers)
	return cli.WriteCSV(os.Stdout, header, allRows)
}
