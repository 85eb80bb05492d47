// Command csvclean runs the quick-check over an entire CSV file and
// either reports a dry-run summary or splits the input into conforming
// and ragged sibling files (SPEC_FULL.md §5.3, supplementing spec.md's
// §4.7 reference to "the csvclean workflow").
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wiluite/csvsuite-sub000/internal/cli"
	"github.com/wiluite/csvsuite-sub000/internal/csvcore"
)

func main() {
	flags := &cli.CommonFlags{}
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "csvclean [file]",
		Short: "Split a CSV file into conforming and ragged rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], flags, dryRun)
		},
	}
	cli.AddCommonFlags(cmd.Flags(), flags)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report a summary without writing output files")
	cli.Execute(cmd)
}

func run(source string, flags *cli.CommonFlags, dryRun bool) error {
	header, rows, closer, err := cli.OpenAndTokenize(source, flags)
	if closer != nil {
		defer closer.Close()
	}
	if err != nil {
		// Ragged rows are what csvclean sorts out below; any other error
		// (parse, encoding, field size) still aborts.
		if _, isRagged := err.(*csvcore.RaggedRowError); !isRagged {
			return err
		}
	}

	var ok, ragged []csvcore.Row
	var raggedLines []int
	for i, row := range rows {
		if len(row) == len(header) {
			ok = append(ok, row)
			continue
		}
		ragged = append(ragged, row)
		raggedLines = append(raggedLines, flags.SkipLines+2+i)
	}

	if dryRun {
		fmt.Printf("%d ragged row(s)", len(ragged))
		if len(ragged) > 0 {
			fmt.Printf(" on line(s) %v", raggedLines)
		}
		fmt.Println()
		return nil
	}

	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	outFile, err := os.Create(base + "_out.csv")
	if err != nil {
		return err
	}
	defer outFile.Close()
	if err := cli.WriteCSV(outFile, header, ok); err != nil {
		return err
	}

	errFile, err := os.Create(base + "_err.csv")
	if err != nil {
		return err
	}
	defer errFile.Close()
	return cli.WriteCSV(errFile, header, ragged)
}
