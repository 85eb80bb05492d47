// Command csvstat prints per-column descriptive statistics for a CSV
// file, one aggregator chosen per column by its inferred type.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wiluite/csvsuite-sub000/internal/cli"
	"github.com/wiluite/csvsuite-sub000/internal/csvcore"
)

func main() {
	flags := &cli.CommonFlags{}
	var count bool
	var csvOut bool
	var jsonOut bool
	var freqCount int
	cmd := &cobra.Command{
		Use:   "csvstat [file]",
		Short: "Print descriptive statistics for a CSV file's columns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return run(source, flags, count, csvOut, jsonOut, freqCount)
		},
	}
	cli.AddCommonFlags(cmd.Flags(), flags)
	cmd.Flags().BoolVar(&count, "count", false, "print only the row count")
	cmd.Flags().BoolVar(&csvOut, "csv", false, "emit results as CSV, one row per column")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit results as a JSON array")
	cmd.Flags().IntVar(&freqCount, "freq-count", 5, "number of frequency-table rows per column")
	cli.Execute(cmd)
}

func run(source string, flags *cli.CommonFlags, count, csvOut, jsonOut bool, freqCount int) error {
	if csvOut && jsonOut {
		return &csvcore.ConfigurationError{Msg: "--csv and --json are mutually exclusive"}
	}

	header, rows, closer, err := cli.OpenAndTokenize(source, flags)
	if closer != nil {
		defer closer.Close()
	}
	if err != nil {
		return err
	}

	if count {
		fmt.Println(len(rows))
		return nil
	}

	if flags.Names {
		cli.PrintNamesAndExit(header)
		return nil
	}

	ctx, err := cli.BuildContext(flags)
	if err != nil {
		return err
	}

	targets, err := csvcore.ResolveColumns(flags.Columns, header, 0)
	if err != nil {
		return err
	}
	table := csvcore.NewTable(header, rows, &ctx).Select(targets)

	stats := csvcore.ComputeStats(table, csvcore.StatsOptions{FreqCount: freqCount})

	switch {
	case jsonOut:
		return writeJSON(stats)
	case csvOut:
		return writeStatsCSV(stats)
	default:
		writePlain(table.Header, stats)
		return nil
	}
}

func writePlain(header []string, stats []csvcore.ColumnStats) {
	for i, s := range stats {
		fmt.Printf("%3d. %q\n", i+1, header[i])
		fmt.Printf("\t<type: %s>\n", s.Type)
		fmt.Printf("\tNulls: %v\n", s.ContainsNull)
		if s.Min != "" || s.Max != "" {
			fmt.Printf("\tMin: %s\n", s.Min)
			fmt.Printf("\tMax: %s\n", s.Max)
		}
		switch s.Type {
		case csvcore.TypeNumber, csvcore.TypeTimedelta:
			fmt.Printf("\tSum: %v\n", s.Sum)
			fmt.Printf("\tMean: %v\n", s.Mean)
			fmt.Printf("\tMedian: %v\n", s.Median)
			fmt.Printf("\tStandard Deviation: %v\n", s.Stdev)
		}
		if s.Type == csvcore.TypeNumber {
			fmt.Printf("\tMax Precision: %d\n", s.MaxPrecision)
		}
		if s.Type == csvcore.TypeText {
			fmt.Printf("\tLongest Value: %d characters\n", s.Longest)
		}
		fmt.Printf("\tUnique values: %d\n", s.Unique)
		for _, fq := range s.Freq {
			fmt.Printf("\t%q: %d\n", fq.Value, fq.Count)
		}
		fmt.Println()
	}
	fmt.Printf("Row count: -\n")
}

func writeStatsCSV(stats []csvcore.ColumnStats) error {
	w := csvcore.NewWriter(os.Stdout)
	if err := w.WriteStrings([]string{"column_id", "column_name", "type", "nulls", "unique", "min", "max", "sum", "mean", "median", "stdev", "len", "maxprecision", "freq"}); err != nil {
		return err
	}
	for i, s := range stats {
		if err := w.WriteStrings([]string{
			fmt.Sprint(i + 1),
			s.Name,
			s.Type.String(),
			fmt.Sprint(s.ContainsNull),
			fmt.Sprint(s.Unique),
			s.Min,
			s.Max,
			fmt.Sprint(s.Sum),
			fmt.Sprint(s.Mean),
			fmt.Sprint(s.Median),
			fmt.Sprint(s.Stdev),
			fmt.Sprint(s.Longest),
			fmt.Sprint(s.MaxPrecision),
			freqString(s.Freq),
		}); err != nil {
			return err
		}
	}
	return w.Flush()
}

func freqString(freq []csvcore.FreqEntry) string {
	out := ""
	for i, f := range freq {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s: %d", f.Value, f.Count)
	}
	return out
}

type jsonColumnStat struct {
	ColumnID   int    `json:"column_id"`
	ColumnName string `json:"column_name"`
	Type       string `json:"type"`
	Nulls      bool   `json:"nulls"`
	Unique     int    `json:"unique"`
	Min        string `json:"min,omitempty"`
	Max        string `json:"max,omitempty"`
	Sum        string `json:"sum,omitempty"`
	Mean       float64 `json:"mean,omitempty"`
	Median     float64 `json:"median,omitempty"`
	Stdev      float64 `json:"stdev,omitempty"`
	Len        int    `json:"len,omitempty"`
	MaxPrec    int    `json:"max_precision,omitempty"`
	Freq       []csvcore.FreqEntry `json:"freq,omitempty"`
}

func writeJSON(stats []csvcore.ColumnStats) error {
	out := make([]jsonColumnStat, len(stats))
	for i, s := range stats {
		out[i] = jsonColumnStat{
			ColumnID: i + 1, ColumnName: s.Name, Type: s.Type.String(), Nulls: s.ContainsNull,
			Unique: s.Unique, Min: s.Min, Max: s.Max, Sum: s.Sum, Mean: s.Mean, Median: s.Median,
			Stdev: s.Stdev, Len: s.Longest, MaxPrec: s.MaxPrecision, Freq: s.Freq,
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
