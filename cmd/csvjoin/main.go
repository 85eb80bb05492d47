// Command csvjoin joins two CSV files on one key column each
// (SPEC_FULL.md §5.4, supplementing spec.md §4.9's join semantics with a
// concrete CLI).
package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wiluite/csvsuite-sub000/internal/cli"
	"github.com/wiluite/csvsuite-sub000/internal/csvcore"
)

func main() {
	flags := &cli.CommonFlags{}
	var left, right, outer, leftAnti, rightAnti bool
	cmd := &cobra.Command{
		Use:   "csvjoin left.csv right.csv",
		Short: "Join two CSV files on one key column each",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := csvcore.InnerJoin
			switch {
			case outer:
				kind = csvcore.OuterJoin
			case left && rightAnti:
				kind = csvcore.RightAntiJoin
			case right && leftAnti:
				kind = csvcore.LeftAntiJoin
			case left:
				kind = csvcore.LeftJoin
			case right:
				kind = csvcore.RightJoin
			case leftAnti:
				kind = csvcore.LeftAntiJoin
			case rightAnti:
				kind = csvcore.RightAntiJoin
			}
			return run(args[0], args[1], flags, kind)
		},
	}
	cli.AddCommonFlags(cmd.Flags(), flags)
	cmd.Flags().BoolVar(&left, "left", false, "left outer join")
	cmd.Flags().BoolVar(&right, "right", false, "right outer join")
	cmd.Flags().BoolVar(&outer, "outer", false, "full outer join")
	cmd.Flags().BoolVar(&leftAnti, "left-anti", false, "rows of the left relation with no match")
	cmd.Flags().BoolVar(&rightAnti, "right-anti", false, "rows of the right relation with no match")
	cli.Execute(cmd)
}

func run(leftPath, rightPath string, flags *cli.CommonFlags, kind csvcore.JoinKind) error {
	leftHeader, leftRows, lc, err := cli.OpenAndTokenize(leftPath, flags)
	if lc != nil {
		defer lc.Close()
	}
	if err != nil {
		return err
	}
	rightHeader, rightRows, rc, err := cli.OpenAndTokenize(rightPath, flags)
	if rc != nil {
		defer rc.Close()
	}
	if err != nil {
		return err
	}

	leftKeyIdx, rightKeyIdx, err := parseKeyColumns(flags.Columns, leftHeader, rightHeader)
	if err != nil {
		return err
	}

	ctx, err := cli.BuildContext(flags)
	if err != nil {
		return err
	}
	leftTable := csvcore.NewTable(leftHeader, leftRows, &ctx)
	rightTable := csvcore.NewTable(rightHeader, rightRows, &ctx)

	result, err := csvcore.Join(leftTable, rightTable, leftKeyIdx, rightKeyIdx, kind, false, flags.NoInference)
	if err != nil {
		return err
	}
	return cli.WriteCSV(os.Stdout, result.Header, result.Rows)
}

// parseKeyColumns parses a "-c left,right" expression, one 1-based index
// per side (SPEC_FULL.md §5.4).
func parseKeyColumns(expr string, leftHeader, rightHeader []string) (int, int, error) {
	parts := strings.Split(expr, ",")
	if len(parts) != 2 {
		return 0, 0, &csvcore.ColumnIdentifierError{Atom: expr, Why: "expected one index per side, e.g. -c 1,1"}
	}
	li, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || li <= 0 || li > len(leftHeader) {
		return 0, 0, &csvcore.ColumnIdentifierError{Atom: parts[0], Why: "index out of range"}
	}
	ri, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || ri <= 0 || ri > len(rightHeader) {
		return 0, 0, &csvcore.ColumnIdentifierError{Atom: parts[1], Why: "index out of range"}
	}
	return li - 1, ri - 1, nil
}
