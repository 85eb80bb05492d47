// Command csvjson renders a CSV file as a JSON array of row objects,
// typing each value per its column's inferred type.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/wiluite/csvsuite-sub000/internal/cli"
	"github.com/wiluite/csvsuite-sub000/internal/csvcore"
)

func main() {
	flags := &cli.CommonFlags{}
	var key string
	cmd := &cobra.Command{
		Use:   "csvjson [file]",
		Short: "Render a CSV file as a JSON array of row objects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return run(source, flags, key)
		},
	}
	cli.AddCommonFlags(cmd.Flags(), flags)
	cmd.Flags().StringVarP(&key, "key", "k", "", "column to key the output object by, instead of an array")
	cli.Execute(cmd)
}

func run(source string, flags *cli.CommonFlags, key string) error {
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
	meta := table.InferTypes()

	objects := make([]map[string]interface{}, len(rows))
	for r, row := range rows {
		obj := make(map[string]interface{}, len(header))
		for c, name := range header {
			var field csvcore.Field
			if c < len(row) {
				field = row[c]
			}
			cell := csvcore.NewTypedCell(field, &ctx)
			obj[name] = jsonValue(cell, meta[c].Type, &ctx)
		}
		objects[r] = obj
	}

	enc := json.NewEncoder(os.Stdout)
	if key == "" {
		return enc.Encode(objects)
	}

	keyed := make(map[string]interface{}, len(objects))
	for _, obj := range objects {
		k, ok := obj[key]
		if !ok {
			return &csvcore.ValueError{Msg: "unknown --key column " + key}
		}
		keyStr := fmt.Sprint(k)
		if _, dup := keyed[keyStr]; dup {
			return &csvcore.ValueError{Msg: "duplicate --key value " + keyStr}
		}
		keyed[keyStr] = obj
	}
	return enc.Encode(keyed)
}

func jsonValue(cell *csvcore.TypedCell, t csvcore.ColumnType, ctx *csvcore.Context) interface{} {
	if cell.IsNull() {
		return nil
	}
	switch t {
	case csvcore.TypeBoolean:
		return cell.Bool()
	case csvcore.TypeNumber:
		n := cell.Num()
		if n.Kind != csvcore.Finite {
			return n.Kind.String()
		}
		return jsonNumber(n.Value)
	case csvcore.TypeDate:
		d, _ := cell.Date()
		return d.Format(csvcore.DateLayout)
	case csvcore.TypeDateTime:
		d, _ := cell.DateTime()
		return d.Format(csvcore.DateTimeLayout)
	case csvcore.TypeTimedelta:
		td, _ := cell.TimedeltaTuple()
		return td.String()
	default:
		return cell.FieldValue()
	}
}

// jsonNumberLiteral is a JSON number rendered verbatim from
// decimal.Decimal's exact String(), bypassing the float64 round trip
// through encoding/json that would strip scenario 6's trailing ".0" off
// integral values. It implements fmt.Stringer too, so --key lookups on a
// numeric column (which format the key with fmt.Sprint) still print the
// plain digits rather than a byte-slice dump.
type jsonNumberLiteral string

func (j jsonNumberLiteral) MarshalJSON() ([]byte, error) { return []byte(j), nil }
func (j jsonNumberLiteral) String() string               { return string(j) }

func jsonNumber(dec decimal.Decimal) jsonNumberLiteral {
	s := dec.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return jsonNumberLiteral(s)
}
