package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ericlevine/gs1parse/ai"
)

type aiRow struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	MaxLength int    `json:"max_length"`
	Fixed     bool   `json:"fixed_length"`
	Decimals  *int   `json:"decimal_position,omitempty"`
}

func rowOf(d ai.Definition) aiRow {
	r := aiRow{Code: d.Code, Name: d.Name, MaxLength: d.MaxLength, Fixed: d.Fixed}
	if d.HasDecimals {
		n := d.Decimals
		r.Decimals = &n
	}
	return r
}

func newAICmd(root *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "ai [code...]",
		Short: "Show Application Identifier definitions",
		Long: "Without arguments, ai lists the whole table. Decimal codes such as 3103\n" +
			"resolve through their family template.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(root)
			if err != nil {
				return err
			}
			defer log.Sync()
			reg := openRegistry(cfg, log)

			codes := args
			if len(codes) == 0 {
				codes = reg.Codes()
			}
			rows := make([]aiRow, 0, len(codes))
			missing := 0
			for _, code := range codes {
				d, ok := reg.Resolve(code)
				if !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: unknown application identifier\n", code)
					missing++
					continue
				}
				rows = append(rows, rowOf(d))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				err = enc.Encode(rows)
			} else {
				err = printRows(cmd.OutOrStdout(), rows)
			}
			if err != nil {
				return err
			}
			if missing > 0 {
				return exitError{code: 1}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printRows(w io.Writer, rows []aiRow) error {
	if len(rows) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tLENGTH\tFIXED\tDECIMALS")
	for _, r := range rows {
		dec := "-"
		if r.Decimals != nil {
			dec = strconv.Itoa(*r.Decimals)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%s\n", r.Code, r.Name, r.MaxLength, r.Fixed, dec)
	}
	return tw.Flush()
}
