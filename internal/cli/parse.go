package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ericlevine/gs1parse"
	"github.com/ericlevine/gs1parse/charset"
)

type parseOptions struct {
	verbose bool
	json    bool
	charset string
}

func newParseCmd(root *rootOptions) *cobra.Command {
	o := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [payload...]",
		Short: "Parse payloads given as arguments, or one per line on stdin",
		Long: "Parse splits each payload into Application Identifier elements.\n\n" +
			"Group separators may be given as the GS control character or as one of\n" +
			"its stand-ins: [FNC1], <GS>, \\x1d and similar. The command exits with\n" +
			"status 1 when any payload yields no elements.",
		Example: "  gs1parse parse '0109506000134352[FNC1]10ABC123'\n" +
			"  gs1parse parse --verbose --json < payloads.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(root)
			if err != nil {
				return err
			}
			defer log.Sync()

			inputs := args
			if len(inputs) == 0 {
				if inputs, err = readPayloads(cmd.InOrStdin(), o.charset); err != nil {
					return err
				}
			}
			p := gs1parse.NewParser(openRegistry(cfg, log))
			return runParse(cmd, p, o, inputs)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&o.verbose, "verbose", false, "list every element in payload order, duplicates included")
	f.BoolVar(&o.json, "json", false, "print one JSON result per payload")
	f.StringVar(&o.charset, "charset", "", "character set of stdin; guessed when empty")
	return cmd
}

// readPayloads decodes r as text in cs and returns its non-blank lines.
func readPayloads(r io.Reader, cs string) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	text, err := charset.Decode(data, cs)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

func runParse(cmd *cobra.Command, p *gs1parse.Parser, o *parseOptions, inputs []string) error {
	out := cmd.OutOrStdout()
	mode := gs1parse.ModeOf(o.verbose)
	failed := 0
	for i, in := range inputs {
		res := p.Parse(in, mode)
		if res.Empty() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%q: no elements found\n", in)
			failed++
			continue
		}
		if o.json {
			if err := json.NewEncoder(out).Encode(res); err != nil {
				return err
			}
			continue
		}
		if len(inputs) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%q\n", in)
		}
		if err := printResult(out, res); err != nil {
			return err
		}
	}
	if failed > 0 {
		return exitError{code: 1}
	}
	return nil
}

func printResult(w io.Writer, res gs1parse.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if res.Mode == gs1parse.ModeVerbose {
		fmt.Fprintln(tw, "AI\tNAME\tVALUE\tCHECK")
		for _, e := range res.Elements {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.AI, e.Name, e.Value, check(e.Valid))
		}
		return tw.Flush()
	}

	fmt.Fprintln(tw, "NAME\tVALUE")
	seen := make(map[string]bool, len(res.Fields))
	for _, e := range res.Elements {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, res.Fields[e.Name])
	}
	return tw.Flush()
}

func check(valid *bool) string {
	switch {
	case valid == nil:
		return "-"
	case *valid:
		return "ok"
	default:
		return "FAIL"
	}
}
