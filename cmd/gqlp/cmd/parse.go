package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Protocol-Lattice/gqlp/parser"
	"github.com/Protocol-Lattice/gqlp/printer"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		format  string
		noColor bool
	)
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the declarations of a schema document",
		Long: `Parse a schema document ("-" reads stdin) and print one line per
declaration followed by its fields, values or selections.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}
			f, err := printer.ParseFormat(format)
			if err != nil {
				return err
			}

			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			schema, err := parser.Parse(src)
			if err != nil {
				return diagnose(args[0], err)
			}
			a.log.Debug("parsed schema", "file", args[0], "declarations", len(schema.Declarations))

			styles := printer.PlainStyles()
			if a.cfg.ColorEnabled() && !noColor {
				styles = printer.ColorStyles()
			}
			return printer.New(f, styles).Fprint(cmd.OutOrStdout(), schema)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json or yaml (default from config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled text output")
	return cmd
}
