package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Protocol-Lattice/gqlp/filter"
	"github.com/Protocol-Lattice/gqlp/lexer"
	"github.com/Protocol-Lattice/gqlp/printer"
)

func newTokensCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "tokens FILE",
		Short: "Dump the token stream of a schema document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			toks, err := lexer.Tokenize(src)
			if err != nil {
				return diagnose(args[0], err)
			}
			if !all {
				toks = filter.Slice(toks, filter.Insignificant...)
			}
			a.log.Debug("scanned tokens", "file", args[0], "tokens", len(toks))
			return printer.Tokens(cmd.OutOrStdout(), toks)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "keep line breaks and comments")
	return cmd
}
