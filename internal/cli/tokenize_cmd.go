package cli

import (
	"fmt"

	"github.com/alexanderramin/shiftroster/internal/cli/formatter"
	"github.com/alexanderramin/shiftroster/internal/roster"
	"github.com/spf13/cobra"
)

func newTokenizeCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "tokenize BLOB",
		Short: "Split a shift blob into codes and show how each was read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob := args[0]
			n := limit
			if !cmd.Flags().Changed("limit") {
				n = app.Config.SlotCount
			}
			if n <= 0 {
				n = len(blob)
			}

			tokens := roster.Tokenize(blob, n)
			out := cmd.OutOrStdout()
			if app.interactive() {
				fmt.Fprint(out, formatter.FormatTokens(tokens))
				return nil
			}
			for _, tok := range tokens {
				fmt.Fprintf(out, "%s\t%s\n", tok.Code, tok.Kind)
			}
			if len(tokens) == 0 {
				fmt.Fprintln(out, formatter.Plural(0, "token"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "stop after this many tokens, 0 for no limit (defaults to the slot count)")
	return cmd
}
