package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/gnaw/grammar"
	"github.com/dhamidi/gnaw/parse"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func newCheckCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check whether input parses; exit 1 on failure, 2 on incomplete input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}

			p, err := grammar.Build(demoGrammar(), parse.Whitespace)
			if err != nil {
				return fmt.Errorf("build grammar: %w", err)
			}
			if verbose {
				commonlog.Configure(2, nil)
				p = parse.Trace(commonlog.GetLogger("gnaw.check"), "doc", p)
			}

			rest, _, err := p(parse.NewCursor(data))
			switch {
			case parse.IsIncomplete(err):
				fmt.Fprintf(os.Stderr, "incomplete: %v\n", err)
				os.Exit(2)
			case err != nil:
				fmt.Fprintf(os.Stderr, "failed: %v\n", err)
				os.Exit(1)
			case !rest.EOF():
				fmt.Fprintf(os.Stderr, "failed: trailing input at offset %d\n", rest.Pos())
				os.Exit(1)
			}
			fmt.Println("ok")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Trace every parse attempt")
	return cmd
}
