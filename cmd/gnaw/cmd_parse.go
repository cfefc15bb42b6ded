package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/gnaw/format"
	"github.com/dhamidi/gnaw/grammar"
	"github.com/dhamidi/gnaw/parse"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a record file with the built-in grammar and dump the result",
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

			rest, value, err := p(parse.NewCursor(data))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			if !rest.EOF() {
				return fmt.Errorf("parse: trailing input at offset %d", rest.Pos())
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "sexpr":
				encoder = format.NewSexprEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			if err := encoder.Encode(value); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or sexpr")
	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
