package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vbtools/vbp/basic/parser"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the raw token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			lexer := parser.NewLexer(data, filename)
			for _, tok := range lexer.Tokenize() {
				if tok.Kind == parser.KindEndOfFile {
					break
				}
				fmt.Printf("%6d %-28s %s\n", tok.Span.Offset, tok.Kind, strconv.Quote(tok.Text))
			}
			for _, failure := range lexer.Failures() {
				fmt.Println(failure.Error())
			}
			return nil
		},
	}
	return cmd
}
