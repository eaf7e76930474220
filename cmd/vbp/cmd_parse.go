package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vbtools/vbp/basic/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var showFailures bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .bas or .cls file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			tree, failures := parser.FromText(filename, string(data))
			if tree == nil {
				return fmt.Errorf("parse %s: %s", filename, failures[0].Message)
			}

			switch outputFormat {
			case "tree":
				fmt.Print(tree.DebugTree())
			case "json":
				out, err := json.MarshalIndent(tree, "", "  ")
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println(string(out))
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if showFailures {
				for _, failure := range failures {
					fmt.Println(failure.Error())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")
	cmd.Flags().BoolVar(&showFailures, "failures", false, "list parse failures after the tree")

	return cmd
}
