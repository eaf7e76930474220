package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vbtools/vbp/basic/parser"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse files and report syntax failures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bold := color.New(color.Bold)
			red := color.New(color.FgRed)
			green := color.New(color.FgGreen)

			total := 0
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read source file: %w", err)
				}
				_, failures := parser.FromText(filename, string(data))
				if len(failures) == 0 {
					green.Printf("ok      %s\n", filename)
					continue
				}
				bold.Println(filename)
				for _, failure := range failures {
					red.Printf("  %s\n", failure.Error())
				}
				total += len(failures)
			}

			if total > 0 {
				cmd.SilenceUsage = true
				return fmt.Errorf("%d failure(s)", total)
			}
			return nil
		},
	}
	return cmd
}
