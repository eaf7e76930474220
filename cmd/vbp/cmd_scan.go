package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/vbtools/vbp/basic"
)

func newScanCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Parse every .bas and .cls file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			log := commonlog.GetLogger("vbp.scan")

			results, err := basic.NewLoader(afero.NewOsFs()).Load(args[0])
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			clean := 0
			broken := 0
			for _, result := range results {
				if result.Err != nil {
					broken++
					log.Errorf("%s: %s", result.Path, result.Err)
					continue
				}
				failures := result.Failures()
				if len(failures) == 0 {
					clean++
					log.Infof("parsed %s (%s)", result.Path, result.Name())
					continue
				}
				broken++
				log.Noticef("parsed %s (%s) with %d failure(s)", result.Path, result.Name(), len(failures))
				for _, failure := range failures {
					log.Debugf("%s", failure.Error())
				}
			}

			fmt.Printf("%d file(s): %d clean, %d with problems\n", len(results), clean, broken)
			return nil
		},
	}

	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")

	return cmd
}
