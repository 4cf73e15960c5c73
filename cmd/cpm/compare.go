package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/cpm/internal/archive"
)

func newCompareCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "compare <file|folder>...",
		Short: "Compare the series of several result files side by side",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := archive.Expand(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no result file found in %v", args)
			}

			runs, err := archive.LoadAll(cmd.Context(), paths, limit)
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			p.Title(fmt.Sprintf("Comparing %d runs", len(runs)))
			for i, run := range runs {
				p.Info(archive.Label(run), fmt.Sprintf("%s (%s)", run.Time, paths[i]))
			}

			for _, t := range archive.Compare(runs) {
				p.Blank()
				if err := p.Table(t); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "jobs", archive.DefaultLimit, "files decoded concurrently")
	return cmd
}
