package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/cpm/internal/archive"
	"github.com/utkarsh5026/cpm/internal/persist"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Render the series and sections of a result file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := persist.Load(args[0])
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			p.Title(fmt.Sprintf("%s (tag %s)", run.Name, run.Tag))
			p.Info("Time", run.Time)
			p.Info("Compiler", run.Compiler)
			p.Info("Operating System", run.OS)
			p.Info("Series", strconv.Itoa(len(run.Results)))
			p.Info("Sections", strconv.Itoa(len(run.Sections)))

			for _, t := range archive.Tables(run) {
				p.Blank()
				if err := p.Table(t); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
