package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/utkarsh5026/cpm/cpm"
	"github.com/utkarsh5026/cpm/internal/suites"
)

func newRunCmd(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run built-in suites, all of them when none is named",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return listSuites(cmd.OutOrStdout())
			}
			return a.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&list, "list", false, "list the available suites and exit")
	flags.String("name", "cpm", "name of the run")
	flags.Int("warmup", cpm.DefaultWarmup, "untimed calls before each measure")
	flags.Int("repeat", cpm.DefaultRepeat, "timed calls per measure")
	flags.String("folder", ".", "folder receiving the result file")
	flags.String("tag", "", "result file tag, the first free number by default")
	flags.Bool("autosave", true, "save the results when the run ends")
	flags.Bool("mkdir", true, "create the results folder when missing")
	flags.BoolP("quiet", "q", false, "hide the report and show a progress bar")
	flags.Uint64("seed", 0, "seed of the input randomizer, random when zero")
	flags.Int("pin", -1, "pin measurements to this CPU core")

	bindFlags(a.v, flags, "name", "warmup", "repeat", "folder", "tag", "autosave", "mkdir", "quiet", "seed", "pin")
	return cmd
}

func (a *app) run(cmd *cobra.Command, names []string) error {
	picked, err := suites.Lookup(names...)
	if err != nil {
		return err
	}

	s := a.settings
	out := cmd.OutOrStdout()
	b := cpm.New(s.Name, append(s.Options(), cpm.WithOutput(out))...)
	b.Begin()

	var bar *progressbar.ProgressBar
	if s.Quiet {
		bar = makeProgressBar(cmd.ErrOrStderr(), len(picked))
	}

	for _, suite := range picked {
		if bar != nil {
			bar.Describe(fmt.Sprintf("Running: %s", suite.Name))
		}
		suite.Run(b)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())
	}

	if err := b.End(); err != nil {
		return err
	}

	if s.Quiet && s.AutoSave {
		if _, err := os.Stat(b.File()); err == nil {
			_, _ = fmt.Fprintf(out, "Results saved in %s\n", b.File())
		}
	}
	return nil
}

func makeProgressBar(w io.Writer, n int) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Running suites"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func listSuites(w io.Writer) error {
	table := tablewriter.NewTable(w, tablewriter.WithHeaderAutoFormat(tw.Off))
	table.Header("Suite", "Description")
	for _, s := range suites.All() {
		if err := table.Append([]string{s.Name, s.Description}); err != nil {
			return err
		}
	}
	return table.Render()
}
