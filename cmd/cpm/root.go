package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/utkarsh5026/cpm/internal/config"
	"github.com/utkarsh5026/cpm/internal/report"
)

type app struct {
	v        *viper.Viper
	cfgFile  string
	settings config.Settings

	cpuProfile string
	memProfile string
	stop       func()
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), stop: func() {}}

	root := &cobra.Command{
		Use:           "cpm",
		Short:         "Measure, persist and compare the performance of Go functions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.settings = s

			stop, err := setupProfiling(cmd.ErrOrStderr(), a.cpuProfile, a.memProfile)
			if err != nil {
				return err
			}
			a.stop = stop
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.stop()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./cpm.yaml)")
	flags.StringVar(&a.cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	flags.StringVar(&a.memProfile, "memprofile", "", "write a heap profile to this file")
	flags.Bool("no-color", false, "disable colored output")
	_ = a.v.BindPFlag("no_color", flags.Lookup("no-color"))

	root.AddCommand(newRunCmd(a), newShowCmd(a), newCompareCmd(a))
	return root
}

// printer returns a console printer honoring the color setting.
func (a *app) printer(cmd *cobra.Command) *report.Printer {
	p := report.New(cmd.OutOrStdout(), true)
	if a.settings.NoColor {
		p.SetColor(false)
	}
	return p
}

// bindFlags binds each named flag to the viper key of the same name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = v.BindPFlag(name, fs.Lookup(name))
	}
}
