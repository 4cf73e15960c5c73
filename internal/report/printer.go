// Package report renders benchmark progress and results on the console.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/utkarsh5026/cpm/internal/clock"
)

// Printer writes the standard report stream. A disabled printer discards
// everything except explicit table rendering requests made by the CLI.
type Printer struct {
	out     io.Writer
	enabled bool

	bold   *color.Color
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	blue   *color.Color
}

// New returns a printer writing to out. When enabled is false nothing is
// printed.
func New(out io.Writer, enabled bool) *Printer {
	return &Printer{
		out:     out,
		enabled: enabled,
		bold:    color.New(color.Bold),
		green:   color.New(color.FgGreen),
		red:     color.New(color.FgRed),
		yellow:  color.New(color.FgYellow),
		blue:    color.New(color.FgBlue),
	}
}

// Enabled reports whether the printer writes anything.
func (p *Printer) Enabled() bool {
	return p.enabled
}

// SetColor forces colors on or off regardless of the terminal.
func (p *Printer) SetColor(on bool) {
	for _, c := range []*color.Color{p.bold, p.green, p.red, p.yellow, p.blue} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	if p.enabled {
		_, _ = fmt.Fprintln(p.out)
	}
}

// Measured prints one measured point as "<title>(<size>) took <duration>".
func (p *Printer) Measured(title, size string, d time.Duration) {
	if p.enabled {
		_, _ = fmt.Fprintf(p.out, "%s(%s) took %s\n", title, size, clock.Format(d))
	}
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	if p.enabled {
		_, _ = p.yellow.Fprintf(p.out, "Warning: "+format+"\n", args...)
	}
}

// Banner describes a run at its start.
type Banner struct {
	File     string
	FolderOK bool
	AutoSave bool
	Warmup   int
	Repeat   int
	Start    time.Time
	Compiler string
	OS       string
}

// Begin prints the start of run banner.
func (p *Printer) Begin(b Banner) {
	if !p.enabled {
		return
	}

	_, _ = p.bold.Fprintln(p.out, "Start CPM benchmarks")
	switch {
	case !b.FolderOK:
		_, _ = p.red.Fprintln(p.out, "   Impossible to save the results (invalid folder)")
	case b.AutoSave:
		_, _ = fmt.Fprintf(p.out, "   Results will be automatically saved in %s\n", b.File)
	default:
		_, _ = fmt.Fprintf(p.out, "   Results will be saved on-demand in %s\n", b.File)
	}
	_, _ = fmt.Fprintf(p.out, "   Each test is warmed-up %d times\n", b.Warmup)
	_, _ = fmt.Fprintf(p.out, "   Each test is repeated %d times\n", b.Repeat)
	_, _ = fmt.Fprintf(p.out, "   Time %s\n", b.Start.Format(time.ANSIC))
	_, _ = fmt.Fprintf(p.out, "   Compiler %s\n", b.Compiler)
	_, _ = fmt.Fprintf(p.out, "   Operating System %s\n", b.OS)
	_, _ = fmt.Fprintln(p.out)
}

// Totals are the counters reported at the end of a run.
type Totals struct {
	Tests    int
	Measures int
	Runs     int
}

// End prints the end of run banner.
func (p *Printer) End(t Totals) {
	if !p.enabled {
		return
	}

	_, _ = fmt.Fprintln(p.out)
	_, _ = p.bold.Fprintln(p.out, "End of CPM benchmarks")
	_, _ = fmt.Fprintf(p.out, "   %s tests have been run\n", clock.FormatNumber(t.Tests))
	_, _ = fmt.Fprintf(p.out, "   %s measures have been taken\n", clock.FormatNumber(t.Measures))
	_, _ = fmt.Fprintf(p.out, "   %s functors calls\n", clock.FormatNumber(t.Runs))
	_, _ = fmt.Fprintln(p.out)
}

// Saved confirms that a run has been written.
func (p *Printer) Saved(path string) {
	if p.enabled {
		_, _ = p.green.Fprintf(p.out, "Results saved in %s\n", path)
	}
}

// Title prints a bold heading line.
func (p *Printer) Title(s string) {
	if p.enabled {
		_, _ = p.bold.Fprintln(p.out, s)
	}
}

// Info prints an indented "<label> <value>" line.
func (p *Printer) Info(label, value string) {
	if p.enabled {
		_, _ = fmt.Fprintf(p.out, "   %s %s\n", p.blue.Sprint(label), value)
	}
}
