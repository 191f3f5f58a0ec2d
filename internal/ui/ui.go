// Package ui handles all terminal interaction for the installer: leveled
// message output with quiet/verbose switches, the pre-install confirmation
// prompt, and download progress display.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer writes leveled messages to stderr. Informational output is
// suppressed in quiet mode; warnings and errors always print.
type Printer struct {
	Quiet   bool
	Verbose bool

	out io.Writer
	in  io.Reader

	stdinIsTTY  bool
	stderrIsTTY bool
}

// NewPrinter creates a printer bound to the process's standard streams.
// Color is disabled when stderr is not a terminal or TERM is dumb.
func NewPrinter(quiet, verbose bool) *Printer {
	stderrTTY := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

	if !stderrTTY || os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}

	return &Printer{
		Quiet:       quiet,
		Verbose:     verbose,
		out:         os.Stderr,
		in:          os.Stdin,
		stdinIsTTY:  isatty.IsTerminal(os.Stdin.Fd()),
		stderrIsTTY: stderrTTY,
	}
}

// Infof prints an informational progress message. Suppressed in quiet mode.
func (p *Printer) Infof(format string, args ...interface{}) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.out,
		color.BlueString(" •"),
		fmt.Sprintf(format, args...),
	)
}

// Detailf prints a secondary informational line nested under the previous
// step. Suppressed in quiet mode.
func (p *Printer) Detailf(format string, args ...interface{}) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.out,
		color.New(color.FgHiBlack).Sprint("   └"),
		color.New(color.FgHiBlack).Sprintf(format, args...),
	)
}

// Verbosef prints a detail message only when verbose mode is enabled.
func (p *Printer) Verbosef(format string, args ...interface{}) {
	if !p.Verbose {
		return
	}
	p.Detailf(format, args...)
}

// Warnf prints a non-fatal warning. Never suppressed.
func (p *Printer) Warnf(format string, args ...interface{}) {
	fmt.Fprintln(p.out,
		color.YellowString("warn:"),
		fmt.Sprintf(format, args...),
	)
}

// Errorf prints a fatal error line. Never suppressed.
func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(p.out,
		color.RedString("error:"),
		fmt.Sprintf(format, args...),
	)
}

// Successf prints a completion line. Suppressed in quiet mode.
func (p *Printer) Successf(format string, args ...interface{}) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.out, color.GreenString(" ✔ %s", fmt.Sprintf(format, args...)))
}

// Confirm asks the user to approve the install plan. It returns true when
// the user answers yes. Without a terminal on stdin there is nobody to ask,
// so confirmation fails with guidance to pass -y.
func (p *Printer) Confirm(prompt string) (bool, error) {
	if !p.stdinIsTTY {
		return false, fmt.Errorf("standard input is not a terminal; pass -y to proceed without confirmation")
	}

	fmt.Fprintf(p.out, "%s [y/N] ", prompt)

	reader := bufio.NewReader(p.in)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// Progress wraps a download body with a progress bar when stderr is a
// terminal and quiet mode is off. Returns the wrapped reader and a function
// to finalize the display.
func (p *Printer) Progress(reader io.Reader, size int64) (io.Reader, func()) {
	if p.Quiet || !p.stderrIsTTY || size <= 0 {
		return reader, func() {}
	}

	bar := pb.
		New64(size).
		SetTemplate(
			pb.ProgressBarTemplate(
				color.New(color.FgHiBlack).Sprint(
					`   └ {{counters . }}` +
						` {{bar . "[" "=" ">" " " "]" }} {{percent . }}` +
						` {{speed . }}`,
				),
			),
		).
		SetRefreshRate(time.Second / 60).
		SetMaxWidth(100).
		SetWriter(p.out).
		Start()

	return bar.NewProxyReader(reader), func() { bar.Finish() }
}
