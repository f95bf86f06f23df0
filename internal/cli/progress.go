// Package cli provides progress output for multi-step commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

type progressStep struct {
	out     io.Writer
	label   string
	started time.Time
}

func startProgress(out io.Writer, label string) *progressStep {
	if !progressEnabled() {
		return nil
	}
	fmt.Fprintf(out, "%s... ", label)
	return &progressStep{
		out:     out,
		label:   label,
		started: time.Now(),
	}
}

func (p *progressStep) Done() {
	if p == nil {
		return
	}
	fmt.Fprintf(p.out, "%s (%s)\n", colorize("done", colorGreen), formatElapsed(time.Since(p.started)))
}

func (p *progressStep) Skip(reason string) {
	if p == nil {
		return
	}
	fmt.Fprintln(p.out, colorize(formatStatusLabel("skipped", reason), colorYellow))
}

func (p *progressStep) Fail(err error) {
	if p == nil {
		return
	}
	if err != nil {
		fmt.Fprintln(p.out, colorize(fmt.Sprintf("failed: %v", err), colorRed))
		return
	}
	fmt.Fprintln(p.out, colorize("failed", colorRed))
}

func progressEnabled() bool {
	if noProgress {
		return false
	}
	if _, ok := os.LookupEnv("STAGETIMER_NO_PROGRESS"); ok {
		return false
	}
	if _, ok := os.LookupEnv("NO_PROGRESS"); ok {
		return false
	}
	return true
}

func formatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	if d < time.Second {
		return d.Round(10 * time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
