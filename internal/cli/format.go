// Package cli provides output formatting helpers.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// PreflightError reports a condition that prevents a command from starting,
// with a hint and the command to try next.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

func colorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return hasTTY()
}

func colorize(text, color string) string {
	if color == "" || !colorEnabled() {
		return text
	}
	return color + text + colorReset
}

// formatSwatchKind labels a swatch as dark or light.
func formatSwatchKind(dark bool) string {
	if dark {
		return colorize("dark", colorCyan)
	}
	return colorize("light", colorYellow)
}

func formatStatusLabel(label, detail string) string {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, detail)
}

// printError writes err to out, expanding preflight hints.
func printError(out io.Writer, err error) {
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		fmt.Fprintln(out, colorize(formatStatusLabel("ERR", preflight.Message), colorRed))
		if preflight.Hint != "" {
			fmt.Fprintf(out, "  hint: %s\n", preflight.Hint)
		}
		if preflight.NextStep != "" {
			fmt.Fprintf(out, "  next: %s\n", preflight.NextStep)
		}
		return
	}
	fmt.Fprintln(out, colorize(formatStatusLabel("ERR", err.Error()), colorRed))
}
