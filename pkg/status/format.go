package status

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/renamerc/pkg/rename"
)

// Config controls rendering. It is passed in explicitly so the formatter
// carries no process-global state.
type Config struct {
	// Color toggles ANSI color output
	Color bool
	// Verbose adds per-pair detail such as replacement counts
	Verbose bool
}

// Formatter defines how pipeline output should be formatted
type Formatter interface {
	// FormatPair formats a proposed rename for the preview listing
	FormatPair(pair rename.Pair) string

	// FormatConflicts formats a conflict report, one line per conflict
	FormatConflicts(report rename.ConflictReport) string

	// FormatResult formats the outcome of one attempted rename
	FormatResult(result rename.Result) string

	// FormatSummary formats the final success/failure counts
	FormatSummary(summary rename.Summary) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string
}

// TextFormatter provides the default terminal implementation of Formatter
type TextFormatter struct {
	cfg Config
}

// NewTextFormatter creates a new TextFormatter with the given config
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{cfg: cfg}
}

// paint colorizes s when color is enabled
func (f *TextFormatter) paint(attrs []color.Attribute, s string) string {
	c := color.New(attrs...)
	if f.cfg.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// FormatPair formats a proposed rename as "source → target"
func (f *TextFormatter) FormatPair(pair rename.Pair) string {
	line := fmt.Sprintf("  %s %s %s",
		f.paint([]color.Attribute{color.FgYellow}, pair.Source),
		f.paint([]color.Attribute{color.Faint}, "→"),
		f.paint([]color.Attribute{color.FgGreen}, filepath.Base(pair.Target)))
	if f.cfg.Verbose {
		line += f.paint([]color.Attribute{color.Faint},
			fmt.Sprintf(" (%d replacement(s))", pair.Replacements))
	}
	return line
}

// FormatConflicts formats every conflict in the report, one per line
func (f *TextFormatter) FormatConflicts(report rename.ConflictReport) string {
	var b strings.Builder
	for _, target := range report.ExistingTargets {
		fmt.Fprintf(&b, "  %s target already exists: %s\n",
			f.paint([]color.Attribute{color.FgRed}, "✗"),
			f.paint([]color.Attribute{color.FgRed}, target))
	}
	for _, group := range report.DuplicateGroups {
		fmt.Fprintf(&b, "  %s multiple files map to %s:\n",
			f.paint([]color.Attribute{color.FgRed}, "✗"),
			f.paint([]color.Attribute{color.FgRed}, group.Target))
		for _, source := range group.Sources {
			fmt.Fprintf(&b, "      %s %s\n",
				f.paint([]color.Attribute{color.Faint}, "←"),
				f.paint([]color.Attribute{color.FgYellow}, source))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// FormatResult formats one rename outcome with a status symbol
func (f *TextFormatter) FormatResult(result rename.Result) string {
	if result.Success() {
		return fmt.Sprintf("  %s %s %s %s",
			f.paint([]color.Attribute{color.FgGreen}, "✓"),
			f.paint([]color.Attribute{color.FgYellow}, result.Pair.Source),
			f.paint([]color.Attribute{color.Faint}, "→"),
			f.paint([]color.Attribute{color.FgGreen}, filepath.Base(result.Pair.Target)))
	}
	return fmt.Sprintf("  %s %s (%s)",
		f.paint([]color.Attribute{color.FgRed}, "✗"),
		f.paint([]color.Attribute{color.FgYellow}, result.Pair.Source),
		f.paint([]color.Attribute{color.FgRed}, result.Reason.String()))
}

// FormatSummary formats the final counts
func (f *TextFormatter) FormatSummary(summary rename.Summary) string {
	if summary.Failed == 0 {
		return fmt.Sprintf("renamed %d file(s)", summary.Succeeded)
	}
	return fmt.Sprintf("renamed %d file(s), %d failed", summary.Succeeded, summary.Failed)
}

// FormatProgress formats a progress message with percentage
func (f *TextFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}
