package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/xlsplit-go/pkg/xlsplit"
)

// progressReporter prints step headers and a progress bar that is redrawn
// in place after every saved file.
type progressReporter struct {
	out    io.Writer
	bar    progress.Model
	prefix lipgloss.Style
	done   lipgloss.Style
}

func newProgressReporter(out io.Writer) *progressReporter {
	return &progressReporter{
		out:    out,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
		prefix: lipgloss.NewStyle().Bold(true).Faint(true),
		done:   lipgloss.NewStyle().Bold(true),
	}
}

func (r *progressReporter) StepStarted(step xlsplit.Step) {
	label := fmt.Sprintf("[%d/%d]", int(step), xlsplit.StepCount)
	fmt.Fprintf(r.out, "%s %s...\n", r.prefix.Render(label), step)
}

func (r *progressReporter) PageClosed(page, totalPages int) {
	percent := 1.0
	if totalPages > 0 && page < totalPages {
		percent = float64(page) / float64(totalPages)
	}
	fmt.Fprintf(r.out, "\r%s saving file %d/%d", r.bar.ViewAs(percent), page, totalPages)
}

func (r *progressReporter) Finished() {
	fmt.Fprintf(r.out, " %s\n", r.done.Render("done!"))
}
