package cli

import (
	"fmt"

	"github.com/fodmaplab/reintro/internal/report"
)

// ReportOptions configures the 'report' command.
type ReportOptions struct {
	StatePath string
	Plain     bool // emit raw markdown instead of terminal rendering
}

// RunReport builds the protocol report for a snapshot and prints it.
func RunReport(opts ReportOptions) error {
	state, err := loadState(opts.StatePath)
	if err != nil {
		return err
	}

	markdown := report.Build(state)
	if opts.Plain {
		fmt.Print(markdown)
		return nil
	}

	render := report.NewRenderer()
	out, err := render(markdown)
	if err != nil {
		// Rendering is cosmetic; fall back to the raw markdown.
		fmt.Print(markdown)
		return nil
	}
	fmt.Print(out)
	return nil
}
