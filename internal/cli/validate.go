package cli

import (
	"fmt"

	"github.com/fodmaplab/reintro"
)

// ValidateOptions configures the 'validate' command.
type ValidateOptions struct {
	StatePath string
	Debug     bool
}

// RunValidate checks a snapshot file for shape and consistency problems.
// It returns an error when the snapshot is not usable, after printing every
// problem found.
func RunValidate(opts ValidateOptions) error {
	state, err := loadState(opts.StatePath)
	if err != nil {
		return err
	}

	eng := reintro.New(reintro.WithLogger(newLogger(opts.Debug)))
	report, err := eng.Validate(state)
	if err != nil {
		return fmt.Errorf("state file failed validation:\n%s", err.Error())
	}

	if !report.Valid {
		for _, problem := range report.Problems {
			fmt.Println("- " + problem)
		}
		return fmt.Errorf("snapshot has %d consistency problem(s)", len(report.Problems))
	}

	fmt.Println("Snapshot is valid.")
	return nil
}
