package cli

import (
	"errors"
	"fmt"

	"github.com/fodmaplab/reintro"
	"github.com/fodmaplab/reintro/pkg/schema"
)

// NextOptions configures the 'next' command.
type NextOptions struct {
	StatePath string
	Now       string // RFC 3339; empty means the current time
	Pretty    bool
	Debug     bool
}

// RunNext loads a snapshot, computes the next protocol step and prints it as
// JSON on stdout.
func RunNext(opts NextOptions) error {
	state, err := loadState(opts.StatePath)
	if err != nil {
		return err
	}
	now, err := parseNow(opts.Now)
	if err != nil {
		return err
	}

	eng := reintro.New(reintro.WithLogger(newLogger(opts.Debug)))
	action, err := eng.NextAction(state, now)
	if err != nil {
		var aggr *schema.AggregateError
		if errors.As(err, &aggr) {
			return fmt.Errorf("state file failed validation:\n%s", aggr.Error())
		}
		return err
	}

	return printJSON(action, opts.Pretty)
}
