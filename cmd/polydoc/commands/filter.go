package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/polydoc/polydoc/match"
)

type filterConfig struct {
	*cli.Command
}

// FilterCommand returns the filter subcommand.
func FilterCommand() *cli.Command {
	cfg := &filterConfig{}
	return cli.NewCommandAt(&cfg.Command, "filter").
		WithSynopsis("filter <expr> <file>... - Print files whose document matches").
		WithRun(cfg.run)
}

func (cfg *filterConfig) run(cc *cli.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: usage: polydoc filter <expr> <file>...", cli.ErrUsage)
	}
	m, err := match.Compile(args[0])
	if err != nil {
		return err
	}
	for _, path := range args[1:] {
		d, err := loadDocument(path)
		if err != nil {
			return err
		}
		ok, err := m.Eval(d)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if ok {
			fmt.Fprintln(cc.Out, path)
		}
	}
	return nil
}
