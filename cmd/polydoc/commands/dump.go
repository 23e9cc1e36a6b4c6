package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/polydoc/polydoc/doc"
)

type dumpConfig struct {
	*cli.Command
}

// DumpCommand returns the dump subcommand.
func DumpCommand() *cli.Command {
	cfg := &dumpConfig{}
	return cli.NewCommandAt(&cfg.Command, "dump").
		WithSynopsis("dump <file> - Render a document file").
		WithRun(cfg.run)
}

func (cfg *dumpConfig) run(cc *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: polydoc dump <file>", cli.ErrUsage)
	}
	d, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	return render(cc.Out, doc.FromDocument(d))
}
