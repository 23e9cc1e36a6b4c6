package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/polydoc/polydoc/doc"
	"github.com/polydoc/polydoc/docdiff"
)

type diffConfig struct {
	*cli.Command
}

// DiffCommand returns the diff subcommand.
func DiffCommand() *cli.Command {
	cfg := &diffConfig{}
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff <a> <b> - Structural diff of two document files").
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: polydoc diff <a> <b>", cli.ErrUsage)
	}
	a, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	b, err := loadDocument(args[1])
	if err != nil {
		return err
	}
	dd := docdiff.DiffDocument(a, b)
	if dd == nil {
		fmt.Fprintln(cc.Out, "documents are equal")
		return nil
	}
	return render(cc.Out, doc.FromDocument(dd))
}
