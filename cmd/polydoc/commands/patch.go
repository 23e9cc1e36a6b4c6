package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/polydoc/polydoc/doc"
	"github.com/polydoc/polydoc/docpatch"
)

type patchConfig struct {
	*cli.Command
	Merge bool `cli:"name=merge aliases=m desc='treat patchfile as an RFC 7386 merge patch'"`
}

// PatchCommand returns the patch subcommand.
func PatchCommand() *cli.Command {
	cfg := &patchConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "patch").
		WithSynopsis("patch [--merge] <file> <patchfile> - Apply a JSON patch").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *patchConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: polydoc patch [--merge] <file> <patchfile>", cli.ErrUsage)
	}
	d, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	patch, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	var out *doc.Document
	if cfg.Merge {
		out, err = docpatch.ApplyMergePatch(d, patch)
	} else {
		out, err = docpatch.ApplyJSONPatch(d, patch)
	}
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc.DocumentToAny(out), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, string(data))
	return nil
}
