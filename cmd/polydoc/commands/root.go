package commands

import (
	"github.com/scott-cotton/cli"
)

const usageText = `polydoc - inspect polydoc documents

Usage:
  polydoc dump <file>                 Render a document file
  polydoc diff <a> <b>                Structural diff of two document files
  polydoc patch <file> <patchfile>    Apply a JSON (merge) patch
  polydoc filter <expr> <file>...     Print files whose document matches

Document files hold a single JSON object. The reserved fields "^d" and
"^i" carry the discriminator and the indexed ancestry list.

Examples:
  polydoc dump cat.json
  polydoc diff cat-v1.json cat-v2.json
  polydoc patch cat.json rename.json
  polydoc filter 'kind == "Tiger"' zoo/*.json
  polydoc filter '"Cat" in kinds' zoo/*.json`

// Root returns the root command for polydoc.
func Root() *cli.Command {
	return cli.NewCommand("polydoc").
		WithSynopsis("polydoc - inspect polydoc documents").
		WithDescription(usageText).
		WithSubs(
			DumpCommand(),
			DiffCommand(),
			PatchCommand(),
			FilterCommand(),
		)
}
