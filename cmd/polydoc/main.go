package main

import (
	"context"

	"github.com/scott-cotton/cli"

	"github.com/polydoc/polydoc/cmd/polydoc/commands"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
