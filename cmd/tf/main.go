package main

import (
	"context"

	"github.com/scott-cotton/cli"

	"github.com/treeform-format/go-treeform/construct"
	"github.com/treeform-format/go-treeform/exprtag"
)

func main() {
	if err := exprtag.Register(construct.Default()); err != nil {
		panic(err)
	}
	cli.MainContext(context.Background(), MainCommand())
}
