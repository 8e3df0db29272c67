package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treeform-format/go-treeform/construct"
)

func tags(cfg *TagsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Tags.Parse(cc, args); err != nil {
		return err
	}
	reg := construct.Default()
	for _, t := range reg.Tags() {
		fmt.Fprintln(cc.Out, t)
	}
	for _, p := range reg.Prefixes() {
		fmt.Fprintf(cc.Out, "%s*\n", p)
	}
	return nil
}
