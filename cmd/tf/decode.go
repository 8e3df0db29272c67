package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/treeform-format/go-treeform/construct"
	"github.com/treeform-format/go-treeform/ir"
	"github.com/treeform-format/go-treeform/parse"
)

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return decodeReader(cfg, cc.Out, cc.In)
	}
	for i, file := range args {
		if err := decodeFile(cfg, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n---\n"))
		}
	}
	return nil
}

func decodeFile(cfg *DecodeConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := decodeReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func decodeReader(cfg *DecodeConfig, w io.Writer, r io.Reader) error {
	docs, err := parse.ParseAll(r)
	if err != nil {
		return fmt.Errorf("error parsing: %w", err)
	}
	if len(docs) == 0 {
		docs = []*ir.Node{ir.Null()}
	}
	n := len(docs)
	for i, root := range docs {
		v, err := construct.Document(root, cfg.buildOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		rd := newRenderer(w, cfg.colors(), cfg.JSON)
		if err := rd.Render(v); err != nil {
			return fmt.Errorf("error rendering document %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
