package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/treeform-format/go-treeform/construct"
)

type MainConfig struct {
	JSON  bool `cli:"name=json aliases=j desc='render decoded documents as JSON'"`
	Color bool `cli:"name=color desc='force colored output'"`
	UTC   bool `cli:"name=utc desc='normalize timestamps to UTC instead of local time'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) buildOpts() []construct.Option {
	var opts []construct.Option
	if cfg.UTC {
		opts = append(opts, construct.WithUTCTimestamps())
	}
	return opts
}

// useColor: explicit -color wins, otherwise only when writing to a
// terminal and not rendering JSON.
func (cfg *MainConfig) useColor() bool {
	if cfg.Color {
		return true
	}
	if cfg.JSON || cfg.Out != "" && cfg.Out != "-" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func (cfg *MainConfig) colors() *renderColors {
	if !cfg.useColor() {
		return noColors()
	}
	return &renderColors{
		Key:    color.New(color.FgCyan),
		Str:    color.New(color.FgGreen),
		Num:    color.New(color.FgYellow),
		Bool:   color.New(color.FgMagenta),
		Null:   color.New(color.Faint),
		Tag:    color.New(color.FgRed),
		Anchor: color.New(color.FgBlue),
	}
}

type DecodeConfig struct {
	*MainConfig
	Decode *cli.Command
}

type TagsConfig struct {
	*MainConfig
	Tags *cli.Command
}
