package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "tf").
		WithSynopsis("tf [opts] command [opts]").
		WithDescription("tf decodes tagged documents into native values.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tfMain(cfg, cc, args)
		}).
		WithSubs(
			DecodeCommand(cfg),
			TagsCommand(cfg))
}

func tfMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d", "de").
		WithSynopsis("decode [files]").
		WithDescription("decode documents and print their constructed values").
		WithRun(func(cc *cli.Context, args []string) error {
			return decode(cfg, cc, args)
		})
}

func TagsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TagsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tags, "tags").
		WithAliases("t").
		WithSynopsis("tags").
		WithDescription("list the registered tag table").
		WithRun(func(cc *cli.Context, args []string) error {
			return tags(cfg, cc, args)
		})
}
