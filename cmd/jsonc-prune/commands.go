package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "p",
			Aliases:     []string{"path"},
			Description: "deletion path, dotted (a.b) or JSONPath ($.a['b']); may be repeated",
			Type:        cli.NamedFuncOpt(cfg.pathOpt, "(path)"),
		},
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jsonc-prune").
		WithSynopsis("jsonc-prune [opts] [file]").
		WithDescription("jsonc-prune removes keyed members from a relaxed JSON document and prints it minified.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pruneMain(cfg, cc, args)
		})
}
