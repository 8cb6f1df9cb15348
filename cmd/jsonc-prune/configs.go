package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/KimNorgaard/go-jsonc"
	"github.com/KimNorgaard/go-jsonc/internal/config"
	"github.com/KimNorgaard/go-jsonc/internal/pathexpr"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Config   string `cli:"name=config desc='YAML rules file listing deletion paths'"`
	Compact  bool   `cli:"name=compact desc='omit the space after each colon'"`
	Color    bool   `cli:"name=color desc='encode with color'"`
	Diff     bool   `cli:"name=diff desc='print what pruning removed instead of the result'"`
	Verbose  bool   `cli:"name=v desc='log pipeline stages to stderr'"`
	MaxDepth int    `cli:"name=maxdepth desc='maximum nesting depth, 0 for no limit'"`

	Paths [][]string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) pathOpt(_ *cli.Context, a string) (any, error) {
	segs, err := pathexpr.Parse(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Paths = append(cfg.Paths, segs)
	return segs, nil
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

// keyPaths merges the paths given on the command line with those of the
// rules file, command line first.
func (cfg *MainConfig) keyPaths() ([][]string, bool, error) {
	paths := append([][]string{}, cfg.Paths...)
	compact := cfg.Compact
	if cfg.Config == "" {
		return paths, compact, nil
	}
	rules, err := config.LoadFile(cfg.Config)
	if err != nil {
		return nil, false, err
	}
	return append(paths, rules.KeyPaths()...), compact || rules.Compact, nil
}

func (cfg *MainConfig) logger() *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (cfg *MainConfig) jsoncOpts(w io.Writer, compact bool) []jsonc.Option {
	res := []jsonc.Option{
		jsonc.Logger(cfg.logger()),
		jsonc.WithColor(cfg.useColor(w)),
	}
	if compact {
		res = append(res, jsonc.Compact())
	}
	if cfg.MaxDepth > 0 {
		res = append(res, jsonc.MaxDepth(cfg.MaxDepth))
	}
	return res
}

// useColor honors an explicit -color and otherwise colors only terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
