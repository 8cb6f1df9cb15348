package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KimNorgaard/go-jsonc"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func pruneMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		err = closeOut(cfg, err)
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: at most one input file", cli.ErrUsage)
	}
	paths, compact, err := cfg.keyPaths()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: no deletion path, use -p or -config", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}
	in, err := readInput(file, cc.In)
	if err != nil {
		return err
	}
	opts := cfg.jsoncOpts(cc.Out, compact)
	if cfg.Diff {
		return diffPrune(cc.Out, in, paths, cfg.useColor(cc.Out), opts...)
	}
	return prune(cc.Out, in, paths, opts...)
}

// closeOut closes the -o file, if any. A failed close is reported unless an
// earlier error is already being returned.
func closeOut(cfg *MainConfig, err error) error {
	if cfg.CloseOut == nil {
		return err
	}
	cerr := cfg.CloseOut()
	cfg.CloseOut = nil
	if err != nil {
		return err
	}
	if cerr != nil {
		return fmt.Errorf("error closing %s: %w", cfg.Out, cerr)
	}
	return nil
}

func readInput(file string, stdin io.Reader) ([]byte, error) {
	if file == "-" {
		in, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading: %w", err)
		}
		return in, nil
	}
	in, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return in, nil
}

func prune(w io.Writer, in []byte, paths [][]string, opts ...jsonc.Option) error {
	out, err := jsonc.Prune(in, paths, opts...)
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("error writing result: %w", err)
	}
	return nil
}

// diffPrune renders the document without and with the deletions and writes
// a character diff between the two. Color is applied by the diff itself,
// so the renderings are produced uncolored.
func diffPrune(w io.Writer, in []byte, paths [][]string, colored bool, opts ...jsonc.Option) error {
	opts = append(opts, jsonc.WithColor(false))
	root, err := jsonc.Parse(in, opts...)
	if err != nil {
		return err
	}
	before, err := jsonc.Marshal(root, opts...)
	if err != nil {
		return err
	}
	after, err := jsonc.Prune(in, paths, opts...)
	if err != nil {
		return err
	}

	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(string(before), string(after), false))
	var text string
	if colored {
		text = dmp.DiffPrettyText(diffs)
	} else {
		text = plainDiff(diffs)
	}
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return fmt.Errorf("error writing diff: %w", err)
	}
	return nil
}

func plainDiff(diffs []diffpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
