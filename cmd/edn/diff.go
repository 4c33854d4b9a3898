package main

import (
	"fmt"

	"github.com/signadot/edn-format/go-edn"
	"github.com/signadot/edn-format/go-edn/value"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	from, err := cfg.loadOne(cc, args[0])
	if err != nil {
		return err
	}
	to, err := cfg.loadOne(cc, args[1])
	if err != nil {
		return err
	}
	text, differ, err := edn.Diff(from, to, cfg.Color || isTerminal(cc.Out))
	if err != nil {
		return err
	}
	if !differ {
		return nil
	}
	if !cfg.Quiet {
		fmt.Fprintln(cc.Out, text)
	}
	return cli.ExitCodeErr(1)
}

// loadOne reads arg as a single document. Files holding several edn
// forms are compared as a list of those forms.
func (cfg *DiffConfig) loadOne(cc *cli.Context, arg string) (value.Value, error) {
	d, err := cfg.readArg(cc, arg)
	if err != nil {
		return nil, err
	}
	docs, err := decodeDocs(d, cfg.inFormat(arg))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if len(docs) == 1 {
		return docs[0], nil
	}
	return value.List(docs), nil
}
