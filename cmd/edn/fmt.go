package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/edn-format/go-edn"

	"github.com/scott-cotton/cli"
)

func ednFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	args = inputArgs(args)
	if cfg.Write && len(args) == 1 && args[0] == "-" {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	for _, arg := range args {
		if cfg.Verbose {
			theLog.Info("fmt", "input", arg)
		}
		d, err := cfg.readArg(cc, arg)
		if err != nil {
			return err
		}
		docs, err := edn.LoadAll(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		if !cfg.Write {
			if err := writeDocs(cc.Out, docs, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := writeDocs(buf, docs, cfg.plainOpts()...); err != nil {
			return err
		}
		if bytes.Equal(buf.Bytes(), d) {
			continue
		}
		if err := os.WriteFile(arg, buf.Bytes(), 0644); err != nil {
			return err
		}
		if cfg.Verbose {
			theLog.Info("fmt", "wrote", arg)
		}
	}
	return nil
}
