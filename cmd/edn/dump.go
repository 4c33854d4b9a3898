package main

import (
	"fmt"
	"os"

	"github.com/signadot/edn-format/go-edn"
	"github.com/signadot/edn-format/go-edn/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	var patch []byte
	if cfg.Patch != "" {
		patch, err = os.ReadFile(cfg.Patch)
		if err != nil {
			return fmt.Errorf("error reading patch: %w", err)
		}
	}
	for _, arg := range inputArgs(args) {
		f := cfg.inFormat(arg)
		if cfg.Verbose {
			theLog.Info("dump", "input", arg, "format", f)
		}
		d, err := cfg.readArg(cc, arg)
		if err != nil {
			return err
		}
		if patch != nil {
			if f != format.JSONFormat {
				return fmt.Errorf("%w: -patch requires json input, %s is %s", cli.ErrUsage, arg, f)
			}
			d, err = edn.PatchJSON(d, patch)
			if err != nil {
				return fmt.Errorf("error patching %s: %w", arg, err)
			}
		}
		docs, err := decodeDocs(d, f)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := writeDocs(cc.Out, docs, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
