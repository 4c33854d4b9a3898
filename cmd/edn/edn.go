package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/edn-format/go-edn"
	"github.com/signadot/edn-format/go-edn/encode"
	"github.com/signadot/edn-format/go-edn/format"
	"github.com/signadot/edn-format/go-edn/value"

	"github.com/scott-cotton/cli"
)

func ednMain(cfg *MainConfig, cc *cli.Context, args []string) error {
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

// readArg reads the named file, or standard input for "-", and
// transcodes it to utf-8 when an input encoding is set.
func (cfg *MainConfig) readArg(cc *cli.Context, arg string) ([]byte, error) {
	var (
		d   []byte
		err error
	)
	if arg == "-" {
		d, err = io.ReadAll(cc.In)
	} else {
		d, err = os.ReadFile(arg)
	}
	if err != nil {
		return nil, err
	}
	if cfg.InEncoding == "" {
		return d, nil
	}
	s, err := encode.DecodeString(cfg.InEncoding, d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return []byte(s), nil
}

// decodeDocs reads the documents in d.
func decodeDocs(d []byte, f format.Format) ([]value.Value, error) {
	switch f {
	case format.JSONFormat:
		v, err := edn.FromJSON(d)
		if err != nil {
			return nil, err
		}
		return []value.Value{v}, nil
	case format.YAMLFormat:
		v, err := edn.FromYAML(d)
		if err != nil {
			return nil, err
		}
		return []value.Value{v}, nil
	}
	return edn.LoadAll(d)
}

// writeDocs writes each value followed by a newline.
func writeDocs(w io.Writer, vs []value.Value, opts ...encode.EncodeOption) error {
	for _, v := range vs {
		d, err := edn.DumpBytes(v, opts...)
		if err != nil {
			return fmt.Errorf("error encoding: %w", err)
		}
		if _, err := w.Write(append(d, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
