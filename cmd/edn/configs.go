package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/edn-format/go-edn/encode"
	"github.com/signadot/edn-format/go-edn/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	KeywordKeys bool   `cli:"name=kw aliases=keywordKeys desc='render string map keys as keywords'"`
	SortKeys    bool   `cli:"name=sortKeys desc='sort map entries by key'"`
	SortSets    bool   `cli:"name=sortSets desc='sort set elements'"`
	Pretty      bool   `cli:"name=pretty desc='accepted, has no effect'"`
	Color       bool   `cli:"name=color desc='encode with color'"`
	OutEncoding string `cli:"name=outEnc desc='character encoding of the output (default utf-8)'"`
	InEncoding  string `cli:"name=inEnc desc='character encoding of the input (default utf-8)'"`
	Verbose     bool   `cli:"name=v desc='log each input'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat returns the format of the named input: -I when given, else
// the file extension, else edn.
func (cfg *MainConfig) inFormat(arg string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromPath(arg); ok {
		return f
	}
	return format.EDNFormat
}

// plainOpts returns the encoder options without colors, for output
// written to files.
func (cfg *MainConfig) plainOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.KeywordKeys(cfg.KeywordKeys),
		encode.SortKeys(cfg.SortKeys),
		encode.SortSets(cfg.SortSets),
		encode.Pretty(cfg.Pretty),
		encode.OutputEncoding(cfg.OutEncoding),
	}
	if cfg.InEncoding != "" {
		res = append(res, encode.StringEncoding(cfg.InEncoding))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.plainOpts()
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	if isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DumpConfig struct {
	*MainConfig
	Patch string `cli:"name=patch desc='json patch file applied to json input'"`

	Dump *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to each file'"`

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='print nothing, only set the exit code'"`

	Diff *cli.Command
}
