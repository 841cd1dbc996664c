package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/scala-steward/circe-jackson/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Y       bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	Indent int

	Main *cli.Command
}

func (cfg *MainConfig) indentOpt(_ *cli.Context, v string) (any, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: invalid indent %q", cli.ErrUsage, v)
	}
	cfg.Indent = n
	return n, nil
}

func (cfg *MainConfig) encOpts(w io.Writer, forceColor bool) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color || (forceColor && isTTY(w)) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command
}

type RoundtripConfig struct {
	*MainConfig
	Roundtrip *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	Merge bool `cli:"name=m aliases=merge desc='apply as RFC 7386 merge patch'"`

	*MainConfig
	Patch *cli.Command
}
