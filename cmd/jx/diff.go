package main

import (
	"bytes"
	"fmt"

	"github.com/scala-steward/circe-jackson/encode"
	"github.com/scala-steward/circe-jackson/libdiff"
	"github.com/scala-steward/circe-jackson/node"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff <file1> <file2>", cli.ErrUsage)
	}
	from, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	to, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	fromText, err := encodePlain(from, cfg.MainConfig)
	if err != nil {
		return err
	}
	toText, err := encodePlain(to, cfg.MainConfig)
	if err != nil {
		return err
	}
	diffs := libdiff.Strings(fromText, toText)
	if libdiff.Equal(diffs) {
		return nil
	}
	_, err = cc.Out.Write([]byte(libdiff.Pretty(diffs)))
	return err
}

// encodePlain never colors: color escapes would pollute the diff.
func encodePlain(y *node.Node, cfg *MainConfig) (string, error) {
	buf := bytes.NewBuffer(nil)
	opts := []encode.EncodeOption{encode.EncodeWire(cfg.WireOut)}
	if cfg.Indent > 0 {
		opts = append(opts, encode.Indent(cfg.Indent))
	}
	if err := encode.Encode(y, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
