package main

import (
	"fmt"

	circejackson "github.com/scala-steward/circe-jackson"
	"github.com/scala-steward/circe-jackson/encode"

	"github.com/scott-cotton/cli"
)

func roundtrip(cfg *RoundtripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Roundtrip.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out, false)
	for _, path := range inputPaths(args) {
		doc, err := getObjFile(cfg.MainConfig, cc, path)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", path, err)
		}
		out := circejackson.ValueToNode(circejackson.NodeToValue(doc))
		if err := encode.Encode(out, cc.Out, opts...); err != nil {
			return err
		}
		if cfg.WireOut {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
