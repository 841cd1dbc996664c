package main

import (
	"fmt"

	"github.com/scala-steward/circe-jackson/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out, true)
	for _, path := range inputPaths(args) {
		doc, err := getObjFile(cfg.MainConfig, cc, path)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", path, err)
		}
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
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
