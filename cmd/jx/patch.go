package main

import (
	"fmt"

	"github.com/scala-steward/circe-jackson/encode"
	"github.com/scala-steward/circe-jackson/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch [-m] <patchfile> <docfile>", cli.ErrUsage)
	}
	patchNode, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	docNode, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	// json-patch works on raw JSON bytes, so both trees go through the
	// wire encoding first.
	patchJSON := []byte(encode.MustString(patchNode))
	docJSON := []byte(encode.MustString(docNode))

	var out []byte
	if cfg.Merge {
		out, err = jsonpatch.MergePatch(docJSON, patchJSON)
	} else {
		var ops jsonpatch.Patch
		ops, err = jsonpatch.DecodePatch(patchJSON)
		if err == nil {
			out, err = ops.Apply(docJSON)
		}
	}
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}
	res, err := parse.JSON(out)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, false)...)
}
