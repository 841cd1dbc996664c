package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scala-steward/circe-jackson/node"
	"github.com/scala-steward/circe-jackson/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*node.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	if cfg.Y || strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return parse.YAML(d)
	}
	return parse.JSON(d)
}

func inputPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
