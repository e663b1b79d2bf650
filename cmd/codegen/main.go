package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/binderylabs/bindery/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityKey = "arity"
	outKey   = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Regenerate the arity-variant signal and node files",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Highest signal arity to generate",
				Value: 3,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Module root to write the generated files into",
				Value: ".",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen started")
	defer func() {
		log.Printf("Codegen finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(arityKey))
	out := cmd.String(outKey)
	log.Printf("Max arity: %d", maxArity)

	contents := templates.SignalsGen(maxArity)
	if err := os.WriteFile(filepath.Join(out, "signals_gen.go"), []byte(contents), 0644); err != nil {
		return err
	}

	contents = templates.NodesGen(maxArity)
	if err := os.WriteFile(filepath.Join(out, "nodes_gen.go"), []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
