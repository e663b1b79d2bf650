package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/binderylabs/bindery"
	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting binding graph benchmark, please wait...")
	defer log.Print("Finished binding graph benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{
			name:        "narrow deep",
			width:       5,
			totalLayers: 50,
			iterations:  5000,
		},
		{
			name:        "wide shallow",
			width:       100,
			totalLayers: 3,
			iterations:  5000,
		},
		{
			name:        "square",
			width:       25,
			totalLayers: 25,
			iterations:  2000,
		},
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{
		"framework", "size", "nTimes", "test", "time", "updateRate", "checksum",
	})

	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)

		// Every config runs twice over a freshly built graph. Batched
		// re-evaluation must be deterministic, so differing checksums mean a
		// propagation bug, not noise.
		first := runConfig(cfg)
		second := runConfig(cfg)
		if first.checksum != second.checksum {
			log.Fatalf("'%s': non-deterministic result, %x vs %x", cfg.name, first.checksum, second.checksum)
		}

		best := first
		if second.duration < best.duration {
			best = second
		}

		updates := int64(cfg.iterations) * int64(cfg.width) * int64(cfg.totalLayers)
		updateRate := float64(updates) / (float64(best.duration) / float64(time.Millisecond))

		tbl.Append([]string{
			"bindery",
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers),
			humanize.Comma(int64(cfg.iterations)),
			cfg.name,
			fmt.Sprint(best.duration),
			humanize.Comma(int64(updateRate)),
			fmt.Sprintf("%016x", best.checksum),
		})
	}
	tbl.Render()
}

type benchmarkTestConfig struct {
	name        string // friendly name for the test, should be unique
	width       int    // properties per layer
	totalLayers int    // bound layers stacked on the sources
	iterations  int    // source mutations per run
}

type runResult struct {
	duration time.Duration
	checksum uint64
}

// runConfig builds a width x totalLayers graph of manual-mode bindings, then
// mutates the sources round-robin, replaying the evaluator after each
// mutation and folding the last layer's values into a checksum.
func runConfig(cfg benchmarkTestConfig) runResult {
	evaluator := bindery.NewBindingEvaluator()

	sources := make([]*bindery.Property[int], cfg.width)
	for i := range sources {
		sources[i] = bindery.NewProperty(i)
	}

	prev := sources
	for l := 0; l < cfg.totalLayers; l++ {
		layer := make([]*bindery.Property[int], cfg.width)
		for i := range layer {
			left := bindery.NewPropertyNode(prev[i])
			right := bindery.NewPropertyNode(prev[(i+1)%cfg.width])
			layer[i] = bindery.NewBoundProperty[int](evaluator, bindery.NewFunctionNode2(func(a, b int) int {
				return a + b
			}, left, right))
		}
		prev = layer
	}
	last := prev

	digest := xxhash.New()
	var buf [8]byte

	start := time.Now()
	for it := 0; it < cfg.iterations; it++ {
		src := sources[it%cfg.width]
		if err := src.SetValue(src.Value() + 1); err != nil {
			log.Fatal(err)
		}
		if err := evaluator.EvaluateAll(); err != nil {
			log.Fatal(err)
		}
		for _, p := range last {
			binary.LittleEndian.PutUint64(buf[:], uint64(p.Value()))
			digest.Write(buf[:])
		}
	}

	return runResult{
		duration: time.Since(start),
		checksum: digest.Sum64(),
	}
}
