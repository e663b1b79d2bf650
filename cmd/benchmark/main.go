package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/binderylabs/bindery"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100}
	hh    = []int{1, 10, 100}
	iters = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkImmediateBindings(true)
	benchmarkManualBindings(true)
	benchmarkDeferredConnections(true)
}

func addOne(x int) int {
	return x + 1
}

// buildChains wires w independent chains of h stacked function nodes onto a
// single source property and returns the output properties.
func buildChains(src *bindery.Property[int], w, h int, evaluator *bindery.BindingEvaluator) []*bindery.Property[int] {
	outputs := make([]*bindery.Property[int], 0, w)
	for i := 0; i < w; i++ {
		var root bindery.Node[int] = bindery.NewPropertyNode(src)
		for j := 0; j < h; j++ {
			root = bindery.NewFunctionNode1(addOne, root)
		}
		if evaluator != nil {
			outputs = append(outputs, bindery.NewBoundProperty(*evaluator, root))
		} else {
			outputs = append(outputs, bindery.NewImmediateBoundProperty(root))
		}
	}
	return outputs
}

func benchmarkImmediateBindings(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Immediate Bindings")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := bindery.NewProperty(1)
			outputs := buildChains(src, w, h, nil)

			for i := 0; i < iters; i++ {
				start := time.Now()
				if err := src.SetValue(src.Value() + 1); err != nil {
					log.Fatal(err)
				}
				tach.AddTime(time.Since(start))
			}

			if got, want := outputs[0].Value(), src.Value()+h; got != want {
				log.Fatalf("propagate %dx%d: output %d, want %d", w, h, got, want)
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkManualBindings(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Manual Bindings")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			evaluator := bindery.NewBindingEvaluator()
			src := bindery.NewProperty(1)
			outputs := buildChains(src, w, h, &evaluator)

			for i := 0; i < iters; i++ {
				if err := src.SetValue(src.Value() + 1); err != nil {
					log.Fatal(err)
				}
				start := time.Now()
				if err := evaluator.EvaluateAll(); err != nil {
					log.Fatal(err)
				}
				tach.AddTime(time.Since(start))
			}

			if got, want := outputs[0].Value(), src.Value()+h; got != want {
				log.Fatalf("evaluateAll %dx%d: output %d, want %d", w, h, got, want)
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("evaluateAll: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkDeferredConnections(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Deferred Connections")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		evaluator := bindery.NewConnectionEvaluator()
		sig := bindery.NewSignal1[int]()
		sink := 0
		for i := 0; i < w; i++ {
			sig.ConnectDeferred(evaluator, func(x int) { sink += x })
		}

		for i := 0; i < iters; i++ {
			sig.Emit(i)
			start := time.Now()
			evaluator.EvaluateDeferredConnections()
			tach.AddTime(time.Since(start))
		}

		if sink == 0 && w > 0 {
			log.Fatalf("drain %d: no deferred slot ran", w)
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("drain: %d slots", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
