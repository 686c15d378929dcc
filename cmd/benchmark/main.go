package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/suspenseparty/atom"
	"github.com/delaneyj/suspenseparty/future"
	"github.com/delaneyj/suspenseparty/stage"
	"github.com/delaneyj/suspenseparty/store"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	mountCounts = []int{1, 10, 100, 1_000}
	iters       = 100
)

type adapterFunc func(*stage.Ctx, *atom.Atom[*future.Pending[int]]) *future.Pending[int]

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkAdapter("Native Adapter", store.UseAtom[*future.Pending[int]], true)
	benchmarkAdapter("Shim Adapter", store.UseAtomShim[*future.Pending[int]], true)
}

// benchmarkAdapter measures set-to-commit latency for one adapter across a
// grid of mount counts sharing a single atom.
func benchmarkAdapter(title string, use adapterFunc, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, mounts := range mountCounts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		st := stage.New(func(root string, err error) {
			log.Panicf("%s: %v", root, err)
		})
		a := atom.New(future.Resolved(0))
		roots := make([]*stage.Root, mounts)
		for i := 0; i < mounts; i++ {
			name := fmt.Sprintf("%s-%d", title, i)
			roots[i] = st.Mount(name, "loading", func(ctx *stage.Ctx) string {
				return fmt.Sprint(stage.Use(ctx, use(ctx, a)))
			})
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			a.Set(future.Resolved(i + 1))
			tach.AddTime(time.Since(start))
		}

		for _, r := range roots {
			r.Unmount()
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("set+commit x%d mounts", mounts),
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
