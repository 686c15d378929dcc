package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/suspenseparty/demo"
	"github.com/delaneyj/suspenseparty/future"
	"github.com/delaneyj/suspenseparty/stage"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

const (
	delayKey     = "delay"
	refreshesKey = "refreshes"
	flowKey      = "flow"
)

func main() {
	cmd := &cli.Command{
		Name:  "demo",
		Usage: "Run the async value demo page",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  delayKey,
				Usage: "Latency of each produced value",
				Value: future.DefaultDelay,
			},
			&cli.UintFlag{
				Name:  refreshesKey,
				Usage: "Number of refresh rounds to simulate",
				Value: 3,
			},
			&cli.StringFlag{
				Name:  flowKey,
				Usage: "Flow to run: state, store, shim or all",
				Value: "all",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	delay := cmd.Duration(delayKey)
	refreshes := int(cmd.Uint(refreshesKey))

	start := time.Now()
	st := stage.New(func(root string, err error) {
		log.Printf("render error in %s: %v", root, err)
	})

	var render func() string
	var refresh, unmount func()
	switch flow := cmd.String(flowKey); flow {
	case "all":
		page := demo.NewPage(st, delay)
		render, refresh, unmount = page.Render, page.RefreshAll, page.Unmount
	case "state":
		f := demo.NewStateFlow(st, delay)
		render, refresh, unmount = oneLine(flow, f), f.Refresh, f.Unmount
	case "store":
		f := demo.NewNativeStoreFlow(st, delay)
		render, refresh, unmount = oneLine(flow, f), f.Refresh, f.Unmount
	case "shim":
		f := demo.NewShimStoreFlow(st, delay)
		render, refresh, unmount = oneLine(flow, f), f.Refresh, f.Unmount
	default:
		return fmt.Errorf("unknown flow %q", flow)
	}
	defer unmount()

	snapshots := int64(0)
	show := func(label string) {
		log.Printf("%s:\n%s", label, render())
		snapshots++
	}

	show("mounted")
	time.Sleep(delay + 50*time.Millisecond)
	show("resolved")

	for i := 0; i < refreshes; i++ {
		refresh()
		show(fmt.Sprintf("refresh %d pending", i+1))
		time.Sleep(delay + 50*time.Millisecond)
		show(fmt.Sprintf("refresh %d resolved", i+1))
	}

	log.Printf("rendered %s snapshots in %v", humanize.Comma(snapshots), time.Since(start))
	return nil
}

func oneLine(label string, f *demo.Flow) func() string {
	return func() string {
		return fmt.Sprintf("%s: %s\n", label, f.Frame())
	}
}
