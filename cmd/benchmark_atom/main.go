package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/suspenseparty/atom"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting atom benchmark, please wait...")
	defer log.Print("Finished atom benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{
			name:       "lone value",
			listeners:  0,
			iterations: 5_000_000,
		},
		{
			name:       "single listener",
			listeners:  1,
			iterations: 2_000_000,
		},
		{
			name:       "small fanout",
			listeners:  10,
			iterations: 500_000,
		},
		{
			name:       "wide fanout",
			listeners:  100,
			iterations: 50_000,
		},
		{
			name:       "very wide fanout",
			listeners:  1_000,
			iterations: 5_000,
		},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "listeners", "nTimes", "time", "setRate", "notified",
	})

	testRepeats := 5
	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)

		a := atom.New(0)
		notified := int64(0)
		for i := 0; i < cfg.listeners; i++ {
			a.Subscribe(func() { notified++ })
		}

		best := time.Hour
		bestNotified := int64(0)
		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, testRepeats, (i+1)*100/testRepeats)
			notified = 0
			start := time.Now()
			for j := 0; j < cfg.iterations; j++ {
				a.Set(j)
			}
			duration := time.Since(start)
			if duration < best {
				best = duration
				bestNotified = notified
			}
		}

		setRate := float64(cfg.iterations) / (float64(best) / float64(time.Millisecond))
		table.Append([]string{
			cfg.name,
			fmt.Sprint(cfg.listeners),
			humanize.Comma(int64(cfg.iterations)),
			fmt.Sprint(best),
			humanize.Comma(int64(setRate)),
			humanize.Comma(bestNotified),
		})
	}
	table.Render()
}

type benchmarkTestConfig struct {
	name       string // friendly name for the test, should be unique
	listeners  int    // number of registrations to notify per set
	iterations int    // number of set calls per repeat
}
