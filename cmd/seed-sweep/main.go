// Command seed-sweep draws many independent CFTP samples in parallel and
// aggregates statistics across them — the empirical frequency checks of
// spec.md §8 scenarios S3 (order-3 ASM -1 frequency) and S4 (single-cell BPP
// uniformity), run at scale instead of by hand. It is a diagnostic, not part
// of the sampler: adapted from the teacher's cmd/lava-sweep worker pool,
// trading a cellular-automaton parameter sweep for independent CFTP trials.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"latticecftp/pkg/cftp"
	"latticecftp/pkg/core"
	"latticecftp/pkg/post"
	"latticecftp/pkg/rng"
	_ "latticecftp/pkg/variant" // registers the "ice" and "bpp" factories
)

// trial is one unit of work: draw a sample from the given variant
// constructor with an entropy-seeded ledger and reduce it to a small stats
// record.
type trial struct {
	index int
}

type trialResult struct {
	index      int
	steps      int
	restarts   int
	finalField map[int]int // histogram of observed entries
	err        error
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("seed-sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)

	variantFlag := fs.String("variant", "ice", "variant to sweep: ice or bpp")
	order := fs.Int("order", 3, "order n for -variant=ice")
	a := fs.Int("a", 2, "box dimension a for -variant=bpp")
	b := fs.Int("b", 2, "box dimension b for -variant=bpp")
	c := fs.Int("c", 1, "box dimension c for -variant=bpp")
	trials := fs.Int("trials", 1000, "number of independent CFTP samples to draw")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	initial := fs.Int("initial", cftp.DefaultInitial, "initial CFTP look-back window")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	v, err := resolveVariant(*variantFlag, *order, *a, *b, *c)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	sampler := func() (*core.HeightField, cftp.Stats, error) {
		return cftp.Sample(v, rng.NewSeedLedger(nil), *initial, 0, nil)
	}

	fmt.Fprintf(stdout, "Sweeping %s over %s trials (%d workers)\n",
		v.Name(), humanize.Comma(int64(*trials)), *workers)

	jobs := make(chan trial)
	results := make(chan trialResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				results <- runTrial(t, *variantFlag == "ice", sampler)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *trials; i++ {
			jobs <- trial{index: i}
		}
		close(jobs)
	}()

	start := time.Now()
	var all []trialResult
	histogram := make(map[int]int)
	var totalSteps, totalRestarts int
	failures := 0

	for res := range results {
		if res.err != nil {
			failures++
			fmt.Fprintf(stderr, "trial %d failed: %v\n", res.index, res.err)
			continue
		}
		all = append(all, res)
		totalSteps += res.steps
		totalRestarts += res.restarts
		for entry, n := range res.finalField {
			histogram[entry] += n
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].steps < all[j].steps })
	elapsed := time.Since(start)

	fmt.Fprintf(stdout, "\nCompleted %d trials (%d failed) in %s\n", len(all), failures, elapsed.Round(time.Millisecond))
	if len(all) > 0 {
		fmt.Fprintf(stdout, "steps: min=%s max=%s mean=%s\n",
			humanize.Comma(int64(all[0].steps)),
			humanize.Comma(int64(all[len(all)-1].steps)),
			humanize.Comma(int64(totalSteps/len(all))))
		fmt.Fprintf(stdout, "restarts: total=%d mean=%.2f\n", totalRestarts, float64(totalRestarts)/float64(len(all)))
	}

	fmt.Fprintln(stdout, "\nentry-value histogram:")
	keys := make([]int, 0, len(histogram))
	for k := range histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	var total int
	for _, k := range keys {
		total += histogram[k]
	}
	for _, k := range keys {
		n := histogram[k]
		frac := float64(n) / float64(total)
		fmt.Fprintf(stdout, "  %3d: %s (%.4f)\n", k, humanize.Comma(int64(n)), frac)
	}

	if failures > 0 {
		return 1
	}
	return 0
}

// resolveVariant looks up -variant in the core.Variants() registry the same
// way the teacher's cmd/ca resolves -sim through core.Sims()[cfg.Sim], and
// constructs it from a string-keyed config map built from the dimension
// flags relevant to that variant.
func resolveVariant(name string, order, a, b, c int) (core.Variant, error) {
	factory, ok := core.Variants()[name]
	if !ok {
		return nil, fmt.Errorf("seed-sweep: unknown -variant %q, want ice or bpp", name)
	}

	var cfg map[string]string
	switch name {
	case "ice":
		cfg = map[string]string{"order": strconv.Itoa(order)}
	case "bpp":
		cfg = map[string]string{"a": strconv.Itoa(a), "b": strconv.Itoa(b), "c": strconv.Itoa(c)}
	}

	v, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("seed-sweep: %w", err)
	}
	return v, nil
}

// runTrial draws one sample and reduces it to a histogram: for ice, the
// derived ASM's {-1,0,1} entries (spec.md §8 S3); for bpp, the raw height
// field's entries (spec.md §8 S4). asmEntries selects the ice reduction.
func runTrial(t trial, asmEntries bool, sampler func() (*core.HeightField, cftp.Stats, error)) trialResult {
	field, stats, err := sampler()
	if err != nil {
		return trialResult{index: t.index, err: err}
	}

	hist := make(map[int]int)
	if asm, asmErr := post.ASM(field); asmEntries && asmErr == nil {
		for _, row := range asm {
			for _, v := range row {
				hist[v]++
			}
		}
	} else {
		for _, v := range field.Data() {
			hist[v]++
		}
	}

	return trialResult{
		index:      t.index,
		steps:      stats.TotalSteps,
		restarts:   stats.Restarts,
		finalField: hist,
	}
}
