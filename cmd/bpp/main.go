// Command bpp samples a boxed-plane-partition height function via exact
// CFTP and prints it in one of several representations (spec.md §6). CLI
// parsing, pretty-printing, and file output are collaborators around the
// pkg/cftp core, not part of it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"latticecftp/internal/app"
	"latticecftp/internal/cliutil"
	"latticecftp/internal/metrics"
	"latticecftp/internal/report"
	"latticecftp/pkg/cftp"
	"latticecftp/pkg/core"
	"latticecftp/pkg/post"
	"latticecftp/pkg/rng"
	"latticecftp/pkg/variant"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("bpp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	csumFlag := fs.Bool("csum", false, "print the derived corner-sum matrix")
	heightFlag := fs.Bool("height", false, "print the raw height field")
	seedFlag := fs.Int64("seed", 0, "32-bit seed for the seed ledger's bootstrap generator")
	initial := fs.Int("initial", cftp.DefaultInitial, "initial CFTP look-back window")
	reportFlag := fs.Bool("report", false, "emit progress to stderr")
	minOnly := fs.Bool("min_only", false, "skip CFTP and emit the minimal extremal field (the empty plane partition)")
	maxOnly := fs.Bool("max_only", false, "skip CFTP and emit the maximal extremal field (the full box)")
	gui := fs.Bool("gui", false, "open a window animating the CFTP run (requires -tags ebiten)")
	metricsAddr := fs.String("metrics_addr", "", "serve Prometheus metrics on this address")
	help := fs.Bool("help", false, "show usage")

	if err := cliutil.ParseFlags(fs, args, stderr); err != nil {
		return 1
	}
	if *help {
		fs.Usage()
		return 0
	}
	if fs.NArg() < 3 {
		fmt.Fprintln(stderr, "usage: bpp a b c [flags]")
		return 1
	}

	hasSeed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			hasSeed = true
		}
	})

	dims, err := parseDims(fs.Arg(0), fs.Arg(1), fs.Arg(2))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := cliutil.ValidatePositive(map[string]int{"a": dims[0], "b": dims[1], "c": dims[2]}); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	resolvedInitial, err := cliutil.ResolveInitial(*initial, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	v := variant.NewBoxedPP(dims[0], dims[1], dims[2])

	var seedPtr *uint32
	if hasSeed {
		s := uint32(*seedFlag)
		seedPtr = &s
	}
	ledger := rng.NewSeedLedger(seedPtr)

	var collector *metrics.Collector
	if *metricsAddr != "" {
		collector = metrics.NewCollector(v.Name())
		go metrics.Serve(*metricsAddr, collector)
	}

	var field *core.HeightField
	var window int

	switch {
	case *minOnly:
		field = core.NewHeightField(v.Rows(), v.Cols())
		v.InitMin(field)
	case *maxOnly:
		field = core.NewHeightField(v.Rows(), v.Cols())
		v.InitMax(field)
	default:
		rep := report.New(stderr, *reportFlag)
		sample, stats, sampleErr := cftp.Sample(v, ledger, resolvedInitial, 0, rep)
		if sampleErr != nil {
			var nonTerminating *cftp.NonTerminatingError
			if errors.As(sampleErr, &nonTerminating) {
				sampleErr = cliutil.New(cliutil.KindNonTerminating, "%s", nonTerminating)
			}
			fmt.Fprintln(stderr, sampleErr)
			return 1
		}
		rep.Summary(stats)
		if collector != nil {
			collector.Observe(stats)
		}
		field = sample
		window = stats.FinalWindow
	}

	if *gui {
		if window == 0 {
			window = resolvedInitial
		}
		if err := app.Show(v, ledger, window, 8, 30, 0, dims[2]); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	return printOutput(stdout, stderr, field, *csumFlag, *heightFlag)
}

// parseDims parses the three positional box dimensions, reporting the first
// non-integer argument as InvalidDimensions (spec.md §7).
func parseDims(as, bs, cs string) ([3]int, error) {
	var dims [3]int
	for i, s := range []string{as, bs, cs} {
		n, err := strconv.Atoi(s)
		if err != nil {
			return dims, cliutil.New(cliutil.KindInvalidDimensions, "dimension %q is not an integer", s)
		}
		dims[i] = n
	}
	return dims, nil
}

func printOutput(stdout, stderr *os.File, field *core.HeightField, csumFlag, heightFlag bool) int {
	switch {
	case csumFlag:
		csum, err := post.CornerSum(field)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		cliutil.PrintMatrix(stdout, csum)
		return 0
	default:
		cliutil.PrintMatrix(stdout, toRows(field))
		return 0
	}
}

func toRows(field *core.HeightField) [][]int {
	rows := make([][]int, field.R)
	for r := 0; r < field.R; r++ {
		row := make([]int, field.C)
		for c := 0; c < field.C; c++ {
			row[c] = field.At(r, c)
		}
		rows[r] = row
	}
	return rows
}
