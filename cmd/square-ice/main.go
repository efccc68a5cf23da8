// Command square-ice samples an order-n alternating sign matrix height
// function via exact CFTP and prints it in one of several representations
// (spec.md §6). CLI parsing, pretty-printing, and file output are
// collaborators around the pkg/cftp core, not part of it.
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
	fs := flag.NewFlagSet("square-ice", flag.ContinueOnError)
	fs.SetOutput(stderr)

	asmFlag := fs.Bool("asm", false, "print the derived alternating sign matrix")
	asmFile := fs.Bool("asm_file", false, "write asm.txt and asm_pretty.txt to the current directory")
	csumFlag := fs.Bool("csum", false, "print the derived corner-sum matrix")
	heightFlag := fs.Bool("height", false, "print the raw height field")
	seedFlag := fs.Int64("seed", 0, "32-bit seed for the seed ledger's bootstrap generator")
	initial := fs.Int("initial", cftp.DefaultInitial, "initial CFTP look-back window")
	reportFlag := fs.Bool("report", false, "emit progress to stderr")
	minOnly := fs.Bool("min_only", false, "skip CFTP and emit the minimal extremal field")
	maxOnly := fs.Bool("max_only", false, "skip CFTP and emit the maximal extremal field")
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
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "usage: square-ice order [flags]")
		return 1
	}

	hasSeed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			hasSeed = true
		}
	})

	order, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, cliutil.New(cliutil.KindInvalidDimensions, "order %q is not an integer", fs.Arg(0)))
		return 1
	}
	if err := cliutil.ValidatePositive(map[string]int{"order": order}); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	resolvedInitial, err := cliutil.ResolveInitial(*initial, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	v := variant.NewIce(order)

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
		if err := app.Show(v, ledger, window, 8, 30, 1, v.Rows()); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	return printOutput(stdout, stderr, field, *asmFlag, *asmFile, *csumFlag, *heightFlag)
}

func printOutput(stdout, stderr *os.File, field *core.HeightField, asmFlag, asmFile, csumFlag, heightFlag bool) int {
	switch {
	case asmFile:
		asm, err := post.ASM(field)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if err := cliutil.WriteASMFiles(asm); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	case asmFlag:
		asm, err := post.ASM(field)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		cliutil.PrintASMPretty(stdout, asm)
		return 0
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
