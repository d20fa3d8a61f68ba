// Command taperinfo prints spectral properties of the grid tapers.
//
// Usage:
//
//	taperinfo [flags] [taper-name ...]
//
// Without arguments it prints info for all known taper types.
//
// Examples:
//
//	taperinfo hann
//	taperinfo -size 256 tukey kaiser
//	taperinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-geomag/taper"
)

type taperEntry struct {
	name     string
	typ      taper.Type
	hasAlpha bool
	defAlpha float64
}

var registry = []taperEntry{
	{"rectangular", taper.TypeRectangular, false, 0},
	{"hann", taper.TypeHann, false, 0},
	{"hamming", taper.TypeHamming, false, 0},
	{"blackman", taper.TypeBlackman, false, 0},
	{"tukey", taper.TypeTukey, true, 0.5},
	{"kaiser", taper.TypeKaiser, true, 8.6},
}

func main() {
	size := flag.Int("size", 256, "taper length in grid nodes")
	alpha := flag.Float64("alpha", math.NaN(), "alpha parameter for parametric tapers (tukey, kaiser)")
	list := flag.Bool("list", false, "list available taper names")
	periodic := flag.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: taperinfo [flags] [taper-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of grid tapers.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all tapers.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  taperinfo hann blackman\n")
		fmt.Fprintf(os.Stderr, "  taperinfo -size 128 -alpha 0.25 tukey\n")
		fmt.Fprintf(os.Stderr, "  taperinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	byName := make(map[string]taperEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Taper\tSize\tAlpha\tCoherent Gain\tENBW [bins]\t2D Power Gain\n")

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown taper %q (use -list to see available)\n", name)
			continue
		}

		var opts []taper.Option
		a := e.defAlpha
		if e.hasAlpha {
			if !math.IsNaN(*alpha) {
				a = *alpha
			}
			opts = append(opts, taper.WithAlpha(a))
		}
		if *periodic {
			opts = append(opts, taper.WithPeriodic())
		}

		coeffs := taper.Generate(e.typ, *size, opts...)
		cg, err := taper.CoherentGain(coeffs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", name, err)
			continue
		}
		enbw, err := taper.EquivalentNoiseBandwidth(coeffs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", name, err)
			continue
		}
		pg, err := taper.PowerGain2D(e.typ, *size, *size, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", name, err)
			continue
		}

		alphaCol := "-"
		if e.hasAlpha {
			alphaCol = fmt.Sprintf("%.2f", a)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.4f\t%.4f\t%.4g\n", name, *size, alphaCol, cg, enbw, pg)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}
