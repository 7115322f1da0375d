// Command fbinfo prints the layout, timing and numerical accuracy of
// Fourier-Bessel bases for a given image size.
//
// Usage:
//
//	fbinfo [flags]
//
// Examples:
//
//	fbinfo -size 64
//	fbinfo -size 128 -method fast -trials 4
//	fbinfo -size 32 -ellmax 10 -kmax
//	fbinfo -size 16 -nufft direct -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-fb/basis"
	"github.com/cwbudde/algo-fb/measure/accuracy"
	"github.com/cwbudde/algo-fb/nufft"
)

type options struct {
	size    int
	ellMax  int
	methods []string
	kind    nufft.Kind
	trials  int
	workers int
	kMax    bool
}

func main() {
	size := flag.Int("size", 64, "image side length in pixels")
	ellMax := flag.Int("ellmax", -1, "maximum angular frequency (-1 for the bandlimit)")
	method := flag.String("method", "both", "basis method: direct, fast or both")
	kind := flag.String("nufft", "gaussian", "nonuniform FFT for the fast method: gaussian or direct")
	trials := flag.Int("trials", 8, "random trials per accuracy report (0 to skip)")
	workers := flag.Int("workers", 1, "goroutines for batch evaluation")
	kMax := flag.Bool("kmax", false, "print the number of radial indices per angular frequency")
	verbose := flag.Bool("v", false, "log construction and solver diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fbinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints layout, timings and accuracy of Fourier-Bessel bases.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fbinfo -size 64\n")
		fmt.Fprintf(os.Stderr, "  fbinfo -size 128 -method fast -trials 4\n")
		fmt.Fprintf(os.Stderr, "  fbinfo -size 32 -ellmax 10 -kmax\n")
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	methods, err := parseMethods(*method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	k, err := nufft.ParseKind(*kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	opts := options{
		size:    *size,
		ellMax:  *ellMax,
		methods: methods,
		kind:    k,
		trials:  *trials,
		workers: *workers,
		kMax:    *kMax,
	}

	if err := run(os.Stdout, logger, opts); err != nil {
		logger.Error("fbinfo failed", "err", err)
		os.Exit(1)
	}
}

func parseMethods(s string) ([]string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct":
		return []string{"direct"}, nil
	case "fast":
		return []string{"fast"}, nil
	case "both", "":
		return []string{"direct", "fast"}, nil
	default:
		return nil, fmt.Errorf("unknown method %q (want direct, fast or both)", s)
	}
}

type report struct {
	b         basis.Basis
	build     time.Duration
	evaluate  time.Duration
	evaluateT time.Duration
	adjoint   *accuracy.Result
	roundTrip *accuracy.Result
}

func run(w io.Writer, logger *slog.Logger, o options) error {
	cfg := []basis.Option{
		basis.WithLogger(logger),
		basis.WithNUFFT(o.kind),
		basis.WithWorkers(o.workers),
	}
	if o.ellMax >= 0 {
		cfg = append(cfg, basis.WithEllMax(o.ellMax))
	}

	var reports []report
	for _, m := range o.methods {
		r, err := measure(m, []int{o.size, o.size}, cfg, o.trials)
		if err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
		reports = append(reports, r)
	}

	if err := printReports(w, reports); err != nil {
		return err
	}

	if o.kMax && len(reports) > 0 {
		return printKMax(w, reports[0].b)
	}

	return nil
}

func measure(method string, size []int, cfg []basis.Option, trials int) (report, error) {
	var (
		r   report
		err error
	)

	start := time.Now()
	switch method {
	case "direct":
		r.b, err = basis.NewDirect(size, cfg...)
	case "fast":
		r.b, err = basis.NewFast(size, cfg...)
	default:
		err = errors.New("unknown method")
	}
	if err != nil {
		return report{}, err
	}
	r.build = time.Since(start)

	v := make([]float64, r.b.Count())
	v[0] = 1

	start = time.Now()
	img, err := r.b.Evaluate(v)
	if err != nil {
		return report{}, err
	}
	r.evaluate = time.Since(start)

	start = time.Now()
	if _, err := r.b.EvaluateT(img); err != nil {
		return report{}, err
	}
	r.evaluateT = time.Since(start)

	if trials > 0 {
		adj, err := accuracy.Adjointness(r.b, accuracy.Config{Trials: trials, Seed: 1})
		if err != nil {
			return report{}, err
		}
		rt, err := accuracy.RoundTrip(r.b, accuracy.Config{Trials: trials, Seed: 2})
		if err != nil {
			return report{}, err
		}
		r.adjoint, r.roundTrip = &adj, &rt
	}

	return r, nil
}

func printReports(w io.Writer, reports []report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Method\tSize\tell_max\tCount\tFingerprint\tBuild\tEvaluate\tEvaluateT\tAdjoint err\tRound-trip err\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t-------\t-----\t-----------\t-----\t--------\t---------\t-----------\t--------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range reports {
		adj, rt := "-", "-"
		if r.adjoint != nil {
			adj = fmt.Sprintf("%.2e", r.adjoint.Max)
			rt = fmt.Sprintf("%.4f", r.roundTrip.Mean)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%v\t%v\t%v\t%s\t%s\n",
			r.b.Method(),
			r.b.Resolution(),
			r.b.EllMax(),
			r.b.Count(),
			basis.Fingerprint(r.b)[:12],
			r.build.Round(time.Microsecond),
			r.evaluate.Round(time.Microsecond),
			r.evaluateT.Round(time.Microsecond),
			adj,
			rt,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}

func printKMax(w io.Writer, b basis.Basis) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\nell\tk_max\n---\t-----\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for ell, k := range b.KMax() {
		if _, err := fmt.Fprintf(tw, "%d\t%d\n", ell, k); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}
