// Command convolve computes the discrete convolution of two integer
// sequences.
//
// Usage:
//
//	convolve [flags] A B
//
// A and B are comma-separated integers. Without flags the linear
// convolution is computed in the complex domain and rounded back to
// integers.
//
// Examples:
//
//	convolve 2,3 4,5
//	convolve -cycle 3 1,2,3 4,5,6
//	convolve -prime 19457 111,777 888,444
//	convolve -prime 19457 -cycle 2 111,777 888,444
//	convolve -dps 30 31622776,31622776 31622776,31622776
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-convolution/conv"
)

func main() {
	prime := flag.Uint64("prime", 0, "prime modulus for modular convolution (0 = complex mode)")
	cycle := flag.Int("cycle", 0, "cyclic convolution length (0 = linear)")
	dps := flag.Int("dps", 0, "decimal digits inside the complex transform (0 = default)")
	useNTT := flag.Bool("ntt", false, "require the modular engine")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: convolve [flags] A B")
		flag.PrintDefaults()
		os.Exit(2)
	}

	a, err := parseSequence(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "convolve: sequence A: %v\n", err)
		os.Exit(1)
	}
	b, err := parseSequence(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "convolve: sequence B: %v\n", err)
		os.Exit(1)
	}

	result, err := conv.Convolution(a, b, conv.Options{
		Precision: *dps,
		Prime:     *prime,
		Cycle:     *cycle,
		NTT:       *useNTT,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "convolve: %v\n", err)
		os.Exit(1)
	}

	parts := make([]string, len(result))
	for i, v := range result {
		parts[i] = strconv.FormatInt(v, 10)
	}
	fmt.Println(strings.Join(parts, ","))
}

func parseSequence(s string) ([]int64, error) {
	fields := strings.Split(s, ",")
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
