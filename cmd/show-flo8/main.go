// show-flo8 shows the representations of flo8 numbers, mostly for debugging
// conversions etc.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/pfcm/flo8"
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if n := flag.NArg(); n < 1 || n > 2 {
		fail("Need exactly one or two arguments.")
	}

	a, err := parse(flag.Arg(0))
	if err != nil {
		fail(err.Error())
	}
	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)

	show(w, a)

	if flag.NArg() == 2 {
		b, err := parse(flag.Arg(1))
		if err != nil {
			fail(err.Error())
		}
		fmt.Fprintln(w)
		show(w, b)
		fmt.Fprintln(w)
		showOps(w, a, b)
	}

	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

func parse(s string) (flo8.F43, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return flo8.FromFloat(f), nil
}

func show(w io.Writer, v flo8.F43) {
	sign, exp, mant := v.Split()
	fmt.Fprintf(w, "byte\t%#02x\t%#08b\n", uint8(v), uint8(v))
	fmt.Fprintf(w, "fields\tsign %d\texp %d\tmant %d\n", sign, exp, mant)
	fmt.Fprintf(w, "value\t%s\n", v)
}

func showOps(w io.Writer, a, b flo8.F43) {
	fmt.Fprintf(w, "%s SAdd %s\t= %s\n", a, b, a.SAdd(b))
	fmt.Fprintf(w, "%s SMul %s\t= %s\n", a, b, a.SMul(b))
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprint(os.Stderr, help)
	os.Exit(1)
}

const help = `show-flo8 shows the 8 bit floating point representations of the
given numbers: the nearest F43 below each one, its raw fields and the value
it decodes back to.
Usage:
	show-flo8 num [num]

Where num is a float literal in Go syntax. If a second number is provided,
also shows the results of the saturating operations between them.
`
