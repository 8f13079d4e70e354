// memcmp compares the memory and estimated energy cost of allocating a fresh
// flo8 buffer every iteration against reusing a single buffer, and against
// cycling one through a pool.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/flo8/bench"
	"github.com/pfcm/flo8/internal/config"
	"github.com/pfcm/flo8/mem"
)

var (
	configFlag  = flag.String("config", "", "optional path to a yaml `file` with the workload parameters; defaults match the built-in workload")
	profileFlag = flag.Bool("profile", false, "whether to write a pprof profile to the current working directory")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("memcmp: ")

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			log.Fatal(err)
		}
	}

	if *profileFlag {
		f, err := os.Create("memcmp.pprof")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	tracker := &mem.Tracker{}
	runner := cfg.Runner(tracker)

	p := message.NewPrinter(language.English)
	p.Println("Memory usage and energy consumption comparison.")

	report(p, runner.Unoptimized())
	tracker.Reset()
	report(p, runner.Optimized())
	tracker.Reset()
	report(p, runner.Pooled())
}

// report prints the four phase quantities in order: allocated, freed,
// duration, energy.
func report(p *message.Printer, res bench.Result) {
	const mb = 1 << 20
	p.Printf("%s memory: Allocated: %.2f MB, Freed: %.2f MB\n",
		res.Name, float64(res.Allocated)/mb, float64(res.Freed)/mb)
	p.Printf("%s duration: %.6f seconds\n", res.Name, res.Elapsed.Seconds())
	p.Printf("%s energy consumption: %.2f Joules\n", res.Name, res.Joules)
}
