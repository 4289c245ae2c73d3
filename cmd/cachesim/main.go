// Package main provides the command-line interface for cachesim.
// Cachesim replays a valgrind-style memory trace against a simulated
// set-associative LRU cache and reports hit, miss, and eviction totals.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sarchlab/akita/v4/datarecording"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/replay"
	"github.com/sarchlab/cachesim/trace"
)

var (
	idxBits    = flag.Int("s", 0, "Number of set index bits")
	assoc      = flag.Int("E", 0, "Number of lines per set")
	blockBits  = flag.Int("b", 0, "Number of block offset bits")
	tracePath  = flag.String("t", "", "Trace file")
	verbose    = flag.Bool("v", false, "Print the outcome of every access")
	configPath = flag.String("config", "", "Path to geometry JSON file (overrides -s/-E/-b)")
	recordPath = flag.String("record", "", "Record accesses into a SQLite database at this path")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	geometry, err := resolveGeometry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cachesim: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if *tracePath == "" {
		fmt.Fprintf(os.Stderr, "cachesim: missing required -t <file>\n")
		flag.Usage()
		os.Exit(1)
	}

	traceFile, err := os.Open(*tracePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cachesim: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = traceFile.Close() }()

	var opts []replay.Option
	if *verbose {
		opts = append(opts,
			replay.WithTracer(replay.NewLogTracer(log.New(os.Stdout, "", 0))))
	}
	if *recordPath != "" {
		recorder := datarecording.NewDataRecorder(*recordPath)
		defer recorder.Flush()
		opts = append(opts, replay.WithTracer(replay.NewDBRecorder(recorder)))
	}

	replayer := replay.NewReplayer(
		cache.New(geometry), trace.NewScanner(traceFile), opts...)
	summary := replayer.Run()

	printSummary(summary)
}

// resolveGeometry builds the cache geometry from the config file if one is
// given, otherwise from the -s/-E/-b flags. The simulation never starts with
// an invalid geometry.
func resolveGeometry() (cache.Geometry, error) {
	if *configPath != "" {
		return cache.LoadGeometry(*configPath)
	}

	geometry := cache.Geometry{
		IdxBits:   *idxBits,
		Assoc:     *assoc,
		BlockBits: *blockBits,
	}
	if err := geometry.Validate(); err != nil {
		return cache.Geometry{}, err
	}

	return geometry, nil
}

// printSummary renders the three aggregate counters in the standard summary
// format.
func printSummary(summary replay.Summary) {
	fmt.Printf("hits:%d misses:%d evictions:%d\n",
		summary.Hits, summary.Misses, summary.Evictions)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: cachesim [-hv] -s <num> -E <num> -b <num> -t <file>\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  cachesim -s 4 -E 1 -b 4 -t traces/yi.trace\n")
	fmt.Fprintf(os.Stderr, "  cachesim -v -s 8 -E 2 -b 4 -t traces/yi.trace\n")
}
