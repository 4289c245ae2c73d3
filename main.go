// Package main provides the entry point for cachesim.
// Cachesim replays memory-access traces against a simulated set-associative
// LRU cache.
//
// For the full CLI, use: go run ./cmd/cachesim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("Cachesim - Set-Associative LRU Cache Simulator")
	fmt.Println("")
	fmt.Println("Usage: cachesim [-hv] -s <num> -E <num> -b <num> -t <file>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -s <num>   Number of set index bits")
	fmt.Println("  -E <num>   Number of lines per set")
	fmt.Println("  -b <num>   Number of block offset bits")
	fmt.Println("  -t <file>  Trace file")
	fmt.Println("  -v         Print the outcome of every access")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/cachesim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/cachesim' instead.")
	}
}
