package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global output flags only
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "go-smallvec",
	Short: "Benchmark driver for the smallvec small-buffer vector",
	Long: `go-smallvec exercises the smallvec library, a generic vector that
stores small element counts inline in the struct and only spills to a
heap-allocated buffer past a fixed per-instantiation threshold.

Commands:
  bench       Run the append/clone/move benchmark grid against a plain slice baseline
  version     Print the library version`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, yaml)")
}
