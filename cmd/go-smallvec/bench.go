package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-smallvec/internal/bench"
)

var (
	benchConfigPath string
	benchSizes      []int
	benchElements   []string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the benchmark grid",
	Long: `Run the smallvec benchmark grid: for every configured element kind and
size, measure vector push, clone, and move against a plain slice append
baseline.

Examples:
  # Default grid, text table
  go-smallvec bench

  # Custom grid from a config file, YAML report
  go-smallvec bench --config bench.yaml --output yaml

  # Override the grid from flags
  go-smallvec bench --sizes 4,64 --elements uuid`,

	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBench(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringVar(&benchConfigPath, "config", "", "path to a YAML config file")
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", nil, "element counts to measure (overrides config)")
	benchCmd.Flags().StringSliceVar(&benchElements, "elements", nil, "element kinds to measure (overrides config)")
}

func runBench() error {
	cfg, err := bench.LoadConfig(benchConfigPath)
	if err != nil {
		return err
	}
	if len(benchSizes) > 0 {
		cfg.Sizes = benchSizes
	}
	if len(benchElements) > 0 {
		cfg.Elements = benchElements
	}

	runner, err := bench.NewRunner(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "running %d element kinds x %d sizes\n",
			len(cfg.Elements), len(cfg.Sizes))
	}

	report, err := runner.Run()
	if err != nil {
		return err
	}

	switch outputFormat {
	case "yaml":
		return report.WriteYAML(os.Stdout)
	case "table":
		return report.WriteTable(os.Stdout)
	default:
		return fmt.Errorf("unknown output format %q (want table or yaml)", outputFormat)
	}
}
