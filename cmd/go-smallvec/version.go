package main

import (
	"fmt"

	"github.com/spf13/cobra"

	smallvec "github.com/deploymenttheory/go-smallvec"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the library version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(smallvec.Version().String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
