package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arplace-sim",
	Short: "Replay touch scenarios against a simulated AR room",
	Long: `arplace-sim drives the placement controllers headlessly. Scenarios are
tengo scripts that describe finger gestures; rooms are YAML descriptions of
the planes a session will detect.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
