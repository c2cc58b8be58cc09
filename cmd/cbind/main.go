// Package main implements the cbind CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cbind/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cbind <decl-dir>",
	Short: "Generate a C-compatible foreign header from declaration manifests",
	Long: `cbind reads annotated declaration manifests of a native library and emits
a minimal, dependency-complete C header covering exactly the types the
exported function surface touches.`,
	Args: cobra.ExactArgs(1),
	RunE: generateExecution,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringP("output", "o", "", "output header path (default: stdout)")
	rootCmd.Flags().String("config", "", "path to cbind.toml (default: upward search)")
	rootCmd.Flags().String("dump", "", "also write a msgpack snapshot of the ingested library")
	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress per-declaration diagnostics")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
