package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cbind/internal/config"
	"cbind/internal/diag"
	"cbind/internal/dump"
	"cbind/internal/entity"
	"cbind/internal/library"
)

func generateExecution(cmd *cobra.Command, args []string) error {
	declDir := args[0]

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	dumpPath, err := cmd.Flags().GetString("dump")
	if err != nil {
		return err
	}
	colorValue, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(configPath, declDir)
	if err != nil {
		return err
	}

	bag := diag.NewBag()
	rep := buildReporter(bag, colorValue, quiet)

	lib, err := library.Load(declDir, cfg, prebuiltsFromConfig(cfg), cfg.IgnoreSet(), rep)
	if err != nil {
		return err
	}

	if dumpPath != "" {
		if err := dump.WriteFile(dumpPath, lib); err != nil {
			return err
		}
	}

	built, err := lib.Build(cfg, rep)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	if err := built.Write(cfg, out); err != nil {
		closeOut()
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := closeOut(); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "%d warnings, %d errors\n",
			bag.Count(diag.VerdictWarning), bag.Count(diag.VerdictError))
	}
	return nil
}

// resolveConfig loads --config when given, otherwise searches upward from the
// declaration directory and falls back to defaults when nothing is found.
func resolveConfig(configPath, declDir string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	found, ok, err := config.Find(declDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return config.Default(), nil
	}
	return config.Load(found)
}

func prebuiltsFromConfig(cfg *config.Config) []*entity.Prebuilt {
	out := make([]*entity.Prebuilt, 0, len(cfg.Prebuilt))
	for _, p := range cfg.Prebuilt {
		out = append(out, &entity.Prebuilt{Name: p.Name, Source: p.Source})
	}
	return out
}

// buildReporter wires the diagnostic sink: records always land in the bag for
// the summary, and unless --quiet is set they are also printed to stderr.
func buildReporter(bag *diag.Bag, colorValue string, quiet bool) diag.Reporter {
	if quiet {
		return bag
	}
	useColor := false
	switch colorValue {
	case "on":
		useColor = true
	case "off":
	default: // auto
		useColor = isTerminal(os.Stderr)
	}
	return diag.MultiReporter{bag, diag.WriterReporter{W: os.Stderr, Color: useColor}}
}

// openOutput returns the destination writer and a close function. Stdout is
// never closed.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %q: %w", path, err)
	}
	return f, f.Close, nil
}
