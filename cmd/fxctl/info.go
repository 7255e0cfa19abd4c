package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sprited/effectkit/effect"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <container>",
		Short: "Show the header pointer table and basic metadata",
		Long: `The info command reads a container's header pointer table and reports
each section pointer, the total image size, and whether the layout
invariants hold.

Example:
  fxctl info boss_flare.fxc
  fxctl info boss_flare.fxc --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
	return cmd
}

type infoReport struct {
	File     string            `json:"file"`
	Total    uint32            `json:"total_bytes"`
	Pointers map[string]uint32 `json:"pointers"`
	Valid    bool              `json:"valid"`
	Issue    string            `json:"issue,omitempty"`
}

func runInfo(path string) error {
	printVerbose("Opening container: %s\n", path)

	_, h, err := openContainer(path)
	if err != nil {
		return fmt.Errorf("failed to open container: %w", err)
	}

	report := infoReport{
		File:     path,
		Total:    h.Total,
		Pointers: make(map[string]uint32),
		Valid:    true,
	}
	for _, id := range effect.SectionIDs() {
		report.Pointers[id.String()] = h.Ptr(id)
	}
	if err := h.Validate(); err != nil {
		report.Valid = false
		report.Issue = err.Error()
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("\nContainer Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Total: %d bytes\n", report.Total)
	printInfo("\n  %-14s %s\n", "Section", "Pointer")
	for _, id := range effect.SectionIDs() {
		p := h.Ptr(id)
		if id == effect.SecTimingCurve && p == 0 {
			printInfo("  %-14s (absent)\n", id)
			continue
		}
		printInfo("  %-14s %#x\n", id, p)
	}
	if report.Valid {
		printInfo("\n  Layout: OK\n")
	} else {
		printInfo("\n  Layout: INVALID (%s)\n", report.Issue)
	}
	return nil
}
