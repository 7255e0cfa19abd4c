package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sprited/effectkit/effect"
	"github.com/zeebo/blake3"
)

func init() {
	rootCmd.AddCommand(newSectionsCmd())
}

func newSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <container>",
		Short: "List derived section spans and content digests",
		Long: `The sections command derives the ordered section spans from the header
pointer table and prints each span with a BLAKE3 digest of its bytes.

Example:
  fxctl sections boss_flare.fxc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(args[0])
		},
	}
	return cmd
}

type sectionReport struct {
	Name   string `json:"name"`
	Start  uint32 `json:"start"`
	Length uint32 `json:"length"`
	Digest string `json:"digest"`
}

func runSections(path string) error {
	store, h, err := openContainer(path)
	if err != nil {
		return fmt.Errorf("failed to open container: %w", err)
	}
	secs, err := effect.SectionsOf(h, h.Total)
	if err != nil {
		return fmt.Errorf("failed to derive sections: %w", err)
	}

	data := store.Bytes()
	reports := make([]sectionReport, 0, len(secs))
	for _, sec := range secs {
		end := int(sec.Start + sec.Length)
		if end > len(data) {
			end = len(data)
		}
		sum := blake3.Sum256(data[sec.Start:end])
		reports = append(reports, sectionReport{
			Name:   sec.ID.String(),
			Start:  sec.Start,
			Length: sec.Length,
			Digest: fmt.Sprintf("%x", sum[:8]),
		})
	}

	if jsonOut {
		return printJSON(reports)
	}

	printInfo("\n  %-14s %-10s %-10s %s\n", "Section", "Start", "Length", "Digest")
	for _, r := range reports {
		printInfo("  %-14s %#-10x %-10d %s\n", r.Name, r.Start, r.Length, r.Digest)
	}
	return nil
}
