package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sprited/effectkit/effect"
	"github.com/zeebo/blake3"
)

func init() {
	rootCmd.AddCommand(newDiffCmd())
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <container-a> <container-b>",
		Short: "Compare two containers section by section",
		Long: `The diff command derives the section spans of both containers and
compares the content digest of each. Sections present in one container
and absent in the other are reported as added or removed.

Example:
  fxctl diff before.fxc after.fxc`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1])
		},
	}
	return cmd
}

func sectionDigests(path string) (map[string][]byte, map[string]uint32, error) {
	store, h, err := openContainer(path)
	if err != nil {
		return nil, nil, err
	}
	secs, err := effect.SectionsOf(h, h.Total)
	if err != nil {
		return nil, nil, err
	}
	data := store.Bytes()
	digests := make(map[string][]byte, len(secs))
	lengths := make(map[string]uint32, len(secs))
	for _, sec := range secs {
		end := int(sec.Start + sec.Length)
		if end > len(data) {
			end = len(data)
		}
		sum := blake3.Sum256(data[sec.Start:end])
		digests[sec.ID.String()] = sum[:]
		lengths[sec.ID.String()] = sec.Length
	}
	return digests, lengths, nil
}

func runDiff(pathA, pathB string) error {
	a, lenA, err := sectionDigests(pathA)
	if err != nil {
		return fmt.Errorf("%s: %w", pathA, err)
	}
	b, lenB, err := sectionDigests(pathB)
	if err != nil {
		return fmt.Errorf("%s: %w", pathB, err)
	}

	changed := 0
	for _, id := range effect.SectionIDs() {
		name := id.String()
		da, inA := a[name]
		db, inB := b[name]
		switch {
		case inA && !inB:
			printInfo("  - %s removed\n", name)
			changed++
		case !inA && inB:
			printInfo("  + %s added (%d bytes)\n", name, lenB[name])
			changed++
		case inA && inB && !bytes.Equal(da, db):
			printInfo("  ~ %s changed (%d -> %d bytes)\n", name, lenA[name], lenB[name])
			changed++
		default:
			printVerbose("    %s unchanged\n", name)
		}
	}
	if changed == 0 {
		printInfo("containers are identical section by section\n")
	}
	return nil
}
