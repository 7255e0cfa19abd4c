package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sprited/effectkit/effect"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <container> <section>",
		Short: "Decode one section's records as JSON",
		Long: `The dump command parses the container and prints the decoded records of
one section as JSON. Section names match the header pointer table:
frames, animation, script, particle, curve_table, timing_curve,
effect_flags, timeline, sound_def, texture.

Example:
  fxctl dump boss_flare.fxc particle
  fxctl dump boss_flare.fxc script`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], args[1])
		},
	}
	return cmd
}

func runDump(path, section string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sess, err := effect.Load(effect.NewByteStore(data), 0)
	if err != nil {
		return fmt.Errorf("failed to parse container: %w", err)
	}
	if sess.LayoutErr != nil {
		return fmt.Errorf("%s: %w", path, sess.LayoutErr)
	}

	doc := sess.Doc
	switch section {
	case "frames":
		return printJSON(doc.Sequences)
	case "animation":
		return printJSON(doc.ColorTracks)
	case "script":
		return printJSON(doc.Script)
	case "particle":
		return printJSON(doc.Emitters)
	case "curve_table":
		return printJSON(doc.Camera)
	case "timing_curve":
		if doc.TimingCurve == nil {
			printInfo("timing_curve: absent\n")
			return nil
		}
		return printJSON(doc.TimingCurve)
	case "effect_flags":
		return printJSON(map[string]any{
			"flags": doc.Flags,
			"tail":  doc.FlagsTail,
		})
	case "timeline":
		return printJSON(doc.Timeline)
	case "sound_def":
		return printJSON(doc.Sound)
	case "texture":
		printInfo("texture: %d bytes (opaque)\n", len(doc.Texture))
		return nil
	}
	return fmt.Errorf("unknown section %q", section)
}
