package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <container>",
		Short: "Check the header layout invariants",
		Long: `The validate command checks that every present header pointer is no
smaller than its predecessor and that the last section fits inside the
image. Exits non-zero when the layout is inconsistent.

Example:
  fxctl validate boss_flare.fxc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
	return cmd
}

func runValidate(path string) error {
	_, h, err := openContainer(path)
	if err != nil {
		return fmt.Errorf("failed to open container: %w", err)
	}
	if err := h.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	printInfo("%s: layout OK\n", path)
	return nil
}
