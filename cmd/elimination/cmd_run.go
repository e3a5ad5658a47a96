package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file...]",
		Short: "Analyze every division in the given files (stdin when none or \"-\")",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"-"}
			}

			failed := 0
			for _, path := range args {
				if path == "-" {
					st, err := analyzeStream(cmd.Context(), cfg, "stdin", cmd.InOrStdin(), cmd.OutOrStdout())
					if err != nil {
						return err
					}
					failed += st.failed
					continue
				}

				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open %s: %w", path, err)
				}
				st, err := analyzeStream(cmd.Context(), cfg, path, f, cmd.OutOrStdout())
				f.Close()
				if err != nil {
					return err
				}
				failed += st.failed
			}
			if failed > 0 {
				return fmt.Errorf("%d division(s) could not be analyzed", failed)
			}
			return nil
		},
	}
}
