package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/elimination/logging"
)

func newBatchCmd(flags *rootFlags) *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Analyze every test file in a directory and time each one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			files, err := filepath.Glob(filepath.Join(args[0], pattern))
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}
			if len(files) == 0 {
				return fmt.Errorf("batch: no files match %s in %s", pattern, args[0])
			}
			sort.Strings(files)

			log := logging.New("batch")
			out := cmd.OutOrStdout()
			failedFiles := 0
			for _, path := range files {
				fmt.Fprintf(out, "Reading input values from %s.\n", path)

				f, err := os.Open(path)
				if err != nil {
					log.Error("cannot open test file", "path", path, "err", err)
					failedFiles++
					continue
				}
				start := time.Now()
				st, err := analyzeStream(cmd.Context(), cfg, path, f, out)
				elapsed := time.Since(start)
				f.Close()
				if err != nil {
					return err
				}
				if st.failed > 0 {
					failedFiles++
				}
				log.Info("test file done", "path", path, "divisions", st.divisions, "elapsed", elapsed)
				fmt.Fprintf(out, "Execution took: %d microseconds\n\n", elapsed.Microseconds())
			}
			if failedFiles > 0 {
				return fmt.Errorf("batch: %d of %d file(s) had errors", failedFiles, len(files))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pattern, "pattern", "*.txt", "glob of test files inside dir")
	return cmd
}
