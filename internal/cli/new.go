package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/weiawesome/wes-io-live/ulid-service/internal/generator"
)

func newNewCommand() *cobra.Command {
	var (
		count int
		seed  int64
		at    int64
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate new ULIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("-n must be at least 1, got %d", count)
			}
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}

			source := generator.EntropyCrypto
			if cmd.Flags().Changed("seed") {
				source = generator.EntropySeeded
			}
			entropy, err := generator.NewEntropy(source, seed)
			if err != nil {
				return err
			}

			opts := generator.Options{Format: format, Entropy: entropy}
			if cmd.Flags().Changed("at") {
				fixed := time.UnixMilli(at)
				opts.Clock = func() time.Time { return fixed }
			}
			gen, err := generator.NewULIDGenerator(opts)
			if err != nil {
				return err
			}

			ids, err := gen.GenerateBatch(count)
			if err != nil {
				return fmt.Errorf("failed to generate: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of ids to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed a deterministic entropy source")
	cmd.Flags().Int64Var(&at, "at", 0, "fixed timestamp in unix milliseconds")
	return cmd
}
