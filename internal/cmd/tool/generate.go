package tool

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elijahdou/fastulid/internal/config"
	"github.com/elijahdou/fastulid/pkg/log"
	"github.com/elijahdou/fastulid/pkg/ulid"
)

// NewGenerateCommand constructs the `generate` command. Defaults come from
// cfg (environment overlay); flags override.
func NewGenerateCommand(cfg config.Config, logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate ULIDs, one per line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			strategyName, _ := cmd.Flags().GetString("strategy")
			clockName, _ := cmd.Flags().GetString("clock")
			maxWait, _ := cmd.Flags().GetDuration("max-wait")

			strategy, err := ulid.ParseStrategy(strategyName)
			if err != nil {
				return err
			}
			clock, err := parseClock(clockName)
			if err != nil {
				return err
			}

			g := ulid.NewGenerator(
				ulid.WithClock(clock),
				ulid.WithStrategy(strategy),
				ulid.WithMaxWait(maxWait),
			)
			ids, err := g.NextBatch(count)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			logger.Debug("generated batch",
				log.Int("count", len(ids)),
				log.Str("strategy", strategy.String()),
				log.Str("clock", clockName),
			)
			return nil
		},
	}
	cmd.Flags().Int("count", 1, "Number of identifiers to mint in one batch")
	cmd.Flags().String("strategy", cfg.Strategy, "Clock-drift strategy: monotonic|strict")
	cmd.Flags().String("clock", cfg.Clock, "Time source: system|monotonic")
	cmd.Flags().Duration("max-wait", cfg.MaxWait, "Bound for the batch overflow wait")
	return cmd
}

func parseClock(name string) (ulid.Clock, error) {
	switch name {
	case "system", "":
		return ulid.SystemClock(), nil
	case "monotonic":
		return ulid.NewMonotonicClock(), nil
	default:
		return nil, fmt.Errorf("unknown clock %q (use system|monotonic)", name)
	}
}
