package main

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/pension-advisor/internal/config"
	"github.com/rpgo/pension-advisor/internal/domain"
)

var cfg *config.Config

// planner is what every subcommand needs from the engine.
type planner interface {
	GeneratePlan(ctx context.Context, profile domain.UserProfile) (domain.Plan, error)
}

var rootCmd = &cobra.Command{
	Use:   "pension-advisor",
	Short: "Rule-based retirement planning assistant",
	Long:  "Scores risk tolerance, projects the retirement savings need and proposes an asset allocation with product suggestions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
