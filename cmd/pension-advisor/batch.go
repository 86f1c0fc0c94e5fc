package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/pension-advisor/internal/config"
	"github.com/rpgo/pension-advisor/internal/domain"
)

var (
	batchFormat      string
	batchOutput      string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch <profiles.yaml>",
	Short: "Generate plans for every profile in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		profiles, err := config.NewInputParser().LoadBatchFromFile(args[0])
		if err != nil {
			return eris.Wrap(err, "load batch")
		}

		concurrency := batchConcurrency
		if concurrency == 0 {
			concurrency = cfg.Batch.Concurrency
		}
		results, err := processBatch(ctx, newEngine(cfg), profiles, concurrency)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if batchOutput != "" {
			f, err := os.Create(batchOutput)
			if err != nil {
				return eris.Wrap(err, "create batch output")
			}
			defer f.Close()
			out = f
		}
		return writeBatch(out, results, batchFormat)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFormat, "format", "json", "result format: json or yaml")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "write results to this file instead of stdout")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "parallel plans (default from config)")
	rootCmd.AddCommand(batchCmd)
}

// batchResult is one entry of the batch output, in input order.
type batchResult struct {
	Index  int          `json:"index" yaml:"index"`
	PlanID string       `json:"plan_id,omitempty" yaml:"plan_id,omitempty"`
	Plan   *domain.Plan `json:"plan,omitempty" yaml:"plan,omitempty"`
	Error  string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// processBatch plans every profile on a bounded pool. A profile the engine
// rejects is recorded in its result; any other failure aborts the batch.
func processBatch(ctx context.Context, p planner, profiles []domain.UserProfile, concurrency int) ([]batchResult, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	results := make([]batchResult, len(profiles))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, profile := range profiles {
		i, profile := i, profile
		g.Go(func() error {
			plan, err := p.GeneratePlan(gctx, profile)
			switch {
			case domain.IsValidationError(err):
				failed.Add(1)
				results[i] = batchResult{Index: i, Error: err.Error()}
				zap.L().Warn("batch profile rejected", zap.Int("index", i), zap.Error(err))
				return nil
			case err != nil:
				return eris.Wrapf(err, "profile %d", i)
			}
			results[i] = batchResult{Index: i, PlanID: uuid.NewString(), Plan: &plan}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	zap.L().Info("batch complete",
		zap.Int("total", len(profiles)),
		zap.Int64("failed", failed.Load()),
		zap.Int("concurrency", concurrency),
	)
	return results, nil
}

func writeBatch(w io.Writer, results []batchResult, format string) error {
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return eris.Errorf("unsupported batch format %q (use json or yaml)", format)
	}
}
