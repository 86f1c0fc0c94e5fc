package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/pension-advisor/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Build a plan through a question-and-answer session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		r := &chat.Runner{Planner: newEngine(cfg), Log: zap.L().Named("chat")}
		return r.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
