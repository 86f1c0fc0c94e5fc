package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/pension-advisor/internal/output"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List report formats and their aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listFormats(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func listFormats(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", ")); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
	return err
}
