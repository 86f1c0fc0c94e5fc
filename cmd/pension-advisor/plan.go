package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/rpgo/pension-advisor/internal/config"
	"github.com/rpgo/pension-advisor/internal/domain"
	"github.com/rpgo/pension-advisor/internal/output"
)

type planOptions struct {
	file       string
	format     string
	outDir     string
	defaultDir string // used for binary formats when outDir is empty
	fields     map[string]string
}

var (
	planFile   string
	planFormat string
	planOutDir string
	planFlags  = make(map[string]*string)
)

// planFieldNames are the profile fields exposed as flags, in prompt order.
var planFieldNames = func() []string {
	names := append([]string{}, config.RequiredFields...)
	for i := 0; i < domain.RiskQuestionCount; i++ {
		names = append(names, config.RiskField(i))
	}
	return append(names, config.FieldGoals)
}()

func flagName(field string) string { return strings.ReplaceAll(field, "_", "-") }

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a plan from flags or a profile file",
	Example: `  pension-advisor plan --age 30 --annual-income 120000 --current-assets 0 \
      --monthly-expenses 5000 --retirement-age 60 --risk-q1 B
  pension-advisor plan --file profile.yaml --format html --output reports/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := planOptions{
			file:       planFile,
			format:     planFormat,
			outDir:     planOutDir,
			defaultDir: cfg.Output.Dir,
			fields:     changedFields(cmd.Flags()),
		}
		if opts.format == "" {
			opts.format = cfg.Output.Format
		}
		return runPlan(cmd.Context(), newEngine(cfg), opts, cmd.OutOrStdout())
	},
}

func init() {
	planCmd.Flags().StringVarP(&planFile, "file", "f", "", "YAML profile file (replaces the field flags)")
	planCmd.Flags().StringVar(&planFormat, "format", "", "report format (default from config)")
	planCmd.Flags().StringVarP(&planOutDir, "output", "o", "", "write the report to a timestamped file in this directory (xlsx defaults to output.dir)")
	for _, field := range planFieldNames {
		planFlags[field] = planCmd.Flags().String(flagName(field), "", "profile "+strings.ReplaceAll(field, "_", " "))
	}
	rootCmd.AddCommand(planCmd)
}

// changedFields returns only the profile flags the user set, so missing
// fields are reported by the shared parser.
func changedFields(fs *pflag.FlagSet) map[string]string {
	fields := make(map[string]string)
	for field, v := range planFlags {
		if fs.Changed(flagName(field)) {
			fields[field] = *v
		}
	}
	return fields
}

func runPlan(ctx context.Context, p planner, opts planOptions, out io.Writer) error {
	var (
		profile domain.UserProfile
		err     error
	)
	if opts.file != "" {
		if len(opts.fields) > 0 {
			return eris.New("--file cannot be combined with profile field flags")
		}
		profile, err = config.NewInputParser().LoadFromFile(opts.file)
	} else {
		profile, err = config.ParseProfile(opts.fields)
	}
	if err != nil {
		return err
	}

	plan, err := p.GeneratePlan(ctx, profile)
	if err != nil {
		return eris.Wrap(err, "generate plan")
	}

	outDir := opts.outDir
	if outDir == "" && output.NormalizeFormatName(opts.format) == "xlsx" {
		if opts.defaultDir == "" {
			return eris.New("xlsx reports are binary; use --output to write a file")
		}
		outDir = opts.defaultDir
	}

	if outDir != "" {
		path, err := output.GenerateReport(&plan, opts.format, outDir)
		if err != nil {
			return eris.Wrap(err, "write report")
		}
		zap.L().Info("report written", zap.String("path", path), zap.String("format", opts.format))
		_, err = fmt.Fprintf(out, "Report saved to %s\n", path)
		return err
	}

	data, err := output.Render(&plan, opts.format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
