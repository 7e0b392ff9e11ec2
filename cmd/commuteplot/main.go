// Package main provides the CLI entry point for commuteplot.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ukaji3/commuteplot-go/internal/config"
	"github.com/ukaji3/commuteplot-go/internal/logger"
	"github.com/ukaji3/commuteplot-go/pkg/commute"
	"github.com/ukaji3/commuteplot-go/pkg/commute/dataset"
	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
	"github.com/ukaji3/commuteplot-go/pkg/commute/output"
	"github.com/ukaji3/commuteplot-go/pkg/commute/parser"
)

var (
	outputDir    string
	dpi          float64
	showTitles   bool
	stages       []string
	workbookPath string
	jsonPath     string
	inputPath    string
	pretty       bool
)

func main() {
	cfg, err := config.Parse(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Configure(cfg)

	rootCmd := &cobra.Command{
		Use:   "commuteplot",
		Short: "Plot commuting survey statistics",
		Long: `commuteplot aggregates the student commuting survey and renders
the frequency, transport-mode, mean-days and gender-stacked bar charts as PNG.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&outputDir, "out-dir", "o", cfg.OutputDir, "Directory for the PNG charts")
	rootCmd.Flags().Float64Var(&dpi, "dpi", cfg.DPI, "Chart resolution")
	rootCmd.Flags().BoolVar(&showTitles, "titles", cfg.ShowTitles, "Draw chart titles")
	rootCmd.Flags().StringSliceVar(&stages, "stage", nil, "Stages to run: frequency, modes, mean-days, gender-stacked (default: all)")
	rootCmd.Flags().StringVar(&workbookPath, "workbook", "", "Also write an Excel report with native charts")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Also write the run summary as JSON")
	rootCmd.Flags().StringVar(&inputPath, "input", "", "Read raw observations from a survey workbook")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "inspect [report.xlsx]",
		Short: "List the charts embedded in a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  inspect,
	})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("commuteplot failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := commute.DefaultOptions()
	opts.OutputDir = outputDir
	opts.DPI = dpi
	opts.ShowTitles = showTitles
	opts.Console = cmd.OutOrStdout()

	for _, name := range stages {
		stage, err := commute.ParseStage(name)
		if err != nil {
			return err
		}
		opts.Stages = append(opts.Stages, stage)
	}

	survey := dataset.Builtin()
	if inputPath != "" {
		if _, err := os.Stat(inputPath); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", inputPath)
		}
		loaded, err := parser.LoadSurvey(inputPath, survey)
		if err != nil {
			return fmt.Errorf("failed to load survey: %w", err)
		}
		survey = loaded
		log.Info().Str("file", inputPath).Msg("survey loaded")
	}
	opts.Survey = &survey

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	report, err := commute.Run(opts)
	if err != nil {
		return err
	}

	if workbookPath != "" {
		if err := commute.ExportWorkbook(workbookPath, report, survey); err != nil {
			return err
		}
		log.Info().Str("file", workbookPath).Msg("workbook written")
	}

	if jsonPath != "" {
		if err := output.WriteJSON(jsonPath, report, pretty); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		log.Info().Str("file", jsonPath).Msg("summary written")
	}

	return nil
}

func inspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	charts, err := parser.ExtractCharts(path)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if charts == nil {
		charts = []models.WorkbookChart{}
	}

	data, err := output.ToJSON(charts, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
