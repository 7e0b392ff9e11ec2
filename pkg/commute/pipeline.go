package commute

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ukaji3/commuteplot-go/pkg/commute/charts"
	"github.com/ukaji3/commuteplot-go/pkg/commute/dataset"
	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
	"github.com/ukaji3/commuteplot-go/pkg/commute/output"
	"github.com/ukaji3/commuteplot-go/pkg/commute/render"
	"github.com/ukaji3/commuteplot-go/pkg/commute/stats"
)

// Error components.
const (
	componentData   = "data"
	componentStats  = "stats"
	componentOutput = "output"
	componentRender = "render"
)

// run carries the state shared by the stages of one Run.
type run struct {
	opts    Options
	survey  models.Survey
	console io.Writer
	report  *models.Report
}

// Run executes the selected stages in order and writes one PNG per stage.
// The first failure stops the run.
func Run(opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := &run{
		opts:    opts,
		survey:  dataset.Builtin(),
		console: opts.Console,
		report:  &models.Report{Stages: []models.StageResult{}},
	}
	if opts.Survey != nil {
		r.survey = *opts.Survey
	}
	if r.console == nil {
		r.console = io.Discard
	}

	for _, stage := range AllStages() {
		if !opts.ShouldRun(stage) {
			continue
		}
		if err := r.runStage(stage); err != nil {
			return nil, err
		}
	}
	return r.report, nil
}

func (r *run) runStage(stage Stage) error {
	start := time.Now()
	logger := log.With().Str("stage", string(stage)).Logger()
	logger.Debug().Msg("stage started")

	spec, err := r.buildSpec(stage, logger)
	if err != nil {
		return err
	}

	path, err := render.SaveFile(spec, r.opts.OutputDir, r.opts.DPI)
	if err != nil {
		return NewStageError(stage, componentRender, err)
	}
	r.report.Stages = append(r.report.Stages, models.StageResult{
		Stage: string(stage),
		Path:  path,
		Spec:  spec,
	})

	logger.Info().
		Str("file", path).
		Dur("duration", time.Since(start)).
		Msg("chart written")
	return nil
}

func (r *run) buildSpec(stage Stage, logger zerolog.Logger) (models.ChartSpec, error) {
	switch stage {
	case StageFrequency:
		table := r.survey.Frequency
		if isEmptyTable(table) {
			return models.ChartSpec{}, NewStageError(stage, componentData, ErrEmptyDataset)
		}
		r.report.PercentChecks = dataset.CheckPercentTotals("frequency", table, dataset.DefaultPercentTolerance)
		for _, c := range r.report.PercentChecks {
			if !c.OK {
				logger.Warn().
					Str("column", c.Column).
					Float64("total", c.Total).
					Msg("percentages do not sum to 100")
			}
		}
		return charts.FrequencyChart(table, r.opts.ShowTitles), nil

	case StageModes:
		if isEmptyTable(r.survey.ModeShare) {
			return models.ChartSpec{}, NewStageError(stage, componentData, ErrEmptyDataset)
		}
		return charts.ModeChart(r.survey.ModeShare, r.opts.ShowTitles), nil

	case StageMeanDays:
		if len(r.survey.ModeDays) == 0 {
			return models.ChartSpec{}, NewStageError(stage, componentData, ErrEmptyDataset)
		}
		means, err := stats.ModeSeasonMeans(r.survey.ModeDays)
		if err != nil {
			return models.ChartSpec{}, NewStageError(stage, componentStats, err)
		}
		r.report.Means = means
		if err := output.WriteMeanTable(r.console, means); err != nil {
			return models.ChartSpec{}, NewStageError(stage, componentOutput, err)
		}
		return charts.MeanDaysChart(means, r.opts.ShowTitles), nil

	case StageGenderStacked:
		if len(r.survey.GenderDays) == 0 {
			return models.ChartSpec{}, NewStageError(stage, componentData, ErrEmptyDataset)
		}
		records, err := stats.Reshape(r.survey.GenderDays)
		if err != nil {
			return models.ChartSpec{}, NewStageError(stage, componentStats, err)
		}
		totals := stats.GenderTotals(records)
		r.report.Records = records
		r.report.GenderTotals = totals
		logger.Debug().Int("records", len(records)).Msg("observations reshaped")
		if err := output.WriteLongTable(r.console, records); err != nil {
			return models.ChartSpec{}, NewStageError(stage, componentOutput, err)
		}
		return charts.GenderStackedChart(stats.StackContributions(records), totals, r.opts.ShowTitles), nil
	}

	return models.ChartSpec{}, fmt.Errorf("%w: %q", ErrUnknownStage, stage)
}

// isEmptyTable reports whether a percent table has no categories or no columns.
func isEmptyTable(t models.PercentTable) bool {
	return len(t.Categories) == 0 || len(t.Columns) == 0
}

// ExportWorkbook writes the charts of report and the raw observations of
// survey to an Excel workbook at path.
func ExportWorkbook(path string, report *models.Report, survey models.Survey) error {
	sheets := lo.Map(report.Stages, func(s models.StageResult, _ int) output.ChartSheet {
		return output.ChartSheet{Name: Stage(s.Stage).SheetName(), Spec: s.Spec}
	})
	if err := output.WriteWorkbook(path, sheets, survey); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
