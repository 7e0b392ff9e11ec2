// Package commute runs the commuting survey pipeline: it aggregates the
// survey, prints the intermediate tables and renders one chart per stage.
package commute

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
	"github.com/ukaji3/commuteplot-go/pkg/commute/render"
)

// Stage is one chart-producing step of the pipeline.
type Stage string

const (
	// StageFrequency plots the commute-days distribution per season.
	StageFrequency Stage = "frequency"
	// StageModes plots the transport-mode shares per season.
	StageModes Stage = "modes"
	// StageMeanDays plots mean weekly days per mode and season.
	StageMeanDays Stage = "mean-days"
	// StageGenderStacked plots mean weekly days per mode and gender, stacked per season.
	StageGenderStacked Stage = "gender-stacked"
)

// AllStages returns every stage in run order.
func AllStages() []Stage {
	return []Stage{StageFrequency, StageModes, StageMeanDays, StageGenderStacked}
}

// ParseStage converts a stage name.
func ParseStage(s string) (Stage, error) {
	if lo.Contains(AllStages(), Stage(s)) {
		return Stage(s), nil
	}
	return "", fmt.Errorf("%w: %q (must be one of %v)", ErrUnknownStage, s, AllStages())
}

// SheetName returns the workbook sheet name of the stage.
func (s Stage) SheetName() string {
	switch s {
	case StageFrequency:
		return "Frequency"
	case StageModes:
		return "Modes"
	case StageMeanDays:
		return "MeanDays"
	case StageGenderStacked:
		return "GenderStacked"
	}
	return string(s)
}

// Options configures a pipeline run.
type Options struct {
	// OutputDir is the existing directory the PNG files are written to.
	OutputDir string `validate:"required"`
	// DPI is the raster resolution.
	DPI float64 `validate:"gte=72,lte=600"`
	// ShowTitles draws chart titles.
	ShowTitles bool
	// Stages selects the stages to run. Nil runs all of them.
	Stages []Stage
	// Console receives the mean and long-format tables. Nil discards them.
	Console io.Writer
	// Survey overrides the compiled-in dataset when set.
	Survey *models.Survey
}

// DefaultOptions returns options that run every stage into the working
// directory at print resolution.
func DefaultOptions() Options {
	return Options{
		OutputDir: ".",
		DPI:       render.DefaultDPI,
		Console:   os.Stdout,
	}
}

// ShouldRun returns whether stage is selected.
func (o Options) ShouldRun(stage Stage) bool {
	if o.Stages == nil {
		return true
	}
	return lo.Contains(o.Stages, stage)
}

// Validate checks the options before a run.
func (o Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	for _, s := range o.Stages {
		if _, err := ParseStage(string(s)); err != nil {
			return err
		}
	}
	return nil
}
