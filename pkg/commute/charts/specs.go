// Package charts builds the chart specifications for each pipeline stage.
// Every function here is pure: nothing is drawn or written.
package charts

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

// Output file names.
const (
	FrequencyFile     = "commuting_frequency_plot.png"
	ModeFile          = "commuting_modes_updated_plot.png"
	MeanDaysFile      = "commuting_modes_by_semester_plot.png"
	GenderStackedFile = "stacked_bar_male_female.png"
)

// Value-axis ranges shared by comparable charts.
var (
	PercentRange = []float64{0, 100}
	DaysRange    = []float64{0, 7}
)

// Palette is the base series palette.
var Palette = []string{"2E86AB", "A23B72", "F18F01", "C73E1D"}

// StackPalette maps each mode/gender segment to its color; female segments
// use a lighter shade of the mode color.
var StackPalette = map[models.StackKey]string{
	{Mode: models.ModeWalking, Gender: models.GenderMale}:   "2E86AB",
	{Mode: models.ModeWalking, Gender: models.GenderFemale}: "5DADE2",
	{Mode: models.ModeBike, Gender: models.GenderMale}:      "A23B72",
	{Mode: models.ModeBike, Gender: models.GenderFemale}:    "BB8FCE",
	{Mode: models.ModeBus, Gender: models.GenderMale}:       "F18F01",
	{Mode: models.ModeBus, Gender: models.GenderFemale}:     "F7DC6F",
	{Mode: models.ModeCar, Gender: models.GenderMale}:       "C73E1D",
	{Mode: models.ModeCar, Gender: models.GenderFemale}:     "E74C3C",
}

// seasonLabels returns the season names as category labels.
func seasonLabels() []string {
	return lo.Map(models.Seasons(), func(s models.Season, _ int) string { return string(s) })
}

// percentSeries converts percent table columns into colored series.
func percentSeries(table models.PercentTable) []models.SeriesSpec {
	return lo.Map(table.Columns, func(c models.PercentColumn, i int) models.SeriesSpec {
		return models.SeriesSpec{
			Name:   c.Name,
			Color:  Palette[i%len(Palette)],
			Values: append([]float64(nil), c.Values...),
		}
	})
}

// FrequencyChart builds the commute-days grouped chart: one category per day
// bucket, one series per season.
func FrequencyChart(table models.PercentTable, showTitle bool) models.ChartSpec {
	return models.ChartSpec{
		FileName:    FrequencyFile,
		Kind:        models.ChartGrouped,
		Title:       "Commuting Frequency Across Different Semesters",
		ShowTitle:   showTitle,
		XLabel:      table.Label,
		YLabel:      "Percentage (%)",
		Categories:  append([]string(nil), table.Categories...),
		Series:      percentSeries(table),
		YRange:      clone(PercentRange),
		BarWidth:    0.25,
		ValueFormat: "%.1f%%",
		TickFormat:  "%.0f%%",
		LegendTitle: "Season",
		Legend:      models.LegendInside,
		WidthIn:     12,
		HeightIn:    8,
	}
}

// ModeChart builds the transport-mode grouped chart: one category per
// season, one series per mode.
func ModeChart(table models.PercentTable, showTitle bool) models.ChartSpec {
	return models.ChartSpec{
		FileName:    ModeFile,
		Kind:        models.ChartGrouped,
		Title:       "Mode of Transport - Seasonal Commuting Patterns",
		ShowTitle:   showTitle,
		XLabel:      "Semesters",
		YLabel:      "Percentage (%)",
		Categories:  append([]string(nil), table.Categories...),
		Series:      percentSeries(table),
		YRange:      clone(PercentRange),
		BarWidth:    0.2,
		ValueFormat: "%.1f%%",
		TickFormat:  "%.0f%%",
		LegendTitle: "Mode of Transport",
		Legend:      models.LegendInside,
		WidthIn:     14,
		HeightIn:    8,
	}
}

// MeanDaysChart builds the mean weekly days grouped chart from the
// mode/season mean table. Missing cells are drawn as 0.
func MeanDaysChart(means models.MeanTable, showTitle bool) models.ChartSpec {
	series := lo.Map(models.Modes(), func(m models.Mode, i int) models.SeriesSpec {
		return models.SeriesSpec{
			Name:  string(m),
			Color: Palette[i%len(Palette)],
			Values: lo.Map(models.Seasons(), func(s models.Season, _ int) float64 {
				return means.Get(m, s)
			}),
		}
	})

	return models.ChartSpec{
		FileName:    MeanDaysFile,
		Kind:        models.ChartGrouped,
		Title:       "Mean Weekly Commuting Days by Mode & Season",
		ShowTitle:   showTitle,
		XLabel:      "Semesters",
		YLabel:      "Mean Days/Week",
		Categories:  seasonLabels(),
		Series:      series,
		YRange:      clone(DaysRange),
		BarWidth:    0.2,
		ValueFormat: "%.1f",
		TickFormat:  "%.0f",
		LegendTitle: "Mode of Transport",
		Legend:      models.LegendInside,
		WidthIn:     12,
		HeightIn:    8,
	}
}

// GenderStackedChart builds the stacked chart from zero-filled stack
// contributions and annotates it with per-gender totals.
func GenderStackedChart(
	contrib map[models.Season]map[models.StackKey]float64,
	totals map[models.Gender]map[models.Season]float64,
	showTitle bool,
) models.ChartSpec {
	series := lo.Map(models.StackKeys(), func(k models.StackKey, _ int) models.SeriesSpec {
		return models.SeriesSpec{
			Name:  k.String(),
			Color: StackPalette[k],
			Values: lo.Map(models.Seasons(), func(s models.Season, _ int) float64 {
				return contrib[s][k]
			}),
		}
	})

	return models.ChartSpec{
		FileName:    GenderStackedFile,
		Kind:        models.ChartStacked,
		Title:       "Male vs Female Commuting Patterns by Mode and Semester",
		ShowTitle:   showTitle,
		XLabel:      "Semesters",
		YLabel:      "Total Mean Days/Week",
		Categories:  seasonLabels(),
		Series:      series,
		BarWidth:    0.6,
		ValueFormat: "%.1f",
		TickFormat:  "%.0f",
		Legend:      models.LegendOutside,
		Annotation:  GenderSummary(totals),
		WidthIn:     14,
		HeightIn:    8,
	}
}

// GenderSummary formats the per-gender season totals, one line per gender.
func GenderSummary(totals map[models.Gender]map[models.Season]float64) string {
	var b strings.Builder
	b.WriteString("Summary by Gender:")
	for _, g := range models.Genders() {
		t := totals[g]
		fmt.Fprintf(&b, "\n%s: Fall=%.1f, Spring=%.1f, Summer=%.1f",
			g, t[models.SeasonFall], t[models.SeasonSpring], t[models.SeasonSummer])
	}
	return b.String()
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
