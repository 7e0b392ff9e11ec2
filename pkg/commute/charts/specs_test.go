package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/commuteplot-go/pkg/commute/dataset"
	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
	"github.com/ukaji3/commuteplot-go/pkg/commute/stats"
)

func TestFrequencyChart(t *testing.T) {
	spec := FrequencyChart(dataset.Builtin().Frequency, false)

	assert.Equal(t, FrequencyFile, spec.FileName)
	assert.Equal(t, models.ChartGrouped, spec.Kind)
	assert.False(t, spec.ShowTitle)
	assert.Equal(t, []float64{0, 100}, spec.YRange)
	assert.Equal(t, dataset.FrequencyBuckets, spec.Categories)
	require.Len(t, spec.Series, 3)
	assert.Equal(t, "Fall", spec.Series[0].Name)
	assert.Equal(t, "2E86AB", spec.Series[0].Color)
	assert.Equal(t, "F18F01", spec.Series[2].Color)
}

func TestModeChart(t *testing.T) {
	spec := ModeChart(dataset.Builtin().ModeShare, true)

	assert.Equal(t, ModeFile, spec.FileName)
	assert.True(t, spec.ShowTitle)
	assert.Equal(t, []string{"Fall", "Spring", "Summer"}, spec.Categories)
	require.Len(t, spec.Series, 4)
	assert.Equal(t, "Private Car", spec.Series[3].Name)
	assert.Equal(t, "C73E1D", spec.Series[3].Color)
	assert.Equal(t, []float64{72.73, 9.09, 0}, spec.Series[3].Values)
}

func TestSpecsDoNotShareRanges(t *testing.T) {
	a := FrequencyChart(dataset.Builtin().Frequency, false)
	a.YRange[1] = 50
	b := ModeChart(dataset.Builtin().ModeShare, false)
	assert.Equal(t, []float64{0, 100}, b.YRange)
	assert.Equal(t, []float64{0, 100}, PercentRange)
}

func TestMeanDaysChartZeroFillsMissingCells(t *testing.T) {
	means := models.MeanTable{}
	means.Set(models.ModeBus, models.SeasonSpring, 2.5)

	spec := MeanDaysChart(means, false)

	assert.Equal(t, []float64{0, 7}, spec.YRange)
	require.Len(t, spec.Series, 4)
	assert.Equal(t, "Bus/Shuttle", spec.Series[2].Name)
	assert.Equal(t, []float64{0, 2.5, 0}, spec.Series[2].Values)
	assert.Equal(t, []float64{0, 0, 0}, spec.Series[0].Values)
}

func TestGenderStackedChart(t *testing.T) {
	records, err := stats.Reshape(dataset.Builtin().GenderDays)
	require.NoError(t, err)

	spec := GenderStackedChart(stats.StackContributions(records), stats.GenderTotals(records), false)

	assert.Equal(t, models.ChartStacked, spec.Kind)
	assert.Nil(t, spec.YRange)
	assert.Equal(t, models.LegendOutside, spec.Legend)
	require.Len(t, spec.Series, 8)
	assert.Equal(t, "Walking-Male", spec.Series[0].Name)
	assert.Equal(t, "Private Car-Female", spec.Series[7].Name)
	assert.Equal(t, "E74C3C", spec.Series[7].Color)

	// Bus/Shuttle-Male summer responses are all zero.
	assert.Equal(t, "Bus/Shuttle-Male", spec.Series[4].Name)
	assert.Equal(t, 0.0, spec.Series[4].Values[2])

	assert.Contains(t, spec.Annotation, "Summary by Gender:")
	assert.Contains(t, spec.Annotation, "\nMale: Fall=")
	assert.Contains(t, spec.Annotation, "\nFemale: Fall=")
}

func TestGenderSummary(t *testing.T) {
	totals := map[models.Gender]map[models.Season]float64{
		models.GenderMale:   {models.SeasonFall: 1.26, models.SeasonSpring: 2, models.SeasonSummer: 0},
		models.GenderFemale: {models.SeasonFall: 10},
	}
	expected := "Summary by Gender:\n" +
		"Male: Fall=1.3, Spring=2.0, Summer=0.0\n" +
		"Female: Fall=10.0, Spring=0.0, Summer=0.0"
	assert.Equal(t, expected, GenderSummary(totals))
}

func TestStackPaletteCoversEveryKey(t *testing.T) {
	for _, k := range models.StackKeys() {
		assert.Contains(t, StackPalette, k, k.String())
	}
}
