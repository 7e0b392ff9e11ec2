package render

import (
	"bytes"
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/commuteplot-go/pkg/commute/charts"
	"github.com/ukaji3/commuteplot-go/pkg/commute/dataset"
	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
	"github.com/ukaji3/commuteplot-go/pkg/commute/stats"
)

// testDPI keeps rendered images small.
const testDPI = 20

func builtinSpecs(t *testing.T) []models.ChartSpec {
	t.Helper()
	survey := dataset.Builtin()

	means, err := stats.ModeSeasonMeans(survey.ModeDays)
	require.NoError(t, err)
	records, err := stats.Reshape(survey.GenderDays)
	require.NoError(t, err)

	return []models.ChartSpec{
		charts.FrequencyChart(survey.Frequency, true),
		charts.ModeChart(survey.ModeShare, false),
		charts.MeanDaysChart(means, true),
		charts.GenderStackedChart(stats.StackContributions(records), stats.GenderTotals(records), true),
	}
}

func TestRenderProducesPNG(t *testing.T) {
	for _, spec := range builtinSpecs(t) {
		t.Run(spec.FileName, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(spec, &buf, testDPI))

			cfg, err := png.DecodeConfig(&buf)
			require.NoError(t, err)

			wantW, wantH := PixelSize(spec, testDPI)
			assert.Equal(t, wantW, cfg.Width)
			assert.Equal(t, wantH, cfg.Height)
		})
	}
}

func TestPixelSize(t *testing.T) {
	w, h := PixelSize(models.ChartSpec{WidthIn: 12, HeightIn: 8}, 300)
	assert.Equal(t, 3600, w)
	assert.Equal(t, 2400, h)
}

func TestValidate(t *testing.T) {
	valid := models.ChartSpec{
		FileName:   "x.png",
		Kind:       models.ChartGrouped,
		Categories: []string{"a", "b"},
		Series:     []models.SeriesSpec{{Name: "s", Values: []float64{1, 2}}},
		WidthIn:    4,
		HeightIn:   3,
	}
	require.NoError(t, Validate(valid))

	tests := []struct {
		name   string
		modify func(*models.ChartSpec)
	}{
		{"missing file name", func(s *models.ChartSpec) { s.FileName = "" }},
		{"unknown kind", func(s *models.ChartSpec) { s.Kind = "pie" }},
		{"no categories", func(s *models.ChartSpec) { s.Categories = nil }},
		{"no size", func(s *models.ChartSpec) { s.WidthIn = 0 }},
		{"short series", func(s *models.ChartSpec) {
			s.Series = []models.SeriesSpec{{Name: "s", Values: []float64{1}}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := valid
			spec.Categories = append([]string(nil), valid.Categories...)
			tt.modify(&spec)
			assert.ErrorIs(t, Validate(spec), ErrInvalidSpec)
		})
	}
}

func TestRenderRejectsInvalidSpec(t *testing.T) {
	var buf bytes.Buffer
	err := Render(models.ChartSpec{FileName: "x.png", Kind: models.ChartGrouped}, &buf, testDPI)
	assert.ErrorIs(t, err, ErrInvalidSpec)
	assert.Zero(t, buf.Len())
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	spec := builtinSpecs(t)[2]

	path, err := SaveFile(spec, dir, testDPI)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, charts.MeanDaysFile), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.DecodeConfig(f)
	assert.NoError(t, err)
}

func TestSaveFileMissingDirectory(t *testing.T) {
	spec := builtinSpecs(t)[0]
	_, err := SaveFile(spec, filepath.Join(t.TempDir(), "missing"), testDPI)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
