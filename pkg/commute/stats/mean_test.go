package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"empty slice", []float64{}, 0},
		{"single", []float64{3.5}, 3.5},
		{"all zero", []float64{0, 0, 0, 0}, 0},
		{"mixed buckets", []float64{0, 1.5, 3.5, 7}, 3},
		{"walking fall", []float64{0, 5.5, 0, 0, 0, 5.5, 5.5, 0, 0, 5.5, 3.5}, 25.5 / 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Mean(tt.input), 1e-12)
		})
	}
}

func TestMeanMatchesSumOverCount(t *testing.T) {
	inputs := [][]float64{
		{1.5},
		{0, 5.5, 7, 3.5, 1.5, 0, 0},
		{5.5, 5.5, 5.5},
	}
	for _, in := range inputs {
		var sum float64
		for _, v := range in {
			sum += v
		}
		assert.InDelta(t, sum/float64(len(in)), Mean(in), 1e-12)
	}
}

func TestWalkingFallRounded(t *testing.T) {
	obs := []float64{0, 5.5, 0, 0, 0, 5.5, 5.5, 0, 0, 5.5, 3.5}
	assert.Equal(t, 2.32, RoundFloat64(Mean(obs), 2))
}

func TestMeanByGroup(t *testing.T) {
	got := MeanByGroup(map[string][]float64{
		"a": {1, 2, 3},
		"b": {},
	})
	assert.Equal(t, map[string]float64{"a": 2, "b": 0}, got)
}

func TestModeSeasonMeans(t *testing.T) {
	data := models.ModeObservations{
		models.ModeWalking: {
			models.SeasonFall:   {0, 5.5, 0, 0, 0, 5.5, 5.5, 0, 0, 5.5, 3.5},
			models.SeasonSummer: {},
		},
		models.ModeCar: {
			models.SeasonSpring: {5.5, 0, 1.5},
		},
	}

	table, err := ModeSeasonMeans(data)
	require.NoError(t, err)

	assert.InDelta(t, 25.5/11, table.Get(models.ModeWalking, models.SeasonFall), 1e-12)
	assert.Equal(t, 0.0, table.Get(models.ModeWalking, models.SeasonSummer))
	assert.InDelta(t, 7.0/3, table.Get(models.ModeCar, models.SeasonSpring), 1e-12)
	// Missing keys zero-fill.
	assert.Equal(t, 0.0, table.Get(models.ModeBus, models.SeasonFall))
	assert.Equal(t, 0.0, table.Get(models.ModeCar, models.SeasonFall))
}

func TestModeSeasonMeansRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"negative", -1},
		{"too many days", 8},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := models.ModeObservations{
				models.ModeBus: {models.SeasonSpring: {0, 1.5, tt.value}},
			}
			_, err := ModeSeasonMeans(data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidObservation))

			var obsErr *ObservationError
			require.True(t, errors.As(err, &obsErr))
			assert.Equal(t, models.ModeBus, obsErr.Mode)
			assert.Equal(t, models.SeasonSpring, obsErr.Season)
			assert.Equal(t, 2, obsErr.Index)
			assert.Contains(t, err.Error(), "Bus/Shuttle/Spring[2]")
		})
	}
}

func TestRoundFloat64(t *testing.T) {
	tests := []struct {
		in       float64
		n        int
		expected float64
	}{
		{2.318181, 2, 2.32},
		{1.25, 1, 1.3},
		{3.0, 2, 3.0},
		{0.004, 2, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundFloat64(tt.in, tt.n), "RoundFloat64(%v, %d)", tt.in, tt.n)
	}
}
