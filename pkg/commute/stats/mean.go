// Package stats computes means over survey observations and reshapes them
// into long-format records.
package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

// MaxDays is the largest valid weekly day count.
const MaxDays = 7

// ErrInvalidObservation indicates an observation that is not a finite day count in [0, MaxDays].
var ErrInvalidObservation = errors.New("invalid observation")

// ObservationError describes the offending observation.
type ObservationError struct {
	Mode   models.Mode
	Gender models.Gender // empty for mode/season data
	Season models.Season
	Index  int
	Value  float64
}

func (e *ObservationError) Error() string {
	group := string(e.Mode)
	if e.Gender != "" {
		group += "_" + string(e.Gender)
	}
	return fmt.Sprintf("%v: %s/%s[%d] = %v (want a finite value in [0, %d])",
		ErrInvalidObservation, group, e.Season, e.Index, e.Value, MaxDays)
}

func (e *ObservationError) Unwrap() error {
	return ErrInvalidObservation
}

// Mean returns the arithmetic mean of values, or 0 for an empty sequence.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return lo.Sum(values) / float64(len(values))
}

// MeanByGroup reduces every group to its mean. Empty groups yield 0.
func MeanByGroup[K comparable](groups map[K][]float64) map[K]float64 {
	return lo.MapValues(groups, func(values []float64, _ K) float64 {
		return Mean(values)
	})
}

// ModeSeasonMeans validates the observations and returns the mean for every
// (mode, season) present in the input.
func ModeSeasonMeans(data models.ModeObservations) (models.MeanTable, error) {
	table := make(models.MeanTable, len(data))
	for mode, bySeason := range data {
		for season, obs := range bySeason {
			if err := validate(obs, mode, "", season); err != nil {
				return nil, err
			}
			table.Set(mode, season, Mean(obs))
		}
	}
	return table, nil
}

// validate checks that every observation is a finite day count.
func validate(obs models.Observations, mode models.Mode, gender models.Gender, season models.Season) error {
	for i, v := range obs {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > MaxDays {
			return &ObservationError{Mode: mode, Gender: gender, Season: season, Index: i, Value: v}
		}
	}
	return nil
}

// RoundFloat64 rounds f to n decimal places.
func RoundFloat64(f float64, n int) float64 {
	pow := math.Pow10(n)
	return math.Round(f*pow) / pow
}
