package stats

import (
	"github.com/samber/lo"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

// Reshape flattens gender observations into long-format records.
//
// Records are emitted in canonical mode, gender, season order. A (mode,
// gender) pair absent from data produces no records; a present pair with a
// missing season produces a record with a mean of 0.
func Reshape(data models.GenderObservations) ([]models.LongRecord, error) {
	var records []models.LongRecord
	for _, mode := range models.Modes() {
		byGender, ok := data[mode]
		if !ok {
			continue
		}
		for _, gender := range models.Genders() {
			bySeason, ok := byGender[gender]
			if !ok {
				continue
			}
			for _, season := range models.Seasons() {
				obs := bySeason[season]
				if err := validate(obs, mode, gender, season); err != nil {
					return nil, err
				}
				records = append(records, models.LongRecord{
					Mode:     mode,
					Gender:   gender,
					Season:   season,
					MeanDays: Mean(obs),
				})
			}
		}
	}
	return records, nil
}

// StackContributions pivots records into season -> stack key -> mean. Every
// canonical season and stack key is present; combinations missing from
// records are zero-filled.
func StackContributions(records []models.LongRecord) map[models.Season]map[models.StackKey]float64 {
	out := make(map[models.Season]map[models.StackKey]float64, len(models.Seasons()))
	for _, season := range models.Seasons() {
		contrib := make(map[models.StackKey]float64, len(models.StackKeys()))
		for _, key := range models.StackKeys() {
			contrib[key] = 0
		}
		out[season] = contrib
	}
	for _, r := range records {
		contrib, ok := out[r.Season]
		if !ok {
			continue
		}
		key := models.StackKey{Mode: r.Mode, Gender: r.Gender}
		if _, ok := contrib[key]; ok {
			contrib[key] = r.MeanDays
		}
	}
	return out
}

// GenderTotals sums the record means per gender and season.
func GenderTotals(records []models.LongRecord) map[models.Gender]map[models.Season]float64 {
	out := make(map[models.Gender]map[models.Season]float64, len(models.Genders()))
	for _, gender := range models.Genders() {
		mine := lo.Filter(records, func(r models.LongRecord, _ int) bool {
			return r.Gender == gender
		})
		bySeason := make(map[models.Season]float64, len(models.Seasons()))
		for _, season := range models.Seasons() {
			bySeason[season] = lo.SumBy(mine, func(r models.LongRecord) float64 {
				if r.Season != season {
					return 0
				}
				return r.MeanDays
			})
		}
		out[gender] = bySeason
	}
	return out
}
