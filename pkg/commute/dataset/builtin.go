// Package dataset holds the compiled-in commuting survey.
package dataset

import "github.com/ukaji3/commuteplot-go/pkg/commute/models"

// FrequencyBuckets are the commute-days categories of the frequency table.
var FrequencyBuckets = []string{"0 days", "1–2 days", "3–4 days", "5–6 days", "7 days"}

// Builtin returns a fresh copy of the survey data.
func Builtin() models.Survey {
	return models.Survey{
		Frequency:  frequency(),
		ModeShare:  modeShare(),
		ModeDays:   modeDays(),
		GenderDays: genderDays(),
	}
}

func frequency() models.PercentTable {
	return models.PercentTable{
		Label:      "Commute Days",
		Categories: append([]string(nil), FrequencyBuckets...),
		Columns: []models.PercentColumn{
			{Name: string(models.SeasonFall), Values: []float64{0, 0, 27.27, 72.73, 0}},
			{Name: string(models.SeasonSpring), Values: []float64{9.09, 9.09, 9.09, 63.64, 0}},
			{Name: string(models.SeasonSummer), Values: []float64{18.18, 27.27, 27.27, 27.27, 0}},
		},
	}
}

// modeShare is multi-select: a respondent may report several modes, so the
// columns do not total 100.
func modeShare() models.PercentTable {
	return models.PercentTable{
		Label: "Semesters",
		Categories: []string{
			string(models.SeasonFall),
			string(models.SeasonSpring),
			string(models.SeasonSummer),
		},
		Columns: []models.PercentColumn{
			{Name: string(models.ModeWalking), Values: []float64{54.55, 0.00, 9.09}},
			{Name: string(models.ModeBike), Values: []float64{0.00, 9.09, 18.18}},
			{Name: string(models.ModeBus), Values: []float64{27.27, 18.18, 0.00}},
			{Name: string(models.ModeCar), Values: []float64{72.73, 9.09, 0.00}},
		},
	}
}

func modeDays() models.ModeObservations {
	return models.ModeObservations{
		models.ModeWalking: {
			models.SeasonFall:   {0, 5.5, 0, 0, 0, 5.5, 5.5, 0, 0, 5.5, 3.5},
			models.SeasonSpring: {0, 5.5, 0, 0, 0, 5.5, 5.5, 0, 0, 1.5, 3.5},
			models.SeasonSummer: {0, 0, 1.5, 0, 0, 5.5, 5.5, 0, 0, 3.5, 3.5},
		},
		models.ModeBike: {
			models.SeasonFall:   {0, 0, 1.5, 0, 0, 5.5, 0, 0, 0, 3.5, 3.5},
			models.SeasonSpring: {0, 0, 0, 0, 0, 5.5, 0, 0, 0, 3.5, 3.5},
			models.SeasonSummer: {0, 0, 3.5, 0, 0, 5.5, 0, 0, 0, 7, 3.5},
		},
		models.ModeBus: {
			models.SeasonFall:   {0, 1.5, 3.5, 0, 1.5, 5.5, 0, 0, 3.5, 7, 3.5},
			models.SeasonSpring: {0, 1.5, 7, 0, 1.5, 0, 0, 0, 3.5, 3.5, 3.5},
			models.SeasonSummer: {0, 0, 0, 0, 1.5, 0, 0, 0, 5.5, 7, 3.5},
		},
		models.ModeCar: {
			models.SeasonFall:   {5.5, 0, 0, 5.5, 5.5, 5.5, 5.5, 0, 5.5, 0, 3.5},
			models.SeasonSpring: {5.5, 0, 1.5, 5.5, 5.5, 5.5, 5.5, 0, 5.5, 0, 3.5},
			models.SeasonSummer: {3.5, 0, 0, 3.5, 5.5, 3.5, 0, 0, 5.5, 0, 3.5},
		},
	}
}

func genderDays() models.GenderObservations {
	return models.GenderObservations{
		models.ModeWalking: {
			models.GenderMale: {
				models.SeasonFall:   {0, 5.5, 0, 0},
				models.SeasonSpring: {0, 1.5, 3.5, 5.5},
				models.SeasonSummer: {0, 3.5, 5.5, 0},
			},
			models.GenderFemale: {
				models.SeasonFall:   {0, 0, 3.5, 5.5, 5.5, 0},
				models.SeasonSpring: {0, 0, 3.5, 5.5, 5.5, 1.5},
				models.SeasonSummer: {0, 0, 3.5, 3.5, 5.5, 5.5},
			},
		},
		models.ModeBike: {
			models.GenderMale: {
				models.SeasonFall:   {0, 1.5, 0, 0},
				models.SeasonSpring: {0, 0, 0, 5.5},
				models.SeasonSummer: {0, 0, 3.5, 0},
			},
			models.GenderFemale: {
				models.SeasonFall:   {0, 3.5, 3.5, 5.5},
				models.SeasonSpring: {0, 3.5, 3.5, 0},
				models.SeasonSummer: {0, 3.5, 7, 0},
			},
		},
		models.ModeBus: {
			models.GenderMale: {
				models.SeasonFall:   {1.5, 3.5, 5.5, 7},
				models.SeasonSpring: {1.5, 3.5, 5.5, 0},
				models.SeasonSummer: {0, 0, 0, 0},
			},
			models.GenderFemale: {
				models.SeasonFall:   {0, 1.5, 3.5, 0},
				models.SeasonSpring: {0, 1.5, 3.5, 0},
				models.SeasonSummer: {0, 1.5, 3.5, 5.5},
			},
		},
		models.ModeCar: {
			models.GenderMale: {
				models.SeasonFall:   {0, 1.5, 5.5, 5.5},
				models.SeasonSpring: {0, 1.5, 5.5, 5.5},
				models.SeasonSummer: {0, 1.5, 3.5, 5.5},
			},
			models.GenderFemale: {
				models.SeasonFall:   {0, 0, 3.5, 5.5, 5.5, 5.5},
				models.SeasonSpring: {0, 0, 3.5, 5.5, 5.5, 5.5},
				models.SeasonSummer: {0, 0, 1.5, 1.5, 3.5, 3.5, 5.5},
			},
		},
	}
}
