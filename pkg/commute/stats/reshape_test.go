package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

func sampleGenderObservations() models.GenderObservations {
	return models.GenderObservations{
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
		models.ModeWalking: {
			models.GenderFemale: {
				models.SeasonFall: {0, 0, 3.5, 5.5, 5.5, 0},
				// Spring and Summer intentionally missing.
			},
		},
	}
}

func TestReshapeOrdering(t *testing.T) {
	records, err := Reshape(sampleGenderObservations())
	require.NoError(t, err)

	type key struct {
		mode   models.Mode
		gender models.Gender
		season models.Season
	}
	var got []key
	for _, r := range records {
		got = append(got, key{r.Mode, r.Gender, r.Season})
	}

	expected := []key{
		{models.ModeWalking, models.GenderFemale, models.SeasonFall},
		{models.ModeWalking, models.GenderFemale, models.SeasonSpring},
		{models.ModeWalking, models.GenderFemale, models.SeasonSummer},
		{models.ModeBus, models.GenderMale, models.SeasonFall},
		{models.ModeBus, models.GenderMale, models.SeasonSpring},
		{models.ModeBus, models.GenderMale, models.SeasonSummer},
		{models.ModeBus, models.GenderFemale, models.SeasonFall},
		{models.ModeBus, models.GenderFemale, models.SeasonSpring},
		{models.ModeBus, models.GenderFemale, models.SeasonSummer},
	}
	assert.Equal(t, expected, got)
}

func TestReshapeBusMaleSummer(t *testing.T) {
	records, err := Reshape(sampleGenderObservations())
	require.NoError(t, err)

	for _, r := range records {
		if r.Mode == models.ModeBus && r.Gender == models.GenderMale && r.Season == models.SeasonSummer {
			assert.Equal(t, models.LongRecord{
				Mode:     models.ModeBus,
				Gender:   models.GenderMale,
				Season:   models.SeasonSummer,
				MeanDays: 0,
			}, r)
			return
		}
	}
	t.Fatal("Bus/Shuttle Male Summer record not found")
}

func TestReshapeMissingSeasonZeroFills(t *testing.T) {
	records, err := Reshape(sampleGenderObservations())
	require.NoError(t, err)

	assert.InDelta(t, 14.5/6, records[0].MeanDays, 1e-12)
	assert.Equal(t, 0.0, records[1].MeanDays)
	assert.Equal(t, 0.0, records[2].MeanDays)
}

func TestReshapeIsDeterministic(t *testing.T) {
	data := sampleGenderObservations()
	first, err := Reshape(data)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Reshape(data)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestReshapeMatchesIndependentMean(t *testing.T) {
	data := sampleGenderObservations()
	records, err := Reshape(data)
	require.NoError(t, err)

	for _, r := range records {
		src := data[r.Mode][r.Gender][r.Season]
		assert.Equal(t, Mean(src), r.MeanDays, "%s/%s/%s", r.Mode, r.Gender, r.Season)
	}
}

func TestReshapeRejectsInvalid(t *testing.T) {
	data := models.GenderObservations{
		models.ModeCar: {
			models.GenderMale: {models.SeasonSpring: {0, 9}},
		},
	}
	_, err := Reshape(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidObservation)
	assert.Contains(t, err.Error(), "Private Car_Male/Spring[1]")
}

func TestStackContributionsZeroFillsMissingPairs(t *testing.T) {
	records, err := Reshape(sampleGenderObservations())
	require.NoError(t, err)

	contrib := StackContributions(records)
	require.Len(t, contrib, 3)

	for _, season := range models.Seasons() {
		assert.Len(t, contrib[season], len(models.StackKeys()))
	}

	walkingMale := models.StackKey{Mode: models.ModeWalking, Gender: models.GenderMale}
	assert.Equal(t, 0.0, contrib[models.SeasonFall][walkingMale])

	busMale := models.StackKey{Mode: models.ModeBus, Gender: models.GenderMale}
	assert.InDelta(t, 4.375, contrib[models.SeasonFall][busMale], 1e-12)
}

func TestGenderTotals(t *testing.T) {
	records := []models.LongRecord{
		{Mode: models.ModeWalking, Gender: models.GenderMale, Season: models.SeasonFall, MeanDays: 1.5},
		{Mode: models.ModeBus, Gender: models.GenderMale, Season: models.SeasonFall, MeanDays: 2},
		{Mode: models.ModeBus, Gender: models.GenderFemale, Season: models.SeasonSummer, MeanDays: 3},
	}

	totals := GenderTotals(records)
	assert.Equal(t, 3.5, totals[models.GenderMale][models.SeasonFall])
	assert.Equal(t, 0.0, totals[models.GenderMale][models.SeasonSpring])
	assert.Equal(t, 3.0, totals[models.GenderFemale][models.SeasonSummer])
	assert.Equal(t, 0.0, totals[models.GenderFemale][models.SeasonFall])
}

func TestStackKeyString(t *testing.T) {
	assert.Equal(t, "Bike/Scooter/Skateboard-Female",
		models.StackKey{Mode: models.ModeBike, Gender: models.GenderFemale}.String())
	assert.Len(t, models.StackKeys(), 8)
}
