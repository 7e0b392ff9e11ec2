// Package models defines data structures for the commuting survey, its
// aggregates and the chart specifications built from them.
package models

// Season is a survey period bucket.
type Season string

const (
	SeasonFall   Season = "Fall"
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
)

// Seasons returns the seasons in canonical order.
func Seasons() []Season {
	return []Season{SeasonFall, SeasonSpring, SeasonSummer}
}

// Mode is a transportation method.
type Mode string

const (
	ModeWalking Mode = "Walking"
	ModeBike    Mode = "Bike/Scooter/Skateboard"
	ModeBus     Mode = "Bus/Shuttle"
	ModeCar     Mode = "Private Car"
)

// Modes returns the transportation modes in canonical order.
func Modes() []Mode {
	return []Mode{ModeWalking, ModeBike, ModeBus, ModeCar}
}

// Gender is the respondent gender used for the stacked breakdown.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders returns the genders in canonical order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// Observations is an ordered sequence of weekly day counts reported by
// respondents. Lengths vary per group.
type Observations []float64

// ModeObservations maps mode -> season -> raw observations.
type ModeObservations map[Mode]map[Season]Observations

// GenderObservations maps mode -> gender -> season -> raw observations.
// A (mode, gender) pair may be absent entirely.
type GenderObservations map[Mode]map[Gender]map[Season]Observations

// PercentColumn is one named column of a percent table.
type PercentColumn struct {
	// Name is the column (series) name.
	Name string `json:"name"`
	// Values holds one percentage per category.
	Values []float64 `json:"values"`
}

// PercentTable is a precomputed percentage table: ordered categories with
// one value per category in every column.
type PercentTable struct {
	// Label describes the categories (e.g. "Commute Days").
	Label string `json:"label"`
	// Categories are the row labels, in display order.
	Categories []string `json:"categories"`
	// Columns are the series, in display order.
	Columns []PercentColumn `json:"columns"`
}

// Survey bundles every dataset the pipeline consumes.
type Survey struct {
	Frequency  PercentTable
	ModeShare  PercentTable
	ModeDays   ModeObservations
	GenderDays GenderObservations
}

// Raw observation sheets of an exported or imported survey workbook. Each
// sheet holds one response per row below a header row.
const (
	SheetObservations       = "Observations"
	SheetGenderObservations = "GenderObservations"
)

// Column headers of the raw observation sheets.
const (
	ColumnMode   = "Mode"
	ColumnGender = "Gender"
	ColumnSeason = "Season"
	ColumnDays   = "Days"
)
