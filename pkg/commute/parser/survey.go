package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

var (
	// ErrMissingSheet indicates a required observation sheet is absent.
	ErrMissingSheet = errors.New("missing sheet")
	// ErrMissingColumn indicates a required header is absent.
	ErrMissingColumn = errors.New("missing column")
	// ErrUnknownLabel indicates a mode, gender or season label that is not recognized.
	ErrUnknownLabel = errors.New("unknown label")
	// ErrNotNumeric indicates a day count cell that is not a number.
	ErrNotNumeric = errors.New("not a number")
)

// ParseError locates a problem in a survey workbook.
type ParseError struct {
	Sheet string
	// Cell is the cell reference (e.g. "C4"); empty for sheet-level errors.
	Cell  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Cell == "" {
		return fmt.Sprintf("parse error in sheet %q: %v", e.Sheet, e.Err)
	}
	return fmt.Sprintf("parse error in sheet %q at %s (%q): %v", e.Sheet, e.Cell, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadSurvey reads the raw observation sheets of the workbook at path and
// returns base with its observation sets replaced. Percent tables are kept
// from base.
func LoadSurvey(path string, base models.Survey) (models.Survey, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return base, err
	}
	defer f.Close()

	modeDays := make(models.ModeObservations)
	err = readObservationSheet(f, models.SheetObservations, false, func(m models.Mode, _ models.Gender, s models.Season, v float64) {
		if modeDays[m] == nil {
			modeDays[m] = make(map[models.Season]models.Observations)
		}
		modeDays[m][s] = append(modeDays[m][s], v)
	})
	if err != nil {
		return base, err
	}

	genderDays := make(models.GenderObservations)
	err = readObservationSheet(f, models.SheetGenderObservations, true, func(m models.Mode, g models.Gender, s models.Season, v float64) {
		if genderDays[m] == nil {
			genderDays[m] = make(map[models.Gender]map[models.Season]models.Observations)
		}
		if genderDays[m][g] == nil {
			genderDays[m][g] = make(map[models.Season]models.Observations)
		}
		genderDays[m][g][s] = append(genderDays[m][g][s], v)
	})
	if err != nil {
		return base, err
	}

	base.ModeDays = modeDays
	base.GenderDays = genderDays
	return base, nil
}

// observationFunc receives one parsed response. gender is empty for sheets
// without a gender column.
type observationFunc func(mode models.Mode, gender models.Gender, season models.Season, days float64)

// readObservationSheet reads one response per row below the header row. The
// table may start anywhere in the sheet; fully empty rows are skipped.
func readObservationSheet(f *excelize.File, sheet string, withGender bool, emit observationFunc) error {
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		return &ParseError{Sheet: sheet, Err: ErrMissingSheet}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}

	minRow, maxRow, minCol, _ := findDataBounds(rows)
	if minRow < 0 {
		return &ParseError{Sheet: sheet, Err: fmt.Errorf("%w: %s", ErrMissingColumn, models.ColumnMode)}
	}

	required := []string{models.ColumnMode, models.ColumnSeason, models.ColumnDays}
	if withGender {
		required = append(required, models.ColumnGender)
	}
	columns := headerColumns(rows[minRow], minCol)
	for _, name := range required {
		if _, ok := columns[strings.ToLower(name)]; !ok {
			return &ParseError{Sheet: sheet, Err: fmt.Errorf("%w: %s", ErrMissingColumn, name)}
		}
	}

	for r := minRow + 1; r <= maxRow; r++ {
		row := rows[r]
		if lo.EveryBy(row, func(c string) bool { return strings.TrimSpace(c) == "" }) {
			continue
		}
		cell := func(name string) (string, string) {
			col := columns[strings.ToLower(name)]
			ref, _ := excelize.CoordinatesToCellName(col+1, r+1)
			if col < len(row) {
				return strings.TrimSpace(row[col]), ref
			}
			return "", ref
		}

		modeValue, modeRef := cell(models.ColumnMode)
		mode, ok := lo.Find(models.Modes(), func(m models.Mode) bool { return string(m) == modeValue })
		if !ok {
			return &ParseError{Sheet: sheet, Cell: modeRef, Value: modeValue, Err: ErrUnknownLabel}
		}

		seasonValue, seasonRef := cell(models.ColumnSeason)
		season, ok := lo.Find(models.Seasons(), func(s models.Season) bool { return string(s) == seasonValue })
		if !ok {
			return &ParseError{Sheet: sheet, Cell: seasonRef, Value: seasonValue, Err: ErrUnknownLabel}
		}

		var gender models.Gender
		if withGender {
			genderValue, genderRef := cell(models.ColumnGender)
			gender, ok = lo.Find(models.Genders(), func(g models.Gender) bool { return string(g) == genderValue })
			if !ok {
				return &ParseError{Sheet: sheet, Cell: genderRef, Value: genderValue, Err: ErrUnknownLabel}
			}
		}

		daysValue, daysRef := cell(models.ColumnDays)
		days, ok := parseNumber(daysValue)
		if !ok {
			return &ParseError{Sheet: sheet, Cell: daysRef, Value: daysValue, Err: ErrNotNumeric}
		}

		emit(mode, gender, season, days)
	}
	return nil
}

// headerColumns maps lower-cased header names to their 0-based column.
func headerColumns(header []string, minCol int) map[string]int {
	columns := make(map[string]int)
	for c := minCol; c < len(header); c++ {
		if name := strings.ToLower(strings.TrimSpace(header[c])); name != "" {
			columns[name] = c
		}
	}
	return columns
}

// parseNumber parses an integer or decimal cell value.
func parseNumber(s string) (float64, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return 0, false
}

// findDataBounds finds the bounding box of non-empty cells. All bounds are
// -1 when the sheet is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for r, row := range rows {
		for c, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if minRow < 0 {
				minRow = r
			}
			maxRow = r
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}
	return
}
