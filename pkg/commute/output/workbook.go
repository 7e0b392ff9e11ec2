package output

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

// ChartSheet is one stage sheet of the workbook report.
type ChartSheet struct {
	// Name is the sheet name. It must be a valid unquoted sheet reference.
	Name string
	Spec models.ChartSpec
}

// Native chart size in pixels.
const (
	chartWidth  = 720
	chartHeight = 420
)

// WriteWorkbook writes an Excel report to path: one sheet per chart holding
// the chart's table and a native column chart, followed by the raw
// observation sheets of survey.
func WriteWorkbook(path string, sheets []ChartSheet, survey models.Survey) error {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	for _, cs := range sheets {
		if _, err := f.NewSheet(cs.Name); err != nil {
			return err
		}
		if err := writeChartSheet(f, cs); err != nil {
			return fmt.Errorf("sheet %s: %w", cs.Name, err)
		}
	}
	if err := writeModeObservations(f, survey.ModeDays); err != nil {
		return fmt.Errorf("sheet %s: %w", models.SheetObservations, err)
	}
	if err := writeGenderObservations(f, survey.GenderDays); err != nil {
		return fmt.Errorf("sheet %s: %w", models.SheetGenderObservations, err)
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return err
	}
	f.SetActiveSheet(0)

	return f.SaveAs(path)
}

// cellRef returns an absolute reference such as Frequency!$B$2:$B$7.
func cellRef(sheet string, col, fromRow, toRow int) string {
	name, _ := excelize.ColumnNumberToName(col)
	if fromRow == toRow {
		return fmt.Sprintf("%s!$%s$%d", sheet, name, fromRow)
	}
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", sheet, name, fromRow, name, toRow)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeChartSheet(f *excelize.File, cs ChartSheet) error {
	spec := cs.Spec

	header := append([]any{spec.XLabel}, lo.Map(spec.Series, func(s models.SeriesSpec, _ int) any { return s.Name })...)
	if err := writeRow(f, cs.Name, 1, header); err != nil {
		return err
	}
	for i, cat := range spec.Categories {
		row := []any{cat}
		for _, s := range spec.Series {
			row = append(row, s.Values[i])
		}
		if err := writeRow(f, cs.Name, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(cs.Name, "A", "A", 24); err != nil {
		return err
	}

	lastRow := len(spec.Categories) + 1
	chart := &excelize.Chart{
		Type:      excelize.Col,
		Title:     []excelize.RichTextRun{{Text: spec.Title}},
		Legend:    excelize.ChartLegend{Position: "right"},
		PlotArea:  excelize.ChartPlotArea{ShowVal: true},
		XAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: spec.XLabel}}},
		YAxis:     excelize.ChartAxis{MajorGridLines: true, Title: []excelize.RichTextRun{{Text: spec.YLabel}}},
		Dimension: excelize.ChartDimension{Width: chartWidth, Height: chartHeight},
	}
	if spec.Kind == models.ChartStacked {
		chart.Type = excelize.ColStacked
	}
	if len(spec.YRange) == 2 {
		min, max := spec.YRange[0], spec.YRange[1]
		chart.YAxis.Minimum = &min
		chart.YAxis.Maximum = &max
	}
	for i, s := range spec.Series {
		col := i + 2
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       cellRef(cs.Name, col, 1, 1),
			Categories: cellRef(cs.Name, 1, 2, lastRow),
			Values:     cellRef(cs.Name, col, 2, lastRow),
			Fill:       excelize.Fill{Type: "pattern", Color: []string{"#" + s.Color}, Pattern: 1},
		})
	}

	anchor, err := excelize.CoordinatesToCellName(len(spec.Series)+3, 1)
	if err != nil {
		return err
	}
	return f.AddChart(cs.Name, anchor, chart)
}

func writeModeObservations(f *excelize.File, obs models.ModeObservations) error {
	sheet := models.SheetObservations
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeRow(f, sheet, 1, []any{models.ColumnMode, models.ColumnSeason, models.ColumnDays}); err != nil {
		return err
	}
	row := 2
	for _, m := range models.Modes() {
		for _, s := range models.Seasons() {
			for _, v := range obs[m][s] {
				if err := writeRow(f, sheet, row, []any{string(m), string(s), v}); err != nil {
					return err
				}
				row++
			}
		}
	}
	return f.SetColWidth(sheet, "A", "A", 24)
}

func writeGenderObservations(f *excelize.File, obs models.GenderObservations) error {
	sheet := models.SheetGenderObservations
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []any{models.ColumnMode, models.ColumnGender, models.ColumnSeason, models.ColumnDays}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	row := 2
	for _, m := range models.Modes() {
		for _, g := range models.Genders() {
			for _, s := range models.Seasons() {
				for _, v := range obs[m][g][s] {
					if err := writeRow(f, sheet, row, []any{string(m), string(g), string(s), v}); err != nil {
						return err
					}
					row++
				}
			}
		}
	}
	return f.SetColWidth(sheet, "A", "A", 24)
}
