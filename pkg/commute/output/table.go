package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/samber/lo"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

// floatFormat is used for float columns in console tables.
const floatFormat = "%.2f"

// MeanFrame lays the mean table out with one row per mode and one column per
// season. Missing cells are 0.
func MeanFrame(means models.MeanTable) dataframe.DataFrame {
	modes := models.Modes()
	cols := []series.Series{
		series.New(lo.Map(modes, func(m models.Mode, _ int) string { return string(m) }), series.String, "Mode"),
	}
	for _, s := range models.Seasons() {
		values := lo.Map(modes, func(m models.Mode, _ int) float64 { return means.Get(m, s) })
		cols = append(cols, series.New(values, series.Float, string(s)))
	}
	return dataframe.New(cols...)
}

// LongFrame lays long-format records out one per row, in record order.
func LongFrame(records []models.LongRecord) dataframe.DataFrame {
	return dataframe.New(
		series.New(lo.Map(records, func(r models.LongRecord, _ int) string { return string(r.Mode) }), series.String, "Mode"),
		series.New(lo.Map(records, func(r models.LongRecord, _ int) string { return string(r.Gender) }), series.String, "Gender"),
		series.New(lo.Map(records, func(r models.LongRecord, _ int) string { return string(r.Season) }), series.String, "Season"),
		series.New(lo.Map(records, func(r models.LongRecord, _ int) float64 { return r.MeanDays }), series.Float, "MeanDays"),
	)
}

// WriteFrame prints every row of df as an aligned text table. Unlike
// DataFrame.String it never truncates.
func WriteFrame(w io.Writer, title string, df dataframe.DataFrame) error {
	if df.Err != nil {
		return df.Err
	}

	names := df.Names()
	cells := make([][]string, df.Nrow())
	for i := range cells {
		cells[i] = make([]string, len(names))
	}
	for j, name := range names {
		col := df.Col(name)
		var values []string
		if col.Type() == series.Float {
			values = lo.Map(col.Float(), func(v float64, _ int) string { return fmt.Sprintf(floatFormat, v) })
		} else {
			values = col.Records()
		}
		for i, v := range values {
			cells[i][j] = v
		}
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(names, "\t"))
	for _, row := range cells {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// WriteMeanTable prints the mode/season mean table.
func WriteMeanTable(w io.Writer, means models.MeanTable) error {
	return WriteFrame(w, "Mean weekly commuting days by mode and season:", MeanFrame(means))
}

// WriteLongTable prints the long-format records.
func WriteLongTable(w io.Writer, records []models.LongRecord) error {
	return WriteFrame(w, "Long-format mean weekly days by mode, gender and season:", LongFrame(records))
}
