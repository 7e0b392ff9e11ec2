package models

// ChartKind selects how series are laid out.
type ChartKind string

const (
	// ChartGrouped places series side by side within each category.
	ChartGrouped ChartKind = "grouped"
	// ChartStacked stacks series on top of each other within each category.
	ChartStacked ChartKind = "stacked"
)

// LegendPlacement selects where the legend is drawn.
type LegendPlacement string

const (
	// LegendInside draws the legend in the upper right of the plot area.
	LegendInside LegendPlacement = "inside"
	// LegendOutside draws the legend to the right of the plot area.
	LegendOutside LegendPlacement = "outside"
)

// SeriesSpec is one colored series of a chart.
type SeriesSpec struct {
	// Name is the legend label.
	Name string `json:"name"`
	// Color is a hex color without the leading '#'.
	Color string `json:"color"`
	// Values holds one value per category.
	Values []float64 `json:"values"`
}

// ChartSpec fully describes a bar chart. Building a spec has no side effects;
// rendering it is the only step that touches the filesystem.
type ChartSpec struct {
	// FileName is the PNG file name written by the renderer.
	FileName string `json:"file_name"`
	// Kind is grouped or stacked.
	Kind ChartKind `json:"kind"`
	// Title is drawn only when ShowTitle is set.
	Title     string `json:"title,omitempty"`
	ShowTitle bool   `json:"show_title"`
	// XLabel and YLabel are the axis names.
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`
	// Categories are the x-axis groups.
	Categories []string `json:"categories"`
	// Series are drawn in order (left to right, or bottom to top when stacked).
	Series []SeriesSpec `json:"series"`
	// YRange is the fixed [min, max] of the value axis; nil selects an
	// automatic range from the data.
	YRange []float64 `json:"y_range,omitempty"`
	// BarWidth is the width of one bar as a fraction of a category slot.
	BarWidth float64 `json:"bar_width"`
	// ValueFormat formats bar labels (e.g. "%.1f%%").
	ValueFormat string `json:"value_format"`
	// TickFormat formats y tick labels (e.g. "%.0f%%").
	TickFormat string `json:"tick_format"`
	// LegendTitle is drawn above the legend entries when set.
	LegendTitle string          `json:"legend_title,omitempty"`
	Legend      LegendPlacement `json:"legend"`
	// Annotation is a multi-line note drawn in the upper right of the plot area.
	Annotation string `json:"annotation,omitempty"`
	// WidthIn and HeightIn are the figure size in inches.
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

// WorkbookChartSeries represents series metadata for a chart embedded in a workbook.
type WorkbookChartSeries struct {
	// Name is the series display name.
	Name string `json:"name,omitempty"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for category values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for series values.
	YRange string `json:"y_range,omitempty"`
}

// WorkbookChart represents chart metadata read back from a workbook.
type WorkbookChart struct {
	// Sheet is the sheet owning the chart.
	Sheet string `json:"sheet"`
	// Name is the drawing object name.
	Name string `json:"name"`
	// ChartType is the chart type (e.g., Bar, Line).
	ChartType string `json:"chart_type"`
	// Grouping is the bar grouping (clustered, stacked) when present.
	Grouping string `json:"grouping,omitempty"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// YAxisRange is the value axis range [min, max] when available.
	YAxisRange []float64 `json:"y_axis_range,omitempty"`
	// Series is the list of series included in the chart.
	Series []WorkbookChartSeries `json:"series"`
	// L and T are the offsets in pixels.
	L int `json:"l"`
	T int `json:"t"`
	// W and H are the size in pixels.
	W int `json:"w"`
	H int `json:"h"`
}
