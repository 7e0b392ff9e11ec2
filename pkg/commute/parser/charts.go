package parser

import (
	"archive/zip"
	"encoding/xml"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

// ChartTypeMap maps OOXML plot element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// chartFrame is a chart anchored in a drawing part.
type chartFrame struct {
	relID  string
	name   string
	left   int
	top    int
	width  int
	height int
}

// ExtractCharts lists the charts embedded in an xlsx file, ordered by sheet
// (in workbook order) and then by drawing object name. Chart parts that
// cannot be read are skipped.
func ExtractCharts(xlsxPath string) ([]models.WorkbookChart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheets, err := workbookSheets(&r.Reader)
	if err != nil {
		return nil, err
	}

	var result []models.WorkbookChart
	for _, sheet := range sheets {
		charts, err := sheetCharts(&r.Reader, sheet)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(charts, func(i, j int) bool { return charts[i].Name < charts[j].Name })
		result = append(result, charts...)
	}
	return result, nil
}

// sheetCharts returns the charts of the drawing attached to sheet.
func sheetCharts(r *zip.Reader, sheet sheetRef) ([]models.WorkbookChart, error) {
	sheetRels, err := readZipFile(r, relsPath(sheet.Part))
	if err != nil || sheetRels == nil {
		return nil, err
	}

	var charts []models.WorkbookChart
	for _, drawingRel := range relationshipsOfType(parseRelationships(sheetRels), "drawing") {
		drawingPart := resolveRelativePath(drawingRel.Target, path.Dir(sheet.Part))
		drawingXML, err := readZipFile(r, drawingPart)
		if err != nil {
			return nil, err
		}
		drawingRels, err := readZipFile(r, relsPath(drawingPart))
		if err != nil {
			return nil, err
		}
		if drawingXML == nil || drawingRels == nil {
			continue
		}

		targets := make(map[string]string)
		for _, rel := range relationshipsOfType(parseRelationships(drawingRels), "chart") {
			targets[rel.ID] = resolveRelativePath(rel.Target, path.Dir(drawingPart))
		}

		for _, frame := range parseDrawingFrames(drawingXML) {
			part, ok := targets[frame.relID]
			if !ok {
				continue
			}
			chartXML, err := readZipFile(r, part)
			if err != nil || chartXML == nil {
				continue
			}
			chart := parseChartXML(chartXML)
			chart.Sheet = sheet.Name
			chart.Name = frame.name
			chart.L, chart.T, chart.W, chart.H = frame.left, frame.top, frame.width, frame.height
			charts = append(charts, chart)
		}
	}
	return charts, nil
}

// parseDrawingFrames finds the chart graphic frames of a drawing part.
func parseDrawingFrames(data []byte) []chartFrame {
	var frames []chartFrame
	walkDocument(data, func(d *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local != "graphicFrame" {
			return false
		}
		var frame chartFrame
		walk(d, func(child xml.StartElement) bool {
			switch child.Name.Local {
			case "cNvPr":
				frame.name = attr(child, "name")
			case "xfrm":
				frame.left, frame.top, frame.width, frame.height = parseXfrm(d)
				return true
			case "chart":
				frame.relID = attr(child, "id")
			}
			return false
		})
		if frame.relID != "" {
			frames = append(frames, frame)
		}
		return true
	})
	return frames
}

// parseChartXML reads the type, titles, value axis and series of a chart part.
func parseChartXML(data []byte) models.WorkbookChart {
	chart := models.WorkbookChart{ChartType: "unknown"}

	walkDocument(data, func(d *xml.Decoder, se xml.StartElement) bool {
		if se.Name.Local != "chart" {
			return false
		}
		walk(d, func(child xml.StartElement) bool {
			switch child.Name.Local {
			case "title":
				chart.Title = parseTitle(d)
				return true
			case "plotArea":
				parsePlotArea(d, &chart)
				return true
			}
			return false
		})
		return true
	})
	return chart
}

// parseTitle joins the text runs of a title element.
func parseTitle(d *xml.Decoder) string {
	var title string
	walk(d, func(se xml.StartElement) bool {
		if se.Name.Local != "t" {
			return false
		}
		title += readElementText(d)
		return true
	})
	return strings.TrimSpace(title)
}

func parsePlotArea(d *xml.Decoder, chart *models.WorkbookChart) {
	walk(d, func(se xml.StartElement) bool {
		if chartType, ok := ChartTypeMap[se.Name.Local]; ok {
			chart.ChartType = chartType
			parsePlot(d, chart)
			return true
		}
		if se.Name.Local == "valAx" {
			parseValueAxis(d, chart)
			return true
		}
		return false
	})
}

// parsePlot reads the grouping and series of one plot element.
func parsePlot(d *xml.Decoder, chart *models.WorkbookChart) {
	walk(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "grouping":
			chart.Grouping = attr(se, "val")
		case "ser":
			chart.Series = append(chart.Series, parseSeries(d))
			return true
		}
		return false
	})
}

func parseSeries(d *xml.Decoder) models.WorkbookChartSeries {
	var s models.WorkbookChartSeries
	walk(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "tx":
			walk(d, func(inner xml.StartElement) bool {
				switch inner.Name.Local {
				case "f":
					s.NameRange = strings.TrimSpace(readElementText(d))
					return true
				case "v":
					s.Name = strings.TrimSpace(readElementText(d))
					return true
				}
				return false
			})
			return true
		case "cat":
			s.XRange = parseFormula(d)
			return true
		case "val":
			s.YRange = parseFormula(d)
			return true
		}
		return false
	})
	return s
}

// parseFormula returns the first range formula below the current element.
func parseFormula(d *xml.Decoder) string {
	var formula string
	walk(d, func(se xml.StartElement) bool {
		if se.Name.Local != "f" || formula != "" {
			return false
		}
		formula = strings.TrimSpace(readElementText(d))
		return true
	})
	return formula
}

func parseValueAxis(d *xml.Decoder, chart *models.WorkbookChart) {
	var min, max *float64
	walk(d, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "title":
			chart.YAxisTitle = parseTitle(d)
			return true
		case "min", "max":
			v, err := strconv.ParseFloat(attr(se, "val"), 64)
			if err != nil {
				return false
			}
			if se.Name.Local == "min" {
				min = &v
			} else {
				max = &v
			}
		}
		return false
	})
	if min != nil && max != nil {
		chart.YAxisRange = []float64{*min, *max}
	}
}
