// Package render draws chart specifications to PNG with the go-chart raster
// renderer.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

// DefaultDPI matches print-quality output.
const DefaultDPI = 300

// Font sizes in points.
const (
	titleSize      = 20
	axisLabelSize  = 18
	tickSize       = 16
	valueSize      = 14
	legendSize     = 14
	annotationSize = 12
)

// barAlpha is the bar fill opacity (0.8).
const barAlpha = 204

// ErrInvalidSpec indicates a spec that cannot be drawn.
var ErrInvalidSpec = errors.New("invalid chart spec")

var (
	colorGrid       = drawing.ColorFromHex("B0B0B0")
	colorAxis       = drawing.ColorFromHex("333333")
	colorLegendEdge = drawing.ColorFromHex("CCCCCC")
	colorAnnotation = drawing.ColorFromHex("ADD8E6").WithAlpha(barAlpha)
)

// canvas bundles the renderer with the figure geometry.
type canvas struct {
	r    chart.Renderer
	font *truetype.Font
	dpi  float64
}

// px converts points to pixels at the canvas DPI.
func (c *canvas) px(pt float64) int {
	return int(math.Round(pt * c.dpi / 72))
}

func (c *canvas) setFont(size float64, color drawing.Color) {
	c.r.SetFont(c.font)
	c.r.SetFontSize(size)
	c.r.SetFontColor(color)
}

func (c *canvas) measure(body string, size float64) chart.Box {
	c.setFont(size, drawing.ColorBlack)
	return c.r.MeasureText(body)
}

func (c *canvas) fillBox(b chart.Box, fill, stroke drawing.Color) {
	c.r.ResetStyle()
	c.r.SetFillColor(fill)
	c.r.SetStrokeColor(stroke)
	c.r.SetStrokeWidth(1)
	c.r.MoveTo(b.Left, b.Top)
	c.r.LineTo(b.Right, b.Top)
	c.r.LineTo(b.Right, b.Bottom)
	c.r.LineTo(b.Left, b.Bottom)
	c.r.LineTo(b.Left, b.Top)
	c.r.Close()
	c.r.FillStroke()
}

func (c *canvas) line(x0, y0, x1, y1 int, color drawing.Color, width float64, dash []float64) {
	c.r.ResetStyle()
	c.r.SetStrokeColor(color)
	c.r.SetStrokeWidth(width)
	if len(dash) > 0 {
		c.r.SetStrokeDashArray(dash)
	}
	c.r.MoveTo(x0, y0)
	c.r.LineTo(x1, y1)
	c.r.Stroke()
}

// Validate checks that spec has everything the renderer needs.
func Validate(spec models.ChartSpec) error {
	switch {
	case spec.FileName == "":
		return fmt.Errorf("%w: missing file name", ErrInvalidSpec)
	case spec.Kind != models.ChartGrouped && spec.Kind != models.ChartStacked:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSpec, spec.Kind)
	case len(spec.Categories) == 0:
		return fmt.Errorf("%w: %s has no categories", ErrInvalidSpec, spec.FileName)
	case spec.WidthIn <= 0 || spec.HeightIn <= 0:
		return fmt.Errorf("%w: %s has no figure size", ErrInvalidSpec, spec.FileName)
	}
	for _, s := range spec.Series {
		if len(s.Values) != len(spec.Categories) {
			return fmt.Errorf("%w: series %q has %d values for %d categories",
				ErrInvalidSpec, s.Name, len(s.Values), len(spec.Categories))
		}
	}
	return nil
}

// PixelSize returns the image size for spec at dpi.
func PixelSize(spec models.ChartSpec, dpi float64) (int, int) {
	return int(math.Round(spec.WidthIn * dpi)), int(math.Round(spec.HeightIn * dpi))
}

// Render draws spec as a PNG to w.
func Render(spec models.ChartSpec, w io.Writer, dpi float64) error {
	if err := Validate(spec); err != nil {
		return err
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	width, height := PixelSize(spec, dpi)
	r, err := chart.PNG(width, height)
	if err != nil {
		return err
	}
	r.SetDPI(dpi)

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	c := &canvas{r: r, font: font, dpi: dpi}

	c.fillBox(chart.Box{Right: width, Bottom: height}, drawing.ColorWhite, drawing.ColorWhite)

	min, max := valueRange(spec)
	tickValues := ticks(min, max)
	plot := c.plotArea(spec, width, height, tickValues)

	c.drawGrid(spec, plot, min, max, tickValues)
	bars := layoutBars(spec, plot, min, max)
	c.drawBars(spec, bars, min, max, plot)
	c.drawAxes(spec, plot)
	c.drawLegend(spec, plot)
	c.drawAnnotation(spec, plot)
	if spec.ShowTitle && spec.Title != "" {
		tb := c.measure(spec.Title, titleSize)
		c.setFont(titleSize, colorAxis)
		r.Text(spec.Title, (width-tb.Width())/2, c.px(8)+tb.Height())
	}

	return r.Save(w)
}

// SaveFile renders spec to dir/spec.FileName and returns the path written.
func SaveFile(spec models.ChartSpec, dir string, dpi float64) (string, error) {
	path := filepath.Join(dir, spec.FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Render(spec, f, dpi); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// plotArea reserves room for the title, axis names, tick labels and an
// outside legend.
func (c *canvas) plotArea(spec models.ChartSpec, width, height int, tickValues []float64) chart.Box {
	pad := c.px(10)

	top := pad * 2
	if spec.ShowTitle && spec.Title != "" {
		top += c.measure(spec.Title, titleSize).Height() + pad
	}

	var tickWidth int
	for _, v := range tickValues {
		if w := c.measure(fmt.Sprintf(spec.TickFormat, v), tickSize).Width(); w > tickWidth {
			tickWidth = w
		}
	}
	yName := c.measure(spec.YLabel, axisLabelSize).Height()
	left := pad + yName + pad + tickWidth + pad

	xTicks := c.measure("Xg", tickSize).Height()
	xName := c.measure(spec.XLabel, axisLabelSize).Height()
	bottom := height - (pad + xTicks + pad + xName + pad)

	right := width - pad*2
	if spec.Legend == models.LegendOutside {
		right -= c.legendSize(spec).Width() + pad*2
	}

	return chart.Box{Top: top, Left: left, Right: right, Bottom: bottom}
}

func (c *canvas) drawGrid(spec models.ChartSpec, plot chart.Box, min, max float64, tickValues []float64) {
	dash := []float64{float64(c.px(4)), float64(c.px(3))}
	for _, v := range tickValues {
		y := yPixel(v, min, max, plot)
		c.line(plot.Left, y, plot.Right, y, colorGrid.WithAlpha(77), float64(c.px(0.8)), dash)

		label := fmt.Sprintf(spec.TickFormat, v)
		tb := c.measure(label, tickSize)
		c.setFont(tickSize, colorAxis)
		c.r.Text(label, plot.Left-c.px(6)-tb.Width(), y+tb.Height()/2)
	}
}

func (c *canvas) drawBars(spec models.ChartSpec, bars []bar, min, max float64, plot chart.Box) {
	offset := (max - min) * 0.01
	for _, b := range bars {
		fill := drawing.ColorFromHex(spec.Series[b.Series].Color).WithAlpha(barAlpha)
		c.fillBox(b.Box, fill, fill)

		if b.Value <= 0 {
			continue
		}
		label := fmt.Sprintf(spec.ValueFormat, b.Value)
		tb := c.measure(label, valueSize)
		cx := (b.Box.Left + b.Box.Right) / 2
		c.setFont(valueSize, drawing.ColorBlack)
		if spec.Kind == models.ChartStacked {
			cy := (b.Box.Top + b.Box.Bottom) / 2
			c.r.Text(label, cx-tb.Width()/2, cy+tb.Height()/2)
			continue
		}
		top := yPixel(b.Value+offset, min, max, plot)
		if top-tb.Height() < plot.Top {
			top = b.Box.Top - c.px(2)
		}
		c.r.Text(label, cx-tb.Width()/2, top)
	}
}

func (c *canvas) drawAxes(spec models.ChartSpec, plot chart.Box) {
	c.line(plot.Left, plot.Bottom, plot.Right, plot.Bottom, colorAxis, float64(c.px(1)), nil)
	c.line(plot.Left, plot.Top, plot.Left, plot.Bottom, colorAxis, float64(c.px(1)), nil)

	pad := c.px(10)
	var tickHeight int
	for i, cat := range spec.Categories {
		tb := c.measure(cat, tickSize)
		if tb.Height() > tickHeight {
			tickHeight = tb.Height()
		}
		x := int(math.Round(categoryCenter(i, len(spec.Categories), plot)))
		c.line(x, plot.Bottom, x, plot.Bottom+c.px(4), colorAxis, float64(c.px(1)), nil)
		c.setFont(tickSize, colorAxis)
		c.r.Text(cat, x-tb.Width()/2, plot.Bottom+pad+tb.Height())
	}

	if spec.XLabel != "" {
		tb := c.measure(spec.XLabel, axisLabelSize)
		c.setFont(axisLabelSize, colorAxis)
		c.r.Text(spec.XLabel, plot.Left+(plot.Width()-tb.Width())/2, plot.Bottom+pad+tickHeight+pad+tb.Height())
	}

	if spec.YLabel != "" {
		tb := c.measure(spec.YLabel, axisLabelSize)
		c.setFont(axisLabelSize, colorAxis)
		c.r.SetTextRotation(1.5 * math.Pi)
		c.r.Text(spec.YLabel, pad+tb.Height(), plot.Top+(plot.Height()+tb.Width())/2)
		c.r.ClearTextRotation()
	}
}

// legendSize returns the box needed by the legend, anchored at the origin.
func (c *canvas) legendSize(spec models.ChartSpec) chart.Box {
	pad := c.px(6)
	swatch := c.px(legendSize)
	var w, h int
	if spec.LegendTitle != "" {
		tb := c.measure(spec.LegendTitle, legendSize)
		w, h = tb.Width(), tb.Height()+pad
	}
	for _, s := range spec.Series {
		tb := c.measure(s.Name, legendSize)
		if lw := swatch + pad + tb.Width(); lw > w {
			w = lw
		}
		h += swatch + pad
	}
	return chart.Box{Right: w + pad*2, Bottom: h + pad}
}

func (c *canvas) drawLegend(spec models.ChartSpec, plot chart.Box) {
	if len(spec.Series) == 0 {
		return
	}
	pad := c.px(6)
	swatch := c.px(legendSize)
	size := c.legendSize(spec)

	var box chart.Box
	if spec.Legend == models.LegendOutside {
		box = chart.Box{Left: plot.Right + c.px(20), Top: plot.Top}
	} else {
		box = chart.Box{Left: plot.Right - size.Width() - pad, Top: plot.Top + pad}
	}
	box.Right = box.Left + size.Width()
	box.Bottom = box.Top + size.Height()
	c.fillBox(box, drawing.ColorWhite.WithAlpha(230), colorLegendEdge)

	y := box.Top + pad
	if spec.LegendTitle != "" {
		tb := c.measure(spec.LegendTitle, legendSize)
		c.setFont(legendSize, colorAxis)
		c.r.Text(spec.LegendTitle, box.Left+(size.Width()-tb.Width())/2, y+tb.Height())
		y += tb.Height() + pad
	}
	for _, s := range spec.Series {
		fill := drawing.ColorFromHex(s.Color).WithAlpha(barAlpha)
		c.fillBox(chart.Box{Left: box.Left + pad, Top: y, Right: box.Left + pad + swatch, Bottom: y + swatch}, fill, fill)
		tb := c.measure(s.Name, legendSize)
		c.setFont(legendSize, colorAxis)
		c.r.Text(s.Name, box.Left+pad+swatch+pad, y+(swatch+tb.Height())/2)
		y += swatch + pad
	}
}

func (c *canvas) drawAnnotation(spec models.ChartSpec, plot chart.Box) {
	if spec.Annotation == "" {
		return
	}
	pad := c.px(6)
	lines := strings.Split(spec.Annotation, "\n")

	var w, lineHeight int
	for _, l := range lines {
		tb := c.measure(l, annotationSize)
		if tb.Width() > w {
			w = tb.Width()
		}
		if tb.Height() > lineHeight {
			lineHeight = tb.Height()
		}
	}
	lineHeight += c.px(3)

	box := chart.Box{
		Right: plot.Right - pad,
		Top:   plot.Top + pad,
	}
	box.Left = box.Right - w - pad*2
	box.Bottom = box.Top + lineHeight*len(lines) + pad
	c.fillBox(box, colorAnnotation, colorAxis)

	for i, l := range lines {
		c.setFont(annotationSize, drawing.ColorBlack)
		c.r.Text(l, box.Left+pad, box.Top+lineHeight*(i+1))
	}
}
