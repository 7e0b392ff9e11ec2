package render

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

// bar is one drawn rectangle in pixel space.
type bar struct {
	Series   int
	Category int
	Value    float64
	Box      chart.Box
}

// valueRange returns the value-axis range for spec. A fixed YRange wins;
// otherwise the range runs from 0 to a rounded-up maximum of the data (the
// per-category total for stacked charts).
func valueRange(spec models.ChartSpec) (float64, float64) {
	if len(spec.YRange) == 2 && spec.YRange[1] > spec.YRange[0] {
		return spec.YRange[0], spec.YRange[1]
	}

	var max float64
	for c := range spec.Categories {
		var total float64
		for _, s := range spec.Series {
			if c >= len(s.Values) {
				continue
			}
			v := s.Values[c]
			if spec.Kind == models.ChartStacked {
				total += math.Max(v, 0)
			} else {
				total = math.Max(total, v)
			}
		}
		max = math.Max(max, total)
	}
	if max <= 0 {
		return 0, 1
	}
	step := tickStep(0, max*1.1)
	return 0, math.Ceil(max*1.1/step) * step
}

// tickStep picks a 1/2/5 x 10^n step giving roughly five to ten ticks.
func tickStep(min, max float64) float64 {
	raw := (max - min) / 7
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch residual := raw / mag; {
	case residual <= 1:
		return mag
	case residual <= 2:
		return 2 * mag
	case residual <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// ticks returns the tick values from min to max inclusive.
func ticks(min, max float64) []float64 {
	step := tickStep(min, max)
	var out []float64
	for i := 0; ; i++ {
		v := min + float64(i)*step
		if v > max+step*1e-9 {
			break
		}
		out = append(out, v)
	}
	return out
}

// yPixel maps a value to a pixel row inside plot, clamped to the plot area.
func yPixel(v, min, max float64, plot chart.Box) int {
	if max <= min {
		return plot.Bottom
	}
	frac := (v - min) / (max - min)
	frac = math.Max(0, math.Min(1, frac))
	return plot.Bottom - int(math.Round(frac*float64(plot.Height())))
}

// categoryCenter returns the x pixel of the center of category i.
func categoryCenter(i, n int, plot chart.Box) float64 {
	slot := float64(plot.Width()) / float64(n)
	return float64(plot.Left) + (float64(i)+0.5)*slot
}

// layoutBars computes every bar rectangle for spec within plot. Grouped
// series are placed side by side around the category center; stacked series
// are placed bottom to top in series order.
func layoutBars(spec models.ChartSpec, plot chart.Box, min, max float64) []bar {
	n := len(spec.Categories)
	if n == 0 || len(spec.Series) == 0 {
		return nil
	}
	slot := float64(plot.Width()) / float64(n)
	width := spec.BarWidth
	if width <= 0 {
		width = 0.8 / float64(len(spec.Series))
	}
	barPx := slot * width

	var bars []bar
	for c := 0; c < n; c++ {
		center := categoryCenter(c, n, plot)
		var base float64
		for s, series := range spec.Series {
			if c >= len(series.Values) {
				continue
			}
			v := series.Values[c]

			var left float64
			lower, upper := min, v
			if spec.Kind == models.ChartStacked {
				left = center - barPx/2
				lower, upper = base, base+v
				base = upper
			} else {
				offset := float64(s) - float64(len(spec.Series)-1)/2
				left = center + offset*barPx - barPx/2
				lower = math.Max(min, 0)
			}

			bars = append(bars, bar{
				Series:   s,
				Category: c,
				Value:    v,
				Box: chart.Box{
					Left:   int(math.Round(left)),
					Right:  int(math.Round(left + barPx)),
					Top:    yPixel(upper, min, max, plot),
					Bottom: yPixel(lower, min, max, plot),
				},
			})
		}
	}
	return bars
}
