package dataset

import (
	"math"

	"github.com/samber/lo"

	"github.com/ukaji3/commuteplot-go/pkg/commute/models"
)

// DefaultPercentTolerance is the allowed deviation of a column total from 100.
const DefaultPercentTolerance = 0.1

// PercentTotals returns the sum of every column, in column order.
func PercentTotals(table models.PercentTable) []float64 {
	return lo.Map(table.Columns, func(c models.PercentColumn, _ int) float64 {
		return lo.Sum(c.Values)
	})
}

// CheckPercentTotals reports, for every column, whether its total is within
// tolerance of 100.
func CheckPercentTotals(name string, table models.PercentTable, tolerance float64) []models.PercentCheck {
	totals := PercentTotals(table)
	checks := make([]models.PercentCheck, 0, len(totals))
	for i, total := range totals {
		checks = append(checks, models.PercentCheck{
			Table:  name,
			Column: table.Columns[i].Name,
			Total:  total,
			OK:     math.Abs(total-100) <= tolerance,
		})
	}
	return checks
}
