// Package report holds the read-only aggregations over the sales ledger.
// All of them are pure: they never mutate their input and an empty result
// set yields a zeroed summary rather than an error. Rows keep insertion
// order; any most-recent-first display is the caller's concern.
package report

import (
	"time"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

const dateLayout = "2006-01-02"

type Summary struct {
	Rows   []models.Sale `json:"rows"`
	Total  float64       `json:"total"`
	Profit float64       `json:"profit"`
}

// Daily keeps sales whose date equals target exactly and sums total and
// profit.
func Daily(sales []models.Sale, date string) Summary {
	var sum Summary
	for _, s := range sales {
		if s.Date == date {
			sum.Rows = append(sum.Rows, s)
			sum.Total += s.Total
			sum.Profit += s.Profit
		}
	}
	return sum
}

// Monthly keeps sales falling in the given calendar year and 1-indexed
// month. Only the total is summed; profit stays zero here. The asymmetry
// with Daily is inherited behavior, kept on purpose.
func Monthly(sales []models.Sale, year, month int) Summary {
	var sum Summary
	for _, s := range sales {
		d, err := time.Parse(dateLayout, s.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && int(d.Month()) == month {
			sum.Rows = append(sum.Rows, s)
			sum.Total += s.Total
		}
	}
	return sum
}

// ProfitLoss keeps sales with from <= date <= to (ISO strings compare
// lexicographically, both ends inclusive) and sums total and profit.
func ProfitLoss(sales []models.Sale, from, to string) Summary {
	var sum Summary
	for _, s := range sales {
		if s.Date >= from && s.Date <= to {
			sum.Rows = append(sum.Rows, s)
			sum.Total += s.Total
			sum.Profit += s.Profit
		}
	}
	return sum
}
