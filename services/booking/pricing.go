package booking

import (
	"assemblr/models"

	"github.com/shopspring/decimal"
)

// ComputePrice returns hourlyPrice multiplied by the window's duration in
// hours, rounded to 2 decimal places (half away from zero). Assumes
// end > start; callers validate the range first.
func ComputePrice(hourlyPrice decimal.Decimal, start, end models.MinuteOfDay) decimal.Decimal {
	durationHours := decimal.NewFromInt(int64(end - start)).Div(decimal.NewFromInt(60))
	return hourlyPrice.Mul(durationHours).Round(2)
}
