package service

import "time"

// SaleRow is one order's contribution to the sales reports.
type SaleRow struct {
	OrderDate   time.Time `json:"order_date"`
	TotalAmount float64   `json:"total_amount"`
}

const salesWindowMonths = 7

// AggregateSales groups order totals by day ("2006-01-02") and by month
// ("2006-01") over the last seven months. Rows outside the window are
// skipped, including dates in the future.
func AggregateSales(rows []SaleRow, now time.Time) (daily, monthly map[string]float64) {
	daily = make(map[string]float64)
	monthly = make(map[string]float64)

	cutoff := now.AddDate(0, -salesWindowMonths, 0)
	for _, r := range rows {
		if r.OrderDate.Before(cutoff) || r.OrderDate.After(now) {
			continue
		}
		daily[r.OrderDate.Format("2006-01-02")] += r.TotalAmount
		monthly[r.OrderDate.Format("2006-01")] += r.TotalAmount
	}
	return daily, monthly
}
