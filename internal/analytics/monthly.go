package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/janakalyan/loanwatch/internal/model"
	"github.com/janakalyan/loanwatch/internal/period"
)

// MonthPoint is one month of the disbursement/utilization series.
type MonthPoint struct {
	Period       period.Period
	Disbursement decimal.Decimal // CREDIT total
	Utilization  decimal.Decimal // DEBIT total
}

// MonthlySeries sums disbursement and utilization per month of year. With no
// months given it covers January to December; otherwise the given months in
// the order supplied.
func MonthlySeries(txns []model.Transaction, year int, months ...time.Month) []MonthPoint {
	periods := period.Year(year)
	if len(months) > 0 {
		periods = make([]period.Period, len(months))
		for i, m := range months {
			periods[i] = period.Period{Year: year, Month: m}
		}
	}
	return SeriesFor(txns, periods)
}

// SeriesFor sums disbursement and utilization for each period, in order.
func SeriesFor(txns []model.Transaction, periods []period.Period) []MonthPoint {
	index := make(map[period.Period]int, len(periods))
	out := make([]MonthPoint, len(periods))
	for i, p := range periods {
		out[i] = MonthPoint{Period: p, Disbursement: decimal.Zero, Utilization: decimal.Zero}
		if _, dup := index[p]; !dup {
			index[p] = i
		}
	}

	for _, t := range txns {
		i, ok := index[period.Of(t.Date)]
		if !ok {
			continue
		}
		switch t.Type {
		case model.TypeCredit:
			out[i].Disbursement = out[i].Disbursement.Add(t.Amount)
		case model.TypeDebit:
			out[i].Utilization = out[i].Utilization.Add(t.Amount)
		}
	}

	// Repeated periods carry the same totals as their first occurrence.
	for i, p := range periods {
		if first := index[p]; first != i {
			out[i].Disbursement = out[first].Disbursement
			out[i].Utilization = out[first].Utilization
		}
	}
	return out
}
