package rate

import "jewelstore/internal/domain"

type MetalRates struct {
	Metal domain.Metal
	Rates []domain.RateRecord
}

type MetalTrends struct {
	Metal domain.Metal
	Days  []DailyTrend
}
