package billing

import (
	"math"
	"sort"
	"time"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

// ProductStat is one row of the owner's monthly breakdown: how many
// customers take a product, how much of it goes out over the month, and
// what it brings in.
type ProductStat struct {
	Product       model.MilkProduct `json:"product"`
	CustomerCount int               `json:"customerCount"`
	LitersML      int64             `json:"litersMl"`
	RevenuePaise  int64             `json:"revenuePaise"`
	SharePercent  int               `json:"sharePercent"`
}

type MonthlyStats struct {
	TotalCustomers   int           `json:"totalCustomers"`
	ActiveCustomers  int           `json:"activeCustomers"`
	Products         []ProductStat `json:"products"`
	TotalLitersML    int64         `json:"totalLitersMl"`
	TotalPaise       int64         `json:"totalPaise"`
	AvgDailyLitersML int64         `json:"avgDailyLitersMl"`
	AvgDailyPaise    int64         `json:"avgDailyPaise"`
}

// ComputeMonthlyStats aggregates the roster into the owner's stats screen
// numbers. Per-customer liters assume delivery every day of the month; the
// share percentage is of all customers, rounded to the nearest whole point.
func ComputeMonthlyStats(customers []model.Customer, products []model.MilkProduct, year int, month time.Month) MonthlyStats {
	daysInMonth := int64(model.DaysInMonth(year, month))

	stats := MonthlyStats{TotalCustomers: len(customers)}
	for _, c := range customers {
		if c.Subscription != nil && c.Subscription.IsActive {
			stats.ActiveCustomers++
		}
	}

	for _, p := range products {
		row := ProductStat{Product: p}
		for _, c := range customers {
			if c.Subscription == nil || c.Subscription.MilkProductID != p.ID {
				continue
			}
			row.CustomerCount++
			row.LitersML += c.Subscription.QuantityPerDeliveryML * daysInMonth
		}
		row.RevenuePaise = CostPaise(row.LitersML, p.PricePerLiterPaise)
		if stats.TotalCustomers > 0 {
			row.SharePercent = int(math.Round(float64(row.CustomerCount) / float64(stats.TotalCustomers) * 100))
		}
		stats.Products = append(stats.Products, row)
		stats.TotalLitersML += row.LitersML
		stats.TotalPaise += row.RevenuePaise
	}

	sort.SliceStable(stats.Products, func(i, j int) bool {
		return stats.Products[i].CustomerCount > stats.Products[j].CustomerCount
	})

	stats.AvgDailyLitersML = stats.TotalLitersML / daysInMonth
	stats.AvgDailyPaise = stats.TotalPaise / daysInMonth
	return stats
}

// DailyCollectionPaise is the owner dashboard's expected take for one flat
// day: every active subscription at its plan quantity, overrides ignored.
func DailyCollectionPaise(customers []model.Customer, products []model.MilkProduct) int64 {
	prices := make(map[string]int64, len(products))
	for _, p := range products {
		prices[p.ID] = p.PricePerLiterPaise
	}

	var total int64
	for _, c := range customers {
		if c.Subscription == nil || !c.Subscription.IsActive {
			continue
		}
		total += CostPaise(c.Subscription.QuantityPerDeliveryML, prices[c.Subscription.MilkProductID])
	}
	return total
}
