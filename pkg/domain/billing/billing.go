// Package billing holds the pure calculation side of the app: effective
// quantities after daily overrides, monthly projections, owner bills and
// inventory. Functions here take snapshots and return numbers; they never
// touch shared state.
package billing

import (
	"time"

	"github.com/seeyaaaaa/daily-dairy/pkg/domain/model"
)

// weeksPerMonth is the deliberate 4-week month approximation used for the
// consumer-facing monthly estimate. It is not calendar-accurate on purpose;
// the owner bill uses DeliveryDaysInMonth instead.
const weeksPerMonth = 4

// EffectiveQuantityML resolves the quantity for one day. Precedence, in
// order: paused override wins, then an explicit quantity override, then the
// plan default.
func EffectiveQuantityML(sub model.Subscription, date model.Date, overrides []model.DailyOverride) int64 {
	for _, o := range overrides {
		if o.SubscriptionID != sub.ID || o.Date != date {
			continue
		}
		if o.IsPaused {
			return 0
		}
		if o.QuantityOverrideML != nil {
			return *o.QuantityOverrideML
		}
		break
	}
	return sub.QuantityPerDeliveryML
}

// CostPaise prices a quantity: milliliters times paise-per-liter. Exact for
// every half-liter step.
func CostPaise(quantityML, pricePerLiterPaise int64) int64 {
	return quantityML * pricePerLiterPaise / 1000
}

// EffectiveCostPaise is the cost of one day after override resolution.
// Zero when paused.
func EffectiveCostPaise(sub model.Subscription, product model.MilkProduct, date model.Date, overrides []model.DailyOverride) int64 {
	return CostPaise(EffectiveQuantityML(sub, date, overrides), product.PricePerLiterPaise)
}

func WeeklyDeliveryDays(sub model.Subscription) int {
	return len(sub.DaysOfWeek)
}

// MonthlyLitersEstimateML projects a month of deliveries as four flat weeks.
func MonthlyLitersEstimateML(sub model.Subscription) int64 {
	return sub.QuantityPerDeliveryML * int64(WeeklyDeliveryDays(sub)) * weeksPerMonth
}

func MonthlyCostEstimatePaise(sub model.Subscription, product model.MilkProduct) int64 {
	return CostPaise(MonthlyLitersEstimateML(sub), product.PricePerLiterPaise)
}

// DeliveryDaysInMonth prorates a weekly schedule over a calendar month:
// every day of the month for a seven-day plan, otherwise
// floor(daysInMonth * activeDays / 7).
func DeliveryDaysInMonth(sub model.Subscription, year int, month time.Month) int {
	daysInMonth := model.DaysInMonth(year, month)
	active := WeeklyDeliveryDays(sub)
	if active >= 7 {
		return daysInMonth
	}
	return daysInMonth * active / 7
}

// MonthlyBillPaise is the owner-side bill for one customer and month.
func MonthlyBillPaise(sub model.Subscription, product model.MilkProduct, year int, month time.Month) int64 {
	days := DeliveryDaysInMonth(sub, year, month)
	return int64(days) * CostPaise(sub.QuantityPerDeliveryML, product.PricePerLiterPaise)
}

// InventoryForWeekday answers "how many milliliters of each product do we
// need on that weekday", summed over active subscriptions that deliver then.
func InventoryForWeekday(subs []model.Subscription, day time.Weekday) map[string]int64 {
	need := make(map[string]int64)
	for _, s := range subs {
		if !s.IsActive || !s.DeliversOn(day) {
			continue
		}
		need[s.MilkProductID] += s.QuantityPerDeliveryML
	}
	return need
}
