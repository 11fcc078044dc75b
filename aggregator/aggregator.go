// Package aggregator groups logged meals into calendar days and picks the
// extremal days used by the dashboard.
package aggregator

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingTimestamp = errors.New("meal record has no timestamp")
	ErrNegativeMacro    = errors.New("meal record has a negative macro value")
)

// MealRecord is one logged meal. Absent macros count as zero.
type MealRecord struct {
	ID        string              `json:"id,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
	Calories  decimal.NullDecimal `json:"calories"`
	ProteinG  decimal.NullDecimal `json:"protein_g"`
	CarbsG    decimal.NullDecimal `json:"carbs_g"`
	FatG      decimal.NullDecimal `json:"fat_g"`
}

// Validate is meant to run once where records enter the system.
func (m MealRecord) Validate() error {
	if m.Timestamp.IsZero() {
		return ErrMissingTimestamp
	}
	for _, v := range []decimal.NullDecimal{m.Calories, m.ProteinG, m.CarbsG, m.FatG} {
		if v.Valid && v.Decimal.IsNegative() {
			return ErrNegativeMacro
		}
	}
	return nil
}

func (m MealRecord) Date() Date {
	return DateOf(m.Timestamp)
}

type DailyTotals struct {
	Date      Date            `json:"date"`
	Calories  decimal.Decimal `json:"calories"`
	ProteinG  decimal.Decimal `json:"protein_g"`
	CarbsG    decimal.Decimal `json:"carbs_g"`
	FatG      decimal.Decimal `json:"fat_g"`
	MealCount int             `json:"meal_count"`
}

func (t *DailyTotals) add(m MealRecord) {
	t.Calories = t.Calories.Add(orZero(m.Calories))
	t.ProteinG = t.ProteinG.Add(orZero(m.ProteinG))
	t.CarbsG = t.CarbsG.Add(orZero(m.CarbsG))
	t.FatG = t.FatG.Add(orZero(m.FatG))
	t.MealCount++
}

type DayValue struct {
	Date  Date            `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type BestDayReport struct {
	LowestCalorieDay  DayValue `json:"lowest_calorie_day"`
	HighestProteinDay DayValue `json:"highest_protein_day"`
}

func orZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

// ComputeDailyTotals buckets meals by UTC calendar day and sums each macro.
// Records without a timestamp are skipped.
func ComputeDailyTotals(meals []MealRecord) map[Date]DailyTotals {
	totals := make(map[Date]DailyTotals)
	for _, meal := range meals {
		if meal.Timestamp.IsZero() {
			continue
		}
		day := meal.Date()
		bucket, ok := totals[day]
		if !ok {
			bucket = DailyTotals{Date: day}
		}
		bucket.add(meal)
		totals[day] = bucket
	}
	return totals
}

// FindBestDays reports the lowest-calorie and highest-protein days. It
// returns false when there is nothing to report. On equal values the
// earliest date wins.
func FindBestDays(totals map[Date]DailyTotals) (BestDayReport, bool) {
	if len(totals) == 0 {
		return BestDayReport{}, false
	}

	days := SortedTotals(totals)
	lowest, highest := days[0], days[0]
	for _, day := range days[1:] {
		if day.Calories.LessThan(lowest.Calories) {
			lowest = day
		}
		if day.ProteinG.GreaterThan(highest.ProteinG) {
			highest = day
		}
	}

	return BestDayReport{
		LowestCalorieDay:  DayValue{Date: lowest.Date, Value: lowest.Calories},
		HighestProteinDay: DayValue{Date: highest.Date, Value: highest.ProteinG},
	}, true
}

// FilterMealsByRange keeps meals dated within [start, end], inclusive, in
// their original order.
func FilterMealsByRange(meals []MealRecord, start, end Date) []MealRecord {
	from, to := start.Start(), end.End()
	filtered := make([]MealRecord, 0, len(meals))
	for _, meal := range meals {
		if meal.Timestamp.IsZero() {
			continue
		}
		if meal.Timestamp.Before(from) || !meal.Timestamp.Before(to) {
			continue
		}
		filtered = append(filtered, meal)
	}
	return filtered
}

func SumMeals(day Date, meals []MealRecord) DailyTotals {
	totals := DailyTotals{Date: day}
	for _, meal := range meals {
		totals.add(meal)
	}
	return totals
}

func SortedTotals(totals map[Date]DailyTotals) []DailyTotals {
	days := make([]DailyTotals, 0, len(totals))
	for _, t := range totals {
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// Lookback returns the window [end-days, end].
func Lookback(end Date, days int) (Date, Date) {
	return end.AddDays(-days), end
}
