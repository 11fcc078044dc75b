package aggregator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TotalsTTL bounds how long a materialised day stays in Redis.
const TotalsTTL = 35 * 24 * time.Hour

const totalsPrefix = "totals:"

// TotalsPattern matches every user's totals channel.
const TotalsPattern = totalsPrefix + "*"

// TotalsKey names the hash holding one user's totals for one day.
func TotalsKey(userID uuid.UUID, day Date) string {
	return fmt.Sprintf("%s%s:%s", totalsPrefix, userID, day)
}

// TotalsChannel is where a user's recomputed totals are published.
func TotalsChannel(userID uuid.UUID) string {
	return totalsPrefix + userID.String()
}

// ParseTotalsChannel extracts the user from a TotalsChannel name.
func ParseTotalsChannel(channel string) (uuid.UUID, error) {
	if !strings.HasPrefix(channel, totalsPrefix) {
		return uuid.Nil, fmt.Errorf("not a totals channel: %q", channel)
	}
	return uuid.Parse(strings.TrimPrefix(channel, totalsPrefix))
}

// HashFields flattens totals into string values for a Redis hash.
func (t DailyTotals) HashFields() map[string]interface{} {
	return map[string]interface{}{
		"date":       t.Date.String(),
		"calories":   t.Calories.String(),
		"protein_g":  t.ProteinG.String(),
		"carbs_g":    t.CarbsG.String(),
		"fat_g":      t.FatG.String(),
		"meal_count": t.MealCount,
	}
}

// ParseHashFields is the inverse of HashFields.
func ParseHashFields(fields map[string]string) (DailyTotals, error) {
	var totals DailyTotals

	day, err := ParseDate(fields["date"])
	if err != nil {
		return totals, err
	}
	totals.Date = day

	for name, dst := range map[string]*decimal.Decimal{
		"calories":  &totals.Calories,
		"protein_g": &totals.ProteinG,
		"carbs_g":   &totals.CarbsG,
		"fat_g":     &totals.FatG,
	} {
		v, err := decimal.NewFromString(fields[name])
		if err != nil {
			return totals, fmt.Errorf("field %s: %w", name, err)
		}
		*dst = v
	}

	count, err := strconv.Atoi(fields["meal_count"])
	if err != nil {
		return totals, fmt.Errorf("field meal_count: %w", err)
	}
	totals.MealCount = count

	return totals, nil
}
