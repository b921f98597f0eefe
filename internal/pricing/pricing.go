package pricing

import (
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/paywallkit/offertext/internal/domain"
)

// dayCounts is the fixed day-count approximation used when converting a price
// between billing period units.
var dayCounts = map[domain.PeriodUnit]int64{
	domain.PeriodUnitDay:   1,
	domain.PeriodUnitWeek:  7,
	domain.PeriodUnitMonth: 30,
	domain.PeriodUnitYear:  365,
}

// PerUnit derives the offer's price expressed per one target time unit as a
// display string. The string keeps the currency formatting of the offer's
// localized price; only the digit span is replaced with the computed value.
//
// The second return value is false when no per-unit price can be derived:
// the offer has no subscription period, the period's unit is day-based or
// unknown, its unit count is non-positive, or the target unit is
// unrecognized. These cases are expected upstream data gaps, not errors.
func PerUnit(offer domain.ProductOffer, target domain.PeriodUnit) (string, bool) {
	targetDays, ok := dayCounts[target]
	if !ok {
		return "", false
	}
	period := offer.SubscriptionPeriod
	if period == nil || !period.Convertible() {
		return "", false
	}
	if period.Unit == target && period.NumberOfUnits == 1 {
		return offer.Price.LocalizedString, true
	}

	var perUnit decimal.Decimal
	if period.Unit == target {
		perUnit = domain.DivCeil(offer.Price.Amount, decimal.NewFromInt(int64(period.NumberOfUnits)), 4)
	} else {
		divisor := decimal.NewFromInt(dayCounts[period.Unit] * int64(period.NumberOfUnits))
		perDay := domain.DivCeil(offer.Price.Amount, divisor, 4)
		perUnit = perDay.Mul(decimal.NewFromInt(targetDays))
	}

	computed := perUnit.RoundCeil(2).StringFixed(2)
	return spliceDigits(offer.Price.LocalizedString, computed), true
}

// spliceDigits replaces the span from the first through the last decimal
// digit of localized with computed, preserving whatever surrounds it
// (currency symbol, spacing, sign). A localized string without any digit
// degrades to the computed value alone.
func spliceDigits(localized, computed string) string {
	runes := []rune(localized)
	first, last := -1, -1
	for i, r := range runes {
		if unicode.IsDigit(r) {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return computed
	}
	return string(runes[:first]) + computed + string(runes[last+1:])
}
