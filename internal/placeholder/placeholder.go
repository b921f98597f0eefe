// Package placeholder assembles the named substitution tokens a templating
// layer injects into paywall text blocks for a subscription product offer.
package placeholder

import (
	"github.com/samber/lo"

	"github.com/paywallkit/offertext/internal/domain"
	"github.com/paywallkit/offertext/internal/pricing"
)

// Placeholder identifiers as they appear in source templates.
const (
	NameTitle               = "TITLE"
	NamePrice               = "PRICE"
	NamePricePerDay         = "PRICE_PER_DAY"
	NamePricePerWeek        = "PRICE_PER_WEEK"
	NamePricePerMonth       = "PRICE_PER_MONTH"
	NamePricePerYear        = "PRICE_PER_YEAR"
	NameOfferPrice          = "OFFER_PRICE"
	NameOfferPeriod         = "OFFER_PERIOD"
	NameOfferNumberOfPeriod = "OFFER_NUMBER_OF_PERIOD"
)

// Names lists the nine placeholder identifiers in their fixed emission order.
var Names = []string{
	NameTitle,
	NamePrice,
	NamePricePerDay,
	NamePricePerWeek,
	NamePricePerMonth,
	NamePricePerYear,
	NameOfferPrice,
	NameOfferPeriod,
	NameOfferNumberOfPeriod,
}

// Kind discriminates the closed set of token variants.
type Kind string

const (
	// KindBound is a plain value binding.
	KindBound Kind = "bound"
	// KindBoundWithCurrency is a value binding for currency-bearing money,
	// carrying the offer's currency code and symbol alongside the value.
	KindBoundWithCurrency Kind = "bound_with_currency"
	// KindAbsent marks a placeholder whose value is unavailable; the consumer
	// drops the enclosing text fragment instead of substituting.
	KindAbsent Kind = "absent"
)

// Token is one placeholder binding. Construct with Bound, BoundWithCurrency
// or Absent; tokens are immutable values discarded after rendering.
type Token struct {
	Name           string `json:"name"`
	Kind           Kind   `json:"kind"`
	Value          string `json:"value,omitempty"`
	CurrencyCode   string `json:"currencyCode,omitempty"`
	CurrencySymbol string `json:"currencySymbol,omitempty"`
}

// Bound creates a plain value binding.
func Bound(name, value string) Token {
	return Token{Name: name, Kind: KindBound, Value: value}
}

// BoundWithCurrency creates a currency-bearing value binding.
func BoundWithCurrency(name, value, currencyCode, currencySymbol string) Token {
	return Token{
		Name:           name,
		Kind:           KindBoundWithCurrency,
		Value:          value,
		CurrencyCode:   currencyCode,
		CurrencySymbol: currencySymbol,
	}
}

// Absent creates a token marking an unavailable value.
func Absent(name string) Token {
	return Token{Name: name, Kind: KindAbsent}
}

// IsAbsent reports whether the token carries no value.
func (t Token) IsAbsent() bool {
	return t.Kind == KindAbsent
}

// Build assembles the placeholder set for a product offer. The result always
// holds exactly len(Names) tokens in Names order; values that cannot be
// derived come back as absent tokens, never as errors.
func Build(offer domain.ProductOffer) []Token {
	return lo.Map(Names, func(name string, _ int) Token {
		return tokenFor(offer, name)
	})
}

func tokenFor(offer domain.ProductOffer, name string) Token {
	phase := offer.FirstDiscountPhase

	switch name {
	case NameTitle:
		return Bound(name, offer.LocalizedTitle)
	case NamePrice:
		return priced(offer, name, offer.Price.LocalizedString)
	case NamePricePerDay:
		return perUnit(offer, name, domain.PeriodUnitDay)
	case NamePricePerWeek:
		return perUnit(offer, name, domain.PeriodUnitWeek)
	case NamePricePerMonth:
		return perUnit(offer, name, domain.PeriodUnitMonth)
	case NamePricePerYear:
		return perUnit(offer, name, domain.PeriodUnitYear)
	case NameOfferPrice:
		if phase == nil {
			return Absent(name)
		}
		return priced(offer, name, phase.Price.LocalizedString)
	case NameOfferPeriod:
		if phase == nil {
			return Absent(name)
		}
		return Bound(name, phase.LocalizedPeriod)
	case NameOfferNumberOfPeriod:
		if phase == nil {
			return Absent(name)
		}
		return Bound(name, phase.LocalizedNumberOfPeriods)
	}
	return Absent(name)
}

// priced binds a currency-bearing value with the offer price's currency
// metadata, which also covers the discount phase price (same product, same
// currency).
func priced(offer domain.ProductOffer, name, value string) Token {
	return BoundWithCurrency(name, value, offer.Price.CurrencyCode, offer.Price.CurrencySymbol)
}

func perUnit(offer domain.ProductOffer, name string, unit domain.PeriodUnit) Token {
	value, ok := pricing.PerUnit(offer, unit)
	if !ok {
		return Absent(name)
	}
	return priced(offer, name, value)
}
