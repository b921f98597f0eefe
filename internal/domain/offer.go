package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// PeriodUnit classifies the length unit of a subscription billing period.
type PeriodUnit string

const (
	PeriodUnitDay     PeriodUnit = "day"
	PeriodUnitWeek    PeriodUnit = "week"
	PeriodUnitMonth   PeriodUnit = "month"
	PeriodUnitYear    PeriodUnit = "year"
	PeriodUnitUnknown PeriodUnit = "unknown"
)

// BillingPeriod is the recurring charge interval of a subscription product.
type BillingPeriod struct {
	Unit          PeriodUnit `json:"unit"`
	NumberOfUnits int        `json:"numberOfUnits"`
}

// Convertible reports whether the period can participate in per-unit price
// conversion. Day-based and unknown periods never convert; neither does a
// non-positive unit count.
func (p BillingPeriod) Convertible() bool {
	switch p.Unit {
	case PeriodUnitWeek, PeriodUnitMonth, PeriodUnitYear:
		return p.NumberOfUnits > 0
	}
	return false
}

// Money is a monetary value together with the platform-rendered localized
// representation of that value. LocalizedString carries the locale's currency
// symbol, grouping and decimal separators as the store delivered them.
type Money struct {
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currencyCode"`
	CurrencySymbol  string          `json:"currencySymbol"`
	LocalizedString string          `json:"localizedString"`
}

// UnmarshalJSON decodes Money leniently: a missing, null or malformed amount
// degrades to zero instead of failing the whole offer decode.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw struct {
		Amount          json.RawMessage `json:"amount"`
		CurrencyCode    string          `json:"currencyCode"`
		CurrencySymbol  string          `json:"currencySymbol"`
		LocalizedString string          `json:"localizedString"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	amount := strings.Trim(string(raw.Amount), `"`)
	if amount == "null" {
		amount = ""
	}

	*m = Money{
		Amount:          SafeParse(amount),
		CurrencyCode:    raw.CurrencyCode,
		CurrencySymbol:  raw.CurrencySymbol,
		LocalizedString: raw.LocalizedString,
	}
	return nil
}

// PaymentMode classifies how an introductory discount phase is charged.
type PaymentMode string

const (
	PaymentModeFreeTrial  PaymentMode = "free_trial"
	PaymentModePayAsYouGo PaymentMode = "pay_as_you_go"
	PaymentModePayUpfront PaymentMode = "pay_upfront"
	PaymentModeUnknown    PaymentMode = "unknown"
)

// DiscountPhase describes an introductory or promotional offer phase of a
// subscription product.
type DiscountPhase struct {
	PaymentMode              PaymentMode `json:"paymentMode"`
	Price                    Money       `json:"price"`
	LocalizedPeriod          string      `json:"localizedPeriod"`
	LocalizedNumberOfPeriods string      `json:"localizedNumberOfPeriods"`
}

// ProductOffer is an immutable snapshot of a purchasable subscription product
// as delivered by the product catalog. SubscriptionPeriod and
// FirstDiscountPhase are nil when the catalog has no such data.
type ProductOffer struct {
	LocalizedTitle     string         `json:"localizedTitle"`
	Price              Money          `json:"price"`
	SubscriptionPeriod *BillingPeriod `json:"subscriptionPeriod,omitempty"`
	FirstDiscountPhase *DiscountPhase `json:"firstDiscountPhase,omitempty"`
}
