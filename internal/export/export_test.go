package export

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/paywallkit/offertext/internal/domain"
	"github.com/paywallkit/offertext/internal/placeholder"
)

func sampleOffers() []domain.ProductOffer {
	return []domain.ProductOffer{
		{
			LocalizedTitle: "Premium Monthly",
			Price: domain.Money{
				Amount:          decimal.RequireFromString("9.99"),
				CurrencyCode:    "USD",
				CurrencySymbol:  "$",
				LocalizedString: "$9.99",
			},
			SubscriptionPeriod: &domain.BillingPeriod{Unit: domain.PeriodUnitMonth, NumberOfUnits: 1},
		},
		{
			LocalizedTitle: "Premium Lifetime",
			Price: domain.Money{
				Amount:          decimal.RequireFromString("99.99"),
				CurrencyCode:    "USD",
				CurrencySymbol:  "$",
				LocalizedString: "$99.99",
			},
		},
	}
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows(sampleOffers())

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	for i, row := range rows {
		if len(row.Values) != len(placeholder.Names) {
			t.Errorf("rows[%d] has %d values, want %d", i, len(row.Values), len(placeholder.Names))
		}
	}

	monthly := rows[0]
	if monthly.Offer != "Premium Monthly" {
		t.Errorf("rows[0].Offer = %q", monthly.Offer)
	}
	if monthly.Values[1] != "$9.99" {
		t.Errorf("PRICE column = %q, want $9.99", monthly.Values[1])
	}

	// The lifetime offer has no subscription period, so every per-unit and
	// offer-phase column is empty.
	lifetime := rows[1]
	for i := 2; i < len(lifetime.Values); i++ {
		if lifetime.Values[i] != "" {
			t.Errorf("lifetime column %s = %q, want empty", placeholder.Names[i], lifetime.Values[i])
		}
	}
}

func TestWorkbookWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.xlsx")
	writer := NewWorkbookWriter(path, "PLACEHOLDERS")

	if err := writer.Write(BuildRows(sampleOffers())); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("PLACEHOLDERS", "A1"); got != "OFFER" {
		t.Errorf("A1 = %q, want OFFER", got)
	}
	if got, _ := f.GetCellValue("PLACEHOLDERS", "B1"); got != placeholder.NameTitle {
		t.Errorf("B1 = %q, want %s", got, placeholder.NameTitle)
	}
	if got, _ := f.GetCellValue("PLACEHOLDERS", "A2"); got != "Premium Monthly" {
		t.Errorf("A2 = %q, want Premium Monthly", got)
	}
	if got, _ := f.GetCellValue("PLACEHOLDERS", "C2"); got != "$9.99" {
		t.Errorf("C2 = %q, want $9.99", got)
	}
	if got, _ := f.GetCellValue("PLACEHOLDERS", "A3"); got != "Premium Lifetime" {
		t.Errorf("A3 = %q, want Premium Lifetime", got)
	}
}
