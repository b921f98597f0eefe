package render

import (
	"testing"

	"github.com/paywallkit/offertext/internal/placeholder"
)

func testTokens() []placeholder.Token {
	return []placeholder.Token{
		placeholder.Bound(placeholder.NameTitle, "Premium"),
		placeholder.BoundWithCurrency(placeholder.NamePrice, "$9.99", "USD", "$"),
		placeholder.BoundWithCurrency(placeholder.NamePricePerMonth, "$9.99", "USD", "$"),
		placeholder.Absent(placeholder.NameOfferPrice),
		placeholder.Absent(placeholder.NameOfferPeriod),
	}
}

func TestTag(t *testing.T) {
	if got := Tag("PRICE"); got != "</PRICE/>" {
		t.Errorf("Tag(PRICE) = %q", got)
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"single tag", "Get </TITLE/> now", "Get Premium now", true},
		{"repeated tag", "Now </PRICE/>, always </PRICE/>", "Now $9.99, always $9.99", true},
		{"two tags", "</TITLE/> for </PRICE_PER_MONTH/> a month", "Premium for $9.99 a month", true},
		{"no tags", "Cancel anytime", "Cancel anytime", true},
		{"absent token drops fragment", "Intro offer: </OFFER_PRICE/>", "", false},
		{"absent among bound drops fragment", "</TITLE/> for </OFFER_PRICE/>", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Substitute(tt.text, testTokens())
			if ok != tt.wantOK {
				t.Fatalf("Substitute ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Substitute = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	blocks := []string{
		"</TITLE/>",
		"Only </PRICE_PER_MONTH/> per month",
		"First period just </OFFER_PRICE/>",
		"Cancel anytime",
	}

	got := Blocks(blocks, testTokens())

	want := []string{
		"Premium",
		"Only $9.99 per month",
		"Cancel anytime",
	}
	if len(got) != len(want) {
		t.Fatalf("Blocks returned %d fragments, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Blocks[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
