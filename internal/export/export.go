// Package export renders the placeholder sets of a batch of offers into a
// preview table, so copy and pricing strings can be reviewed side by side.
package export

import (
	"github.com/samber/lo"

	"github.com/paywallkit/offertext/internal/domain"
	"github.com/paywallkit/offertext/internal/placeholder"
)

// Row is one offer's rendered placeholder values, in placeholder.Names
// order. Absent placeholders come through as empty strings.
type Row struct {
	Offer  string
	Values []string
}

// RowWriter writes preview rows to a destination.
type RowWriter interface {
	Write(rows []Row) error
}

// BuildRows derives one preview row per offer.
func BuildRows(offers []domain.ProductOffer) []Row {
	return lo.Map(offers, func(offer domain.ProductOffer, _ int) Row {
		values := lo.Map(placeholder.Build(offer), func(tok placeholder.Token, _ int) string {
			if tok.IsAbsent() {
				return ""
			}
			return tok.Value
		})
		return Row{Offer: offer.LocalizedTitle, Values: values}
	})
}
