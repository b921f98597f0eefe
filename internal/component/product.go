package component

import "github.com/paywallkit/offertext/internal/domain"

// Store keys recognized when assembling a ProductInfo. Other keys are opaque
// to this package and pass through to the layout layer untouched.
const (
	keyTitle              = "title"
	keySubtitle           = "subtitle"
	keySubtitlePayUpfront = "subtitle_payupfront"
	keySubtitlePayAsYouGo = "subtitle_payasyougo"
	keySubtitleFreeTrial  = "subtitle_freetrial"
	keySecondTitle        = "second_title"
	keySecondSubtitle     = "second_subtitle"
	keyButton             = "button"
	keyTagText            = "tag_text"
	keyTagShape           = "tag_shape"
)

// SubtitleSet holds the period-conditional subtitle variants of one product
// cell. Any slot may be nil.
type SubtitleSet struct {
	Default    *Text
	PayUpfront *Text
	PayAsYouGo *Text
	FreeTrial  *Text
}

// Resolve selects the subtitle variant matching the payment mode of the
// offer's first discount phase. An offer without a discount phase, an
// unmapped payment mode, or an empty matching slot all fall back to the
// default slot. Returns nil only when the default slot is empty too.
func (s SubtitleSet) Resolve(offer domain.ProductOffer) *Text {
	var picked *Text
	if phase := offer.FirstDiscountPhase; phase != nil {
		switch phase.PaymentMode {
		case domain.PaymentModeFreeTrial:
			picked = s.FreeTrial
		case domain.PaymentModePayAsYouGo:
			picked = s.PayAsYouGo
		case domain.PaymentModePayUpfront:
			picked = s.PayUpfront
		}
	}
	if picked == nil {
		picked = s.Default
	}
	return picked
}

// HasAny reports whether any subtitle slot is populated. Slots are checked
// in a fixed order so iteration stays deterministic.
func (s SubtitleSet) HasAny() bool {
	for _, slot := range []*Text{s.Default, s.PayUpfront, s.PayAsYouGo, s.FreeTrial} {
		if slot != nil {
			return true
		}
	}
	return false
}

// ProductInfo is the per-product view assembled from the layout component
// store. Every field is optional; absent layout data leaves it nil.
type ProductInfo struct {
	Title          *Text
	Subtitles      SubtitleSet
	SecondTitle    *Text
	SecondSubtitle *Text
	Button         *Button
	TagText        *Text
	TagShape       *Shape
}

// ProductInfoFrom builds a ProductInfo from the component store. Unknown keys
// and mismatched component types resolve to absent fields. Tag components are
// honored only for the main product.
func ProductInfoFrom(store Store, isMain bool) ProductInfo {
	info := ProductInfo{
		Title: store.textPtr(keyTitle),
		Subtitles: SubtitleSet{
			Default:    store.textPtr(keySubtitle),
			PayUpfront: store.textPtr(keySubtitlePayUpfront),
			PayAsYouGo: store.textPtr(keySubtitlePayAsYouGo),
			FreeTrial:  store.textPtr(keySubtitleFreeTrial),
		},
		SecondTitle:    store.textPtr(keySecondTitle),
		SecondSubtitle: store.textPtr(keySecondSubtitle),
	}
	if b, ok := store.Button(keyButton); ok {
		info.Button = &b
	}
	if isMain {
		info.TagText = store.textPtr(keyTagText)
		if sh, ok := store.Shape(keyTagShape); ok {
			info.TagShape = &sh
		}
	}
	return info
}

// BlockType describes how a block of product cells is laid out.
type BlockType string

const (
	BlockSingle     BlockType = "single"
	BlockVertical   BlockType = "vertical"
	BlockHorizontal BlockType = "horizontal"
)

// Multiple reports whether the block lays out more than one product cell.
func (b BlockType) Multiple() bool {
	return b == BlockVertical || b == BlockHorizontal
}

// ProductBlock groups the product views shown together in one layout block.
type ProductBlock struct {
	Products []ProductInfo
	Type     BlockType
}
