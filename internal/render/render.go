// Package render applies a placeholder token set to source text templates.
// Tags are written "</NAME/>" in templates; a fragment referencing an absent
// token is dropped whole rather than rendered with a literal tag.
package render

import (
	"strings"

	"github.com/samber/lo"

	"github.com/paywallkit/offertext/internal/placeholder"
)

// Tag returns the literal template tag for a placeholder name,
// e.g. Tag("PRICE") == "</PRICE/>".
func Tag(name string) string {
	return "</" + name + "/>"
}

// Substitute replaces every placeholder tag in text with its bound value.
// The second return value is false when text references an absent token, in
// which case the caller must drop the whole fragment.
func Substitute(text string, tokens []placeholder.Token) (string, bool) {
	for _, tok := range tokens {
		tag := Tag(tok.Name)
		if !strings.Contains(text, tag) {
			continue
		}
		if tok.IsAbsent() {
			return "", false
		}
		text = strings.ReplaceAll(text, tag, tok.Value)
	}
	return text, true
}

// Blocks renders each template block against the token set, omitting blocks
// that reference absent tokens.
func Blocks(blocks []string, tokens []placeholder.Token) []string {
	return lo.FilterMap(blocks, func(block string, _ int) (string, bool) {
		return Substitute(block, tokens)
	})
}
