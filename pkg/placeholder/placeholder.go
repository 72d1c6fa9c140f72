// Package placeholder extracts and substitutes [BRACKET] tokens in draft
// documents. Both operations are pure; callers re-resolve from the original
// draft as the user fills in values, never from a partially resolved copy.
package placeholder

import (
	"regexp"
	"strings"

	"github.com/Eloura74/Backbone/pkg/models"
)

// tokenRe matches a bracket-delimited token. Nested or empty brackets are
// not tokens.
var tokenRe = regexp.MustCompile(`\[[^\[\]]+\]`)

// Extract returns the distinct placeholder tokens of a document, in order
// of first occurrence (subject scanned before body). Token strings include
// the delimiters and are compared case-sensitively.
func Extract(doc models.Document) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, text := range []string{doc.Subject, doc.Body} {
		for _, tok := range tokenRe.FindAllString(text, -1) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	return out
}

// Resolve substitutes every occurrence of each token present in values and
// leaves unknown tokens verbatim. A document without tokens comes back
// unchanged, so resolving an already resolved document is a no-op. The
// substitution is single-pass: a value that itself contains bracket-like
// text is never re-substituted.
func Resolve(doc models.Document, values map[string]string) models.Document {
	if len(values) == 0 {
		return doc
	}
	pairs := make([]string, 0, len(values)*2)
	for tok, val := range values {
		if !strings.HasPrefix(tok, "[") || !strings.HasSuffix(tok, "]") {
			// keys are full tokens including delimiters; ignore anything else
			continue
		}
		pairs = append(pairs, tok, val)
	}
	if len(pairs) == 0 {
		return doc
	}
	r := strings.NewReplacer(pairs...)
	return models.Document{
		Subject: r.Replace(doc.Subject),
		Body:    r.Replace(doc.Body),
	}
}
