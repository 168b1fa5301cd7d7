// SPDX-License-Identifier: GPL-3.0-or-later
package bayes

import (
	"fmt"
	"io"
	"regexp"
)

// Tokens are runs of letters, digits and currency signs; ! ' - may appear
// inside a run. Matching is case-sensitive, trained corpora distinguish
// FREE from free.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}$€][\p{L}\p{N}$€!'-]*`)

// Extractor derives the deduplicated token set of a raw message. Header
// and body bytes are tokenized uniformly.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) ExtractTokens(r io.Reader) (map[string]bool, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read message for tokenization: %w", err)
	}

	tokens := map[string]bool{}
	for _, token := range tokenPattern.FindAllString(string(raw), -1) {
		tokens[token] = true
	}

	return tokens, nil
}
