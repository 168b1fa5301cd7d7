// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "io"

//go:generate mockgen -destination=mocks/spamclassifier.go -package=mocks . TokenExtractor,SpamScorer

// TokenExtractor derives the deduplicated token set from raw message text.
// Implementations are pure: same bytes, same set, no side effects.
type TokenExtractor interface {
	ExtractTokens(r io.Reader) (map[string]bool, error)
}

// SpamScorer computes a spam probability in [0,1] for a token set against
// the currently published corpus. It always produces a value, degrading to
// the documented defaults on missing input.
type SpamScorer interface {
	ComputeSpamProbability(tokens map[string]bool) float64
}
