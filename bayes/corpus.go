// SPDX-License-Identifier: GPL-3.0-or-later
package bayes

import "time"

// Corpus is an immutable per-token probability snapshot. It is derived from
// one training-count snapshot and replaced wholesale, never patched.
type Corpus struct {
	probabilities map[string]float64
	loadedAt      time.Time
}

// Probability returns the spam probability of token and whether the token
// occurred in the training snapshot the Corpus was built from.
func (c *Corpus) Probability(token string) (float64, bool) {
	p, ok := c.probabilities[token]
	return p, ok
}

func (c *Corpus) Size() int {
	return len(c.probabilities)
}

func (c *Corpus) LoadedAt() time.Time {
	return c.loadedAt
}
