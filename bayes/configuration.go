// SPDX-License-Identifier: GPL-3.0-or-later
package bayes

import "fmt"

type ConfigFunc func(c *configuration) error

func MaxInterestingTokens(n int) ConfigFunc {
	return func(c *configuration) error {
		if n <= 0 {
			return fmt.Errorf("MaxInterestingTokens must be positive")
		}

		c.MaxInterestingTokens = n
		return nil
	}
}

func TokenProbabilityBounds(min, max float64) ConfigFunc {
	return func(c *configuration) error {
		if min <= 0 || max >= 1 || min >= max {
			return fmt.Errorf("TokenProbabilityBounds must satisfy 0 < min < max < 1")
		}

		c.MinTokenProbability = min
		c.MaxTokenProbability = max
		return nil
	}
}

func NeutralTokenProbability(p float64) ConfigFunc {
	return func(c *configuration) error {
		if p <= 0 || p >= 1 {
			return fmt.Errorf("NeutralTokenProbability must be in (0, 1)")
		}

		c.NeutralTokenProbability = p
		return nil
	}
}

type configuration struct {
	MaxInterestingTokens    int
	MinTokenProbability     float64
	MaxTokenProbability     float64
	NeutralTokenProbability float64
}

func defaultConfiguration() *configuration {
	return &configuration{
		MaxInterestingTokens:    DefaultMaxInterestingTokens,
		MinTokenProbability:     DefaultMinTokenProbability,
		MaxTokenProbability:     DefaultMaxTokenProbability,
		NeutralTokenProbability: DefaultNeutralTokenProbability,
	}
}
