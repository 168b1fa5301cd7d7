// SPDX-License-Identifier: GPL-3.0-or-later
package bayes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxInterestingTokens(t *testing.T) {
	tests := []struct {
		name          string
		input         int
		expected      *configuration
		expectedError error
	}{
		{"ok", 5, &configuration{MaxInterestingTokens: 5}, nil},
		{"zero", 0, nil, fmt.Errorf("MaxInterestingTokens must be positive")},
		{"negative", -3, nil, fmt.Errorf("MaxInterestingTokens must be positive")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := MaxInterestingTokens(tc.input)(cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestTokenProbabilityBounds(t *testing.T) {
	tests := []struct {
		name          string
		min           float64
		max           float64
		expected      *configuration
		expectedError error
	}{
		{"ok", 0.01, 0.99, &configuration{MinTokenProbability: 0.01, MaxTokenProbability: 0.99}, nil},
		{"zero min", 0, 0.99, nil, fmt.Errorf("TokenProbabilityBounds must satisfy 0 < min < max < 1")},
		{"max too large", 0.01, 1, nil, fmt.Errorf("TokenProbabilityBounds must satisfy 0 < min < max < 1")},
		{"inverted", 0.6, 0.4, nil, fmt.Errorf("TokenProbabilityBounds must satisfy 0 < min < max < 1")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := TokenProbabilityBounds(tc.min, tc.max)(cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestNeutralTokenProbability(t *testing.T) {
	tests := []struct {
		name          string
		input         float64
		expected      *configuration
		expectedError error
	}{
		{"ok", 0.4, &configuration{NeutralTokenProbability: 0.4}, nil},
		{"zero", 0, nil, fmt.Errorf("NeutralTokenProbability must be in (0, 1)")},
		{"one", 1, nil, fmt.Errorf("NeutralTokenProbability must be in (0, 1)")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := NeutralTokenProbability(tc.input)(cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestDefaultConfiguration(t *testing.T) {
	assert.Equal(
		t,
		&configuration{
			MaxInterestingTokens:    15,
			MinTokenProbability:     0.01,
			MaxTokenProbability:     0.99,
			NeutralTokenProbability: 0.5,
		},
		defaultConfiguration(),
	)
}
