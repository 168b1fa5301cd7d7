// SPDX-License-Identifier: GPL-3.0-or-later
package analysis

import (
	"fmt"
	"testing"

	"github.com/VienLe17081997/james-project/domain"

	"github.com/stretchr/testify/assert"
)

func TestHeaderName(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      *configuration
		expectedError error
	}{
		{"ok", "X-Spam-Probability", &configuration{HeaderName: "X-Spam-Probability"}, nil},
		{"empty", "", nil, fmt.Errorf("HeaderName cannot be empty")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := HeaderName(tc.input)(cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestIgnoreLocalSender(t *testing.T) {
	cfg := &configuration{}
	err := IgnoreLocalSender()(cfg)

	assert.Equal(t, cfg, &configuration{IgnoreLocalSender: true})
	assert.Nil(t, err)
}

func TestMaxSize(t *testing.T) {
	tests := []struct {
		name          string
		input         int
		expected      *configuration
		expectedError error
	}{
		{"ok", 50000, &configuration{MaxSize: 50000}, nil},
		{"zero", 0, nil, fmt.Errorf("MaxSize must be positive")},
		{"negative", -1, nil, fmt.Errorf("MaxSize must be positive")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := MaxSize(tc.input)(cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestTagSubject(t *testing.T) {
	cfg := defaultConfiguration()
	assert.True(t, cfg.TagSubject)

	err := TagSubject(false)(cfg)
	assert.False(t, cfg.TagSubject)
	assert.Nil(t, err)
}

func TestFeedAs(t *testing.T) {
	tests := []struct {
		name          string
		input         domain.LearnType
		expected      *configuration
		expectedError error
	}{
		{"ham", domain.LearnHam, &configuration{FeedAs: domain.LearnHam}, nil},
		{"spam", domain.LearnSpam, &configuration{FeedAs: domain.LearnSpam}, nil},
		{"unsupported", domain.LearnType("junk"), nil, fmt.Errorf("FeedAs must be ham or spam")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := FeedAs(tc.input)(cfg)
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
			HeaderName: "X-MessageIsSpamProbability",
			MaxSize:    100000,
			TagSubject: true,
		},
		defaultConfiguration(),
	)
}
