// SPDX-License-Identifier: GPL-3.0-or-later
package analysis

import (
	"fmt"

	"github.com/VienLe17081997/james-project/domain"
)

type ConfigFunc func(c *configuration) error

func HeaderName(name string) ConfigFunc {
	return func(c *configuration) error {
		if len(name) == 0 {
			return fmt.Errorf("HeaderName cannot be empty")
		}

		c.HeaderName = name
		return nil
	}
}

func IgnoreLocalSender() ConfigFunc {
	return func(c *configuration) error {
		c.IgnoreLocalSender = true

		return nil
	}
}

func MaxSize(maxSize int) ConfigFunc {
	return func(c *configuration) error {
		if maxSize <= 0 {
			return fmt.Errorf("MaxSize must be positive")
		}

		c.MaxSize = maxSize
		return nil
	}
}

func TagSubject(enabled bool) ConfigFunc {
	return func(c *configuration) error {
		c.TagSubject = enabled

		return nil
	}
}

func FeedAs(learnType domain.LearnType) ConfigFunc {
	return func(c *configuration) error {
		if learnType != domain.LearnHam && learnType != domain.LearnSpam {
			return fmt.Errorf("FeedAs must be %s or %s", domain.LearnHam, domain.LearnSpam)
		}

		c.FeedAs = learnType
		return nil
	}
}

type configuration struct {
	HeaderName        string
	IgnoreLocalSender bool
	MaxSize           int
	TagSubject        bool

	FeedAs domain.LearnType
}

func defaultConfiguration() *configuration {
	return &configuration{
		HeaderName: DefaultHeaderName,
		MaxSize:    DefaultMaxSize,
		TagSubject: true,
	}
}
