// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = parsed
	return nil
}

type Config struct {
	RepositoryPath string
	SchemaPath     string

	HeaderName        string
	IgnoreLocalSender bool
	MaxSize           int
	TagSubject        bool
	LocalDomains      []string

	ReloadInterval Duration

	MaxInterestingTokens    int
	MinTokenProbability     float64
	MaxTokenProbability     float64
	NeutralTokenProbability float64

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		SchemaPath:              "schema",
		HeaderName:              "X-MessageIsSpamProbability",
		MaxSize:                 100000,
		TagSubject:              true,
		ReloadInterval:          Duration{10 * time.Minute},
		MaxInterestingTokens:    15,
		MinTokenProbability:     0.01,
		MaxTokenProbability:     0.99,
		NeutralTokenProbability: 0.5,
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.RepositoryPath, "RepositoryPath must not be empty, set to a filename for the sqlite corpus database"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.SchemaPath, "SchemaPath must not be empty, set to the directory holding the sql migrations"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.HeaderName, "HeaderName must not be empty, set to the header that receives the spam probability"); err != nil {
		return err
	}

	if c.MaxSize <= 0 {
		return fmt.Errorf("MaxSize must be positive, mails at or above it are not scored")
	}

	if c.ReloadInterval.Duration <= 0 {
		return fmt.Errorf("ReloadInterval must be a positive duration such as \"10m\"")
	}

	if c.MaxInterestingTokens <= 0 {
		return fmt.Errorf("MaxInterestingTokens must be positive")
	}

	if c.MinTokenProbability <= 0 || c.MinTokenProbability >= c.MaxTokenProbability || c.MaxTokenProbability >= 1 {
		return fmt.Errorf("MinTokenProbability and MaxTokenProbability must satisfy 0 < min < max < 1")
	}

	if c.NeutralTokenProbability <= 0 || c.NeutralTokenProbability >= 1 {
		return fmt.Errorf("NeutralTokenProbability must be between 0 and 1 exclusive")
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
