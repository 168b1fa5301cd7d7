// SPDX-License-Identifier: GPL-3.0-or-later
package analysis

import (
	"bytes"
	"fmt"

	"github.com/VienLe17081997/james-project/domain"
	"github.com/VienLe17081997/james-project/log"
	"github.com/VienLe17081997/james-project/mail"
	"github.com/VienLe17081997/james-project/mailet"

	"github.com/sirupsen/logrus"
)

// BayesianAnalysisFeeder consumes every mail it sees as training material
// for the corpus configured via FeedAs. The mail is ghosted before anything
// else; it is training input, never a delivery.
type BayesianAnalysisFeeder struct {
	store     domain.CorpusStore
	extractor domain.TokenExtractor

	configuration *configuration

	l *logrus.Logger
}

func NewBayesianAnalysisFeeder(store domain.CorpusStore, extractor domain.TokenExtractor, configFunc ...ConfigFunc) (*BayesianAnalysisFeeder, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	if len(config.FeedAs) == 0 {
		return nil, fmt.Errorf("error applying configuration: FeedAs is required")
	}

	return &BayesianAnalysisFeeder{
		store:         store,
		extractor:     extractor,
		configuration: config,
		l:             log.Logger(log.LOG_ANALYSIS),
	}, nil
}

func (f *BayesianAnalysisFeeder) Service(m *mailet.Mail) error {
	m.Ghost()

	if m.Message.Size() > f.configuration.MaxSize {
		f.l.WithFields(logrus.Fields{"size": m.Message.Size(), "maxsize": f.configuration.MaxSize}).Info("Ignoring oversized mail for training")
		return nil
	}

	tokens, err := f.extractor.ExtractTokens(bytes.NewReader(m.Message.Raw()))
	if err != nil {
		return fmt.Errorf("%w: could not tokenize mail: %v", mail.ErrMalformed, err)
	}

	err = f.store.RecordTraining(f.configuration.FeedAs, tokens)
	if err != nil {
		return fmt.Errorf("could not record %s training: %w", f.configuration.FeedAs, err)
	}

	f.l.WithFields(logrus.Fields{"learntype": f.configuration.FeedAs, "tokens": len(tokens)}).Info("Fed mail into corpus")
	return nil
}
