// SPDX-License-Identifier: GPL-3.0-or-later

// Package analysis contains the spam classification pipeline stages: the
// scoring mailet and the corpus training feeder.
package analysis

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/VienLe17081997/james-project/domain"
	"github.com/VienLe17081997/james-project/log"
	"github.com/VienLe17081997/james-project/mail"
	"github.com/VienLe17081997/james-project/mailet"

	"github.com/sirupsen/logrus"
)

const (
	// MailAttributeName carries the raw probability on the envelope. The
	// sieve stage writes its attributes under the DeliveryPath_ prefix,
	// the two namespaces never collide.
	MailAttributeName = "org.apache.james.spam.probability"

	DefaultHeaderName = "X-MessageIsSpamProbability"
	DefaultMaxSize    = 100000
)

// BayesianAnalysis scores each passing mail against the trained corpus and
// annotates it with the result. It never trains and never waits for a
// corpus rebuild.
type BayesianAnalysis struct {
	scorer       domain.SpamScorer
	extractor    domain.TokenExtractor
	localServers mailet.LocalServerList

	configuration *configuration

	l *logrus.Logger
}

func NewBayesianAnalysis(scorer domain.SpamScorer, extractor domain.TokenExtractor, localServers mailet.LocalServerList, configFunc ...ConfigFunc) (*BayesianAnalysis, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &BayesianAnalysis{
		scorer:        scorer,
		extractor:     extractor,
		localServers:  localServers,
		configuration: config,
		l:             log.Logger(log.LOG_ANALYSIS),
	}, nil
}

// Service scores one mail. Mails that already carry the result header pass
// through untouched, as do mails from local senders when IgnoreLocalSender
// is set. Oversized mails are annotated with probability 0 without being
// tokenized. Errors are scoped to the mail at hand and never affect corpus
// state.
func (ba *BayesianAnalysis) Service(m *mailet.Mail) error {
	if m.Message.HasHeader(ba.configuration.HeaderName) {
		// already analyzed
		return nil
	}

	if ba.configuration.IgnoreLocalSender && ba.isLocalSender(m.Sender) {
		return nil
	}

	probability := 0.0
	if m.Message.Size() < ba.configuration.MaxSize {
		tokens, err := ba.extractor.ExtractTokens(bytes.NewReader(m.Message.Raw()))
		if err != nil {
			return fmt.Errorf("%w: could not tokenize mail: %v", mail.ErrMalformed, err)
		}
		probability = ba.scorer.ComputeSpamProbability(tokens)
	}

	m.SetAttribute(MailAttributeName, probability)
	m.Message.SetHeader(ba.configuration.HeaderName, formatProbability(probability))

	if probability > 0.1 {
		ba.l.WithFields(logrus.Fields{"probability": formatProbability(probability), "sender": m.Sender, "recipients": m.Recipients}).Info("Mail classified as likely spam")

		if ba.configuration.TagSubject {
			subject, err := m.Message.Subject()
			if err != nil {
				return fmt.Errorf("could not tag subject: %w", err)
			}

			ba.l.WithFields(logrus.Fields{"subject": mail.ShortSubject(subject), "marker": subjectMarker(probability)}).Debug("Tagging subject")
			err = m.Message.PrependToSubject(subjectMarker(probability))
			if err != nil {
				return fmt.Errorf("could not tag subject: %w", err)
			}
		}
	}

	return nil
}

func (ba *BayesianAnalysis) isLocalSender(sender string) bool {
	if len(sender) == 0 {
		return false
	}

	parts := strings.SplitN(sender, "@", 2)
	if len(parts) != 2 {
		return false
	}

	return ba.localServers.IsLocalServer(parts[1])
}

func subjectMarker(probability float64) string {
	if probability > 0.9 {
		return " [" + formatProbability(probability) + " SPAM]"
	}
	return " [" + formatProbability(probability) + " spam]"
}

// formatProbability renders the probability as a percentage with at most
// two decimals: 0%, 99%, 12.35%.
func formatProbability(probability float64) string {
	formatted := strconv.FormatFloat(probability*100, 'f', 2, 64)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + "%"
}
