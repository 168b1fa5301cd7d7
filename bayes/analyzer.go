// SPDX-License-Identifier: GPL-3.0-or-later
package bayes

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"github.com/VienLe17081997/james-project/domain"
	"github.com/VienLe17081997/james-project/log"

	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxInterestingTokens    = 15
	DefaultMinTokenProbability     = 0.01
	DefaultMaxTokenProbability     = 0.99
	DefaultNeutralTokenProbability = 0.5
)

// Analyzer builds Corpus snapshots from training counts and scores token
// sets against the published snapshot. A rebuild publishes its result with
// one atomic swap and never blocks scoring.
type Analyzer struct {
	corpus atomic.Pointer[Corpus]

	configuration *configuration

	l *logrus.Logger
}

func NewAnalyzer(configFunc ...ConfigFunc) (*Analyzer, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	analyzer := &Analyzer{
		configuration: config,
		l:             log.Logger(log.LOG_ANALYSIS),
	}
	analyzer.corpus.Store(&Corpus{probabilities: map[string]float64{}})

	return analyzer, nil
}

// Rebuild computes per-token probabilities from counts and publishes the
// result as the new Corpus. Tokens without a single occurrence are left
// out; the scorer treats them as neutral.
func (a *Analyzer) Rebuild(counts *domain.TrainingCounts) {
	tokens := map[string]bool{}
	for token := range counts.Ham {
		tokens[token] = true
	}
	for token := range counts.Spam {
		tokens[token] = true
	}

	probabilities := make(map[string]float64, len(tokens))
	for token := range tokens {
		hamCount := float64(counts.Ham[token])
		spamCount := float64(counts.Spam[token])
		if hamCount < 0 {
			hamCount = 0
		}
		if spamCount < 0 {
			spamCount = 0
		}
		if hamCount+spamCount == 0 {
			continue
		}

		probabilities[token] = a.tokenProbability(counts, hamCount, spamCount)
	}

	a.corpus.Store(&Corpus{probabilities: probabilities, loadedAt: time.Now()})
	a.l.WithFields(logrus.Fields{"tokens": len(probabilities), "hammessages": counts.HamMessages, "spammessages": counts.SpamMessages}).Info("Published new corpus")
}

// Occurrence counts are normalized per trained message when message totals
// were recorded; counts imported without totals are normalized against each
// other directly.
func (a *Analyzer) tokenProbability(counts *domain.TrainingCounts, hamCount, spamCount float64) float64 {
	hamRate, spamRate := hamCount, spamCount
	if counts.HamMessages > 0 && counts.SpamMessages > 0 {
		hamRate = math.Min(1, hamCount/float64(counts.HamMessages))
		spamRate = math.Min(1, spamCount/float64(counts.SpamMessages))
	}

	p := spamRate / (spamRate + hamRate)
	if p < a.configuration.MinTokenProbability {
		p = a.configuration.MinTokenProbability
	}
	if p > a.configuration.MaxTokenProbability {
		p = a.configuration.MaxTokenProbability
	}

	return p
}

type scoredToken struct {
	Token       string
	Probability float64
	Strength    float64
}

// ComputeSpamProbability scores a token set against the published Corpus.
// Unknown tokens count as neutral; only the MaxInterestingTokens tokens
// farthest from neutral enter the combination. An empty or fully neutral
// set scores 0.
func (a *Analyzer) ComputeSpamProbability(tokens map[string]bool) float64 {
	corpus := a.corpus.Load()
	neutral := a.configuration.NeutralTokenProbability

	scored := make([]scoredToken, 0, len(tokens))
	for token := range tokens {
		p, known := corpus.Probability(token)
		if !known {
			p = neutral
		}

		strength := math.Abs(p - neutral)
		if strength == 0 {
			continue
		}
		scored = append(scored, scoredToken{Token: token, Probability: p, Strength: strength})
	}

	if len(scored) == 0 {
		return 0
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Strength != scored[j].Strength {
			return scored[i].Strength > scored[j].Strength
		}
		return scored[i].Token < scored[j].Token
	})
	if len(scored) > a.configuration.MaxInterestingTokens {
		scored = scored[:a.configuration.MaxInterestingTokens]
	}

	// Combine in log space, a plain product underflows on long runs of
	// small probabilities.
	logSpam, logHam := 0.0, 0.0
	for _, s := range scored {
		logSpam += math.Log(s.Probability)
		logHam += math.Log(1 - s.Probability)
	}

	return 1 / (1 + math.Exp(logHam-logSpam))
}

// Corpus returns the currently published snapshot.
func (a *Analyzer) Corpus() *Corpus {
	return a.corpus.Load()
}
