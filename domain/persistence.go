// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "errors"

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . CorpusStore

// ErrStorageUnavailable classifies every corpus store failure. Fatal when it
// happens at startup, logged and retried when it happens during a scheduled
// refresh.
var ErrStorageUnavailable = errors.New("corpus store unavailable")

type LearnType string

const (
	LearnSpam = LearnType("spam")
	LearnHam  = LearnType("ham")
)

// TrainingCounts is one consistent snapshot of the persisted training set:
// per-token occurrence counts for both corpora plus the number of messages
// each corpus was trained from.
type TrainingCounts struct {
	Ham  map[string]int64
	Spam map[string]int64

	HamMessages  int64
	SpamMessages int64
}

// ChangeMarker summarizes the store contents for cheap change detection.
// Equal markers mean no corpus rebuild is necessary.
type ChangeMarker struct {
	HamTokens    int64
	SpamTokens   int64
	HamMessages  int64
	SpamMessages int64
}

type CorpusStore interface {
	Close() error
	ReadCounts() (*TrainingCounts, error)
	HasChangedSince(marker ChangeMarker) (bool, ChangeMarker, error)
	RecordTraining(learnType LearnType, tokens map[string]bool) error
}
