// SPDX-License-Identifier: GPL-3.0-or-later

// Package loader keeps the published corpus in sync with the corpus store.
package loader

import (
	"fmt"
	"sync"
	"time"

	"github.com/VienLe17081997/james-project/bayes"
	"github.com/VienLe17081997/james-project/domain"
	"github.com/VienLe17081997/james-project/log"

	"github.com/sirupsen/logrus"
)

const DefaultReloadInterval = 10 * time.Minute

// CorpusLoader rebuilds the analyzer's corpus whenever the store reports
// changed training counts. All rebuilds are serialized by a build mutex; a
// manual Rebuild racing the background loop never interleaves with it.
// Scoring keeps reading the previously published corpus throughout.
type CorpusLoader struct {
	store    domain.CorpusStore
	analyzer *bayes.Analyzer
	interval time.Duration

	mu     sync.Mutex
	marker domain.ChangeMarker

	stopCh chan struct{}
	done   chan struct{}

	l *logrus.Logger
}

func NewCorpusLoader(store domain.CorpusStore, analyzer *bayes.Analyzer, interval time.Duration) *CorpusLoader {
	return &CorpusLoader{
		store:    store,
		analyzer: analyzer,
		interval: interval,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
		l:        log.Logger(log.LOG_CORPUS),
	}
}

// Rebuild reads a full training-count snapshot and publishes a new corpus.
// The change marker is fetched before the snapshot; a training write racing
// the read shows up again on the next tick.
func (cl *CorpusLoader) Rebuild() error {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	_, marker, err := cl.store.HasChangedSince(cl.marker)
	if err != nil {
		return fmt.Errorf("could not read change marker: %w", err)
	}

	return cl.rebuildLocked(marker)
}

func (cl *CorpusLoader) rebuildLocked(marker domain.ChangeMarker) error {
	counts, err := cl.store.ReadCounts()
	if err != nil {
		return fmt.Errorf("could not read training counts: %w", err)
	}

	cl.analyzer.Rebuild(counts)
	cl.marker = marker
	return nil
}

// Start launches the background refresh loop. One loop per loader.
func (cl *CorpusLoader) Start() {
	go cl.run()
}

// Stop ends the refresh loop between ticks and waits for it to exit; an
// in-flight rebuild finishes first. Only valid after Start.
func (cl *CorpusLoader) Stop() {
	close(cl.stopCh)
	<-cl.done
}

func (cl *CorpusLoader) run() {
	defer close(cl.done)

	ticker := time.NewTicker(cl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cl.refresh()
		case <-cl.stopCh:
			return
		}
	}
}

func (cl *CorpusLoader) refresh() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	changed, marker, err := cl.store.HasChangedSince(cl.marker)
	if err != nil {
		cl.l.WithFields(logrus.Fields{"error": err}).Warn("Could not check corpus store for changes, keeping current corpus")
		return
	}
	if !changed {
		return
	}

	err = cl.rebuildLocked(marker)
	if err != nil {
		cl.l.WithFields(logrus.Fields{"error": err}).Warn("Could not rebuild corpus, keeping current corpus")
		return
	}

	cl.l.WithFields(logrus.Fields{"tokens": cl.analyzer.Corpus().Size()}).Info("Corpus reloaded after training change")
}
