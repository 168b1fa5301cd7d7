// SPDX-License-Identifier: GPL-3.0-or-later

// Package pipeline runs mails through an ordered mailet chain.
package pipeline

import (
	"time"

	"github.com/VienLe17081997/james-project/log"
	"github.com/VienLe17081997/james-project/mailet"

	"github.com/sirupsen/logrus"
)

const (
	BatchSize = 50
)

type Pipeline struct {
	mailets []mailet.Mailet

	l *logrus.Logger
}

func NewPipeline(mailets ...mailet.Mailet) *Pipeline {
	return &Pipeline{
		mailets: mailets,
		l:       log.Logger(log.LOG_PIPELINE),
	}
}

// Process runs the mail through the chain in order. A ghosted mail stops
// traversing the chain; the first failing mailet aborts processing for this
// mail and its error is returned.
func (pl *Pipeline) Process(m *mailet.Mail) error {
	for _, stage := range pl.mailets {
		if m.State == mailet.StateGhost {
			return nil
		}

		err := stage.Service(m)
		if err != nil {
			return err
		}
	}

	return nil
}

// ProcessAll runs every mail through the chain, at most concurrency mails at
// a time. Failures are logged and recorded in the returned slice by mail
// index, they never stop the other mails.
func (pl *Pipeline) ProcessAll(mails []*mailet.Mail, concurrency int) []error {
	results := make([]error, len(mails))

	offset := 0
	for _, batch := range partitionMails(mails, BatchSize) {
		start := time.Now()
		pl.l.WithFields(logrus.Fields{"batchsize": len(batch)}).Debug("Processing batch")

		semaphore := make(chan bool, concurrency)
		for i := 0; i < len(batch); i++ {
			semaphore <- true
			go func(index int) {
				results[offset+index] = pl.Process(batch[index])
				<-semaphore
			}(i)
		}

		for i := 0; i < concurrency; i++ {
			semaphore <- true
		}

		ok, failed := 0, 0
		for i, m := range batch {
			if results[offset+i] != nil {
				failed++
				pl.l.WithFields(logrus.Fields{"sender": m.Sender, "error": results[offset+i]}).Warn("Could not process mail")
			} else {
				ok++
			}
		}

		pl.l.WithFields(logrus.Fields{"duration": time.Since(start), "batchsize": len(batch), "ok": ok, "failed": failed}).Info("Processed batch")
		offset += len(batch)
	}

	return results
}

// taken from https://github.com/golang/go/wiki/SliceTricks
func partitionMails(mails []*mailet.Mail, partitionSize int) [][]*mailet.Mail {
	batches := make([][]*mailet.Mail, 0, (len(mails)+partitionSize-1)/partitionSize)

	for partitionSize < len(mails) {
		mails, batches = mails[partitionSize:], append(batches, mails[0:partitionSize:partitionSize])
	}
	batches = append(batches, mails)

	return batches
}
