// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"fmt"

	"github.com/VienLe17081997/james-project/domain"
	"github.com/VienLe17081997/james-project/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

// Persistence is the sqlite-backed corpus store. The schema is supplied as
// opaque migration files in a configured directory and applied idempotently
// at connect time.
type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewPersistence(datasource string, schemaPath string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, storageErr(fmt.Errorf("could not open db: %w", err))
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, storageErr(fmt.Errorf("could not set journal mode: %w", err))
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, storageErr(fmt.Errorf("could not set synchronous mode: %w", err))
	}

	migrationSource := &migrate.FileMigrationSource{Dir: schemaPath}
	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return nil, storageErr(fmt.Errorf("could not migrate to newest version: %w", err))
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return storageErr(fmt.Errorf("could not close db: %w", err))
	}
	p.l.Info("Disconnected")
	return nil
}

// ReadCounts returns the training set in one transaction: the full snapshot
// or an error, never a mix.
func (p *Persistence) ReadCounts() (*domain.TrainingCounts, error) {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return nil, storageErr(fmt.Errorf("could not start transaction: %w", err))
	}

	counts := &domain.TrainingCounts{}

	counts.Ham, err = tokenCounts(tx, "bayes_ham")
	if err != nil {
		return nil, storageErr(txEnd(tx, err))
	}

	counts.Spam, err = tokenCounts(tx, "bayes_spam")
	if err != nil {
		return nil, storageErr(txEnd(tx, err))
	}

	counts.HamMessages, counts.SpamMessages, err = messageCounts(tx)
	if err != nil {
		return nil, storageErr(txEnd(tx, err))
	}

	err = txEnd(tx, nil)
	if err != nil {
		return nil, storageErr(err)
	}

	p.l.WithFields(logrus.Fields{"ham": len(counts.Ham), "spam": len(counts.Spam)}).Debug("Read training counts")

	return counts, nil
}

// HasChangedSince compares the current store contents against the marker of
// the last successful corpus build.
func (p *Persistence) HasChangedSince(marker domain.ChangeMarker) (bool, domain.ChangeMarker, error) {
	current := struct {
		HamTokens    int64 `db:"ham_tokens"`
		SpamTokens   int64 `db:"spam_tokens"`
		HamMessages  int64 `db:"ham_count"`
		SpamMessages int64 `db:"spam_count"`
	}{}

	err := p.db.Get(
		&current,
		`SELECT (SELECT COUNT(*) FROM bayes_ham) AS ham_tokens, (SELECT COUNT(*) FROM bayes_spam) AS spam_tokens, ham_count, spam_count FROM bayes_message_counts WHERE id = 1`,
	)
	if err != nil {
		return false, domain.ChangeMarker{}, storageErr(fmt.Errorf("could not query change marker: %w", err))
	}

	newMarker := domain.ChangeMarker{
		HamTokens:    current.HamTokens,
		SpamTokens:   current.SpamTokens,
		HamMessages:  current.HamMessages,
		SpamMessages: current.SpamMessages,
	}

	return newMarker != marker, newMarker, nil
}

// RecordTraining increments each token's occurrence count in the corpus
// picked by learnType and bumps the trained-message total, all in one
// transaction.
func (p *Persistence) RecordTraining(learnType domain.LearnType, tokens map[string]bool) error {
	var table, countColumn string
	switch learnType {
	case domain.LearnSpam:
		table, countColumn = "bayes_spam", "spam_count"
	case domain.LearnHam:
		table, countColumn = "bayes_ham", "ham_count"
	default:
		return fmt.Errorf("unsupported learn type %v", learnType)
	}

	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return storageErr(fmt.Errorf("could not start transaction: %w", err))
	}

	stmt, err := tx.Prepare(
		"INSERT INTO " + table + " (token, occurrences) VALUES (?, 1) ON CONFLICT(token) DO UPDATE SET occurrences = occurrences + 1",
	)
	if err != nil {
		return storageErr(txEnd(tx, fmt.Errorf("could not prepare statement: %w", err)))
	}

	for token := range tokens {
		_, err := stmt.Exec(token)
		if err != nil {
			return storageErr(txEnd(tx, fmt.Errorf("could not save token: %w", err)))
		}
	}

	_, err = tx.Exec("UPDATE bayes_message_counts SET " + countColumn + " = " + countColumn + " + 1 WHERE id = 1")
	if err != nil {
		return storageErr(txEnd(tx, fmt.Errorf("could not update message counts: %w", err)))
	}

	err = txEnd(tx, nil)
	if err != nil {
		return storageErr(err)
	}

	p.l.WithFields(logrus.Fields{"learntype": learnType, "tokens": len(tokens)}).Debug("Recorded training")

	return nil
}

// Duplicate rows per token cannot happen with the shipped schema, but foreign
// schemas are summed on read rather than trusted.
func tokenCounts(tx *sqlx.Tx, table string) (map[string]int64, error) {
	rows := []struct {
		Token       string `db:"token"`
		Occurrences int64  `db:"occurrences"`
	}{}

	err := tx.Select(&rows, "SELECT token, SUM(occurrences) AS occurrences FROM "+table+" GROUP BY token")
	if err != nil {
		return nil, fmt.Errorf("could not query %s counts: %w", table, err)
	}

	counts := map[string]int64{}
	for _, r := range rows {
		counts[r.Token] = r.Occurrences
	}

	return counts, nil
}

func messageCounts(tx *sqlx.Tx) (int64, int64, error) {
	mc := struct {
		HamCount  int64 `db:"ham_count"`
		SpamCount int64 `db:"spam_count"`
	}{}

	err := tx.Get(&mc, `SELECT ham_count, spam_count FROM bayes_message_counts WHERE id = 1`)
	if err != nil {
		return 0, 0, fmt.Errorf("could not query message counts: %w", err)
	}

	return mc.HamCount, mc.SpamCount, nil
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}
