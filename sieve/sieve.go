// SPDX-License-Identifier: GPL-3.0-or-later

// Package sieve runs per-recipient delivery scripts and drops recipients
// whose script took over delivery.
package sieve

//go:generate mockgen -destination=sieve_mocks_test.go -package=sieve -source sieve.go
import (
	"github.com/VienLe17081997/james-project/log"
	"github.com/VienLe17081997/james-project/mailet"

	"github.com/sirupsen/logrus"
)

// DeliveryPathPrefix marks per-recipient delivery decisions made by a
// script. The classification attribute lives in a different namespace.
const DeliveryPathPrefix = "DeliveryPath_"

// ScriptExecutor runs the stored script of one recipient against a mail.
// The boolean reports whether the script executed successfully and decided
// local delivery.
type ScriptExecutor interface {
	Execute(recipient string, mail *mailet.Mail) (bool, error)
}

// UsersRepository resolves delivery addresses to stored usernames.
type UsersRepository interface {
	Username(address string) (string, error)
}

type Sieve struct {
	executor ScriptExecutor
	users    UsersRepository

	l *logrus.Logger
}

func NewSieve(executor ScriptExecutor, users UsersRepository) *Sieve {
	return &Sieve{
		executor: executor,
		users:    users,
		l:        log.Logger(log.LOG_SIEVE),
	}
}

// Service lets each recipient's script decide delivery. A recipient whose
// script executed and recorded no DeliveryPath_ attribute was fully handled
// by the script and is dropped from the envelope; script errors keep the
// recipient (fail open). A mail with no recipients left is ghosted.
func (s *Sieve) Service(m *mailet.Mail) error {
	kept := []string{}
	for _, recipient := range m.Recipients {
		if s.keepRecipient(m, recipient) {
			kept = append(kept, recipient)
		}
	}

	m.SetRecipients(kept)
	if len(kept) == 0 {
		m.Ghost()
	}

	return nil
}

func (s *Sieve) keepRecipient(m *mailet.Mail, recipient string) bool {
	executed, err := s.executor.Execute(recipient, m)
	if err != nil {
		s.l.WithFields(logrus.Fields{"recipient": recipient, "error": err}).Warn("Script failed, keeping recipient for normal delivery")
		return true
	}

	if !executed {
		return true
	}

	_, hasDeliveryPath := m.Attribute(DeliveryPathPrefix + s.username(recipient))
	return hasDeliveryPath
}

func (s *Sieve) username(recipient string) string {
	username, err := s.users.Username(recipient)
	if err != nil {
		s.l.WithFields(logrus.Fields{"recipient": recipient, "error": err}).Debug("Could not resolve username, using raw address")
		return recipient
	}

	return username
}
