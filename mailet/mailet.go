// SPDX-License-Identifier: GPL-3.0-or-later

// Package mailet carries mail through a processing pipeline. A Mailet
// inspects or mutates one Mail at a time; a mailet that fully consumes a
// mail ghosts it so no later stage delivers it.
package mailet

//go:generate mockgen -destination=mocks/mailet.go -package=mocks . Mailet
import (
	"github.com/VienLe17081997/james-project/mail"
)

// Processing states.
const (
	StateRoot  = "root"
	StateGhost = "ghost"
)

// Mail is the envelope a mailet operates on: sender and recipients as given
// by the transport, the parsed message, and free-form attributes that let
// mailets pass results downstream.
type Mail struct {
	Sender     string
	Recipients []string
	Message    *mail.Message
	State      string

	attributes map[string]any
}

func NewMail(sender string, recipients []string, message *mail.Message) *Mail {
	return &Mail{
		Sender:     sender,
		Recipients: recipients,
		Message:    message,
		State:      StateRoot,
	}
}

// Attribute returns the named attribute and whether it is set.
func (m *Mail) Attribute(name string) (any, bool) {
	value, ok := m.attributes[name]
	return value, ok
}

func (m *Mail) SetAttribute(name string, value any) {
	if m.attributes == nil {
		m.attributes = map[string]any{}
	}
	m.attributes[name] = value
}

func (m *Mail) SetRecipients(recipients []string) {
	m.Recipients = recipients
}

// Ghost marks the mail as consumed.
func (m *Mail) Ghost() {
	m.State = StateGhost
}

// Mailet is one pipeline stage.
type Mailet interface {
	Service(m *Mail) error
}
