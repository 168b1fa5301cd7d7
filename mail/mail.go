// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	stdmail "net/mail"

	"github.com/emersion/go-message"
	"github.com/emersion/go-message/charset"
)

// ErrMalformed classifies parse, decode and serialization failures. They are
// scoped to a single message and never affect corpus state.
var ErrMalformed = errors.New("malformed message")

// Message is one parsed RFC 822 message. The original bytes are kept so the
// token extractor sees exactly what arrived; header mutations only become
// visible through WriteTo.
type Message struct {
	entity *message.Entity
	raw    []byte
	body   []byte
}

func Parse(raw []byte) (*Message, error) {
	entity, err := message.Read(bytes.NewReader(raw))
	if message.IsUnknownCharset(err) {
		// Unknown charsets only matter once a body part is decoded.
	} else if err != nil {
		return nil, malformedErr(fmt.Errorf("could not parse mail: %w", err))
	}

	body, err := io.ReadAll(entity.Body)
	if err != nil {
		return nil, malformedErr(fmt.Errorf("could not read mail body: %w", err))
	}

	return &Message{
		entity: entity,
		raw:    raw,
		body:   body,
	}, nil
}

// Raw returns the message bytes as received, before any annotation.
func (m *Message) Raw() []byte {
	return m.raw
}

func (m *Message) Size() int {
	return len(m.raw)
}

func (m *Message) Header(name string) string {
	return m.entity.Header.Get(name)
}

func (m *Message) HasHeader(name string) bool {
	return m.entity.Header.Has(name)
}

func (m *Message) SetHeader(name string, value string) {
	m.entity.Header.Set(name, value)
}

func (m *Message) Subject() (string, error) {
	dec := &mime.WordDecoder{
		CharsetReader: charset.Reader,
	}
	subject, err := dec.DecodeHeader(m.entity.Header.Get("Subject"))
	if err != nil {
		return "", malformedErr(fmt.Errorf("could not decode subject header: %w", err))
	}

	return subject, nil
}

// PrependToSubject puts marker in front of the current subject; a message
// without a subject ends up with the marker alone.
func (m *Message) PrependToSubject(marker string) error {
	subject, err := m.Subject()
	if err != nil {
		return err
	}

	if len(subject) == 0 {
		m.entity.Header.SetText("Subject", marker)
	} else {
		m.entity.Header.SetText("Subject", marker+" "+subject)
	}

	return nil
}

// WriteTo serializes the message with all header mutations applied. The body
// passes through unchanged, so Message-Id and body bytes survive a re-save.
func (m *Message) WriteTo(w io.Writer) error {
	m.entity.Body = bytes.NewReader(m.body)
	err := m.entity.WriteTo(w)
	if err != nil {
		return malformedErr(fmt.Errorf("could not write mail: %w", err))
	}

	return nil
}

// FromAddress returns the address in the From header, or an empty string
// when it is missing or unparseable.
func (m *Message) FromAddress() string {
	from, err := stdmail.ParseAddress(m.entity.Header.Get("From"))
	if err != nil {
		return ""
	}

	return from.Address
}

func (m *Message) RecipientAddresses() []string {
	recipients := []string{}
	for _, key := range []string{"To", "Cc"} {
		header := m.entity.Header.Get(key)
		if len(header) == 0 {
			continue
		}

		list, err := stdmail.ParseAddressList(header)
		if err != nil {
			continue
		}

		for _, a := range list {
			recipients = append(recipients, a.Address)
		}
	}

	return recipients
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}

func malformedErr(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformed, err)
}
