// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	"io"

	"github.com/emersion/go-mbox"
)

var mboxSeparator = []byte("From ")

// IsMbox reports whether raw looks like an mbox stream rather than a single
// RFC 822 message.
func IsMbox(raw []byte) bool {
	return bytes.HasPrefix(raw, mboxSeparator)
}

// SplitMbox splits an mbox stream into the raw bytes of its messages, without
// the separator lines.
func SplitMbox(raw []byte) ([][]byte, error) {
	reader := mbox.NewReader(bytes.NewReader(raw))

	mails := [][]byte{}
	for {
		r, err := reader.NextMessage()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformedErr(fmt.Errorf("could not read mbox stream: %w", err))
		}

		m, err := io.ReadAll(r)
		if err != nil {
			return nil, malformedErr(fmt.Errorf("could not read mbox message: %w", err))
		}

		mails = append(mails, m)
	}

	return mails, nil
}
