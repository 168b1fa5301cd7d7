// SPDX-License-Identifier: GPL-3.0-or-later
package sieve

import (
	"fmt"
	"io"
	"testing"

	"github.com/VienLe17081997/james-project/log"
	"github.com/VienLe17081997/james-project/mailet"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewSieve(t *testing.T) {
	log.InitLogging("error")

	s := NewSieve(nil, nil)
	assert.NotNil(t, s)
	assert.NotNil(t, s.l)
}

func TestServiceDropsScriptedRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := NewMockScriptExecutor(ctrl)
	users := NewMockUsersRepository(ctrl)
	m := mailet.NewMail("alice@example.com", []string{"bob@example.net"}, nil)

	executor.EXPECT().Execute(gomock.Eq("bob@example.net"), gomock.Eq(m)).Return(true, nil)
	users.EXPECT().Username(gomock.Eq("bob@example.net")).Return("bob", nil)

	assert.NoError(t, newTestSieve(executor, users).Service(m))

	assert.Empty(t, m.Recipients)
	assert.Equal(t, mailet.StateGhost, m.State)
}

func TestServiceKeepsRecipientWithDeliveryPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := NewMockScriptExecutor(ctrl)
	users := NewMockUsersRepository(ctrl)
	m := mailet.NewMail("alice@example.com", []string{"bob@example.net"}, nil)
	m.SetAttribute("DeliveryPath_bob", "/var/mail/bob/INBOX")

	executor.EXPECT().Execute(gomock.Eq("bob@example.net"), gomock.Eq(m)).Return(true, nil)
	users.EXPECT().Username(gomock.Eq("bob@example.net")).Return("bob", nil)

	assert.NoError(t, newTestSieve(executor, users).Service(m))

	assert.Equal(t, []string{"bob@example.net"}, m.Recipients)
	assert.Equal(t, mailet.StateRoot, m.State)
}

func TestServiceFailsOpenOnScriptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := NewMockScriptExecutor(ctrl)
	users := NewMockUsersRepository(ctrl)
	m := mailet.NewMail("alice@example.com", []string{"bob@example.net"}, nil)

	executor.EXPECT().Execute(gomock.Eq("bob@example.net"), gomock.Eq(m)).Return(false, fmt.Errorf("script syntax error"))

	assert.NoError(t, newTestSieve(executor, users).Service(m))

	assert.Equal(t, []string{"bob@example.net"}, m.Recipients)
	assert.Equal(t, mailet.StateRoot, m.State)
}

func TestServiceKeepsRecipientWithoutScript(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := NewMockScriptExecutor(ctrl)
	users := NewMockUsersRepository(ctrl)
	m := mailet.NewMail("alice@example.com", []string{"bob@example.net"}, nil)

	executor.EXPECT().Execute(gomock.Eq("bob@example.net"), gomock.Eq(m)).Return(false, nil)

	assert.NoError(t, newTestSieve(executor, users).Service(m))

	assert.Equal(t, []string{"bob@example.net"}, m.Recipients)
	assert.Equal(t, mailet.StateRoot, m.State)
}

func TestServiceMixedRecipients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := NewMockScriptExecutor(ctrl)
	users := NewMockUsersRepository(ctrl)
	m := mailet.NewMail("alice@example.com", []string{"bob@example.net", "carol@example.net"}, nil)

	executor.EXPECT().Execute(gomock.Eq("bob@example.net"), gomock.Eq(m)).Return(true, nil)
	users.EXPECT().Username(gomock.Eq("bob@example.net")).Return("bob", nil)
	executor.EXPECT().Execute(gomock.Eq("carol@example.net"), gomock.Eq(m)).Return(false, fmt.Errorf("timeout"))

	assert.NoError(t, newTestSieve(executor, users).Service(m))

	assert.Equal(t, []string{"carol@example.net"}, m.Recipients)
	assert.Equal(t, mailet.StateRoot, m.State)
}

func TestServiceUsernameFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := NewMockScriptExecutor(ctrl)
	users := NewMockUsersRepository(ctrl)
	m := mailet.NewMail("alice@example.com", []string{"carol@example.net"}, nil)
	m.SetAttribute("DeliveryPath_carol@example.net", "INBOX")

	executor.EXPECT().Execute(gomock.Eq("carol@example.net"), gomock.Eq(m)).Return(true, nil)
	users.EXPECT().Username(gomock.Eq("carol@example.net")).Return("", fmt.Errorf("no such user"))

	assert.NoError(t, newTestSieve(executor, users).Service(m))

	assert.Equal(t, []string{"carol@example.net"}, m.Recipients)
}

func TestServiceIgnoresClassificationAttributes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := NewMockScriptExecutor(ctrl)
	users := NewMockUsersRepository(ctrl)
	m := mailet.NewMail("alice@example.com", []string{"bob@example.net"}, nil)
	m.SetAttribute("org.apache.james.spam.probability", 0.99)

	executor.EXPECT().Execute(gomock.Eq("bob@example.net"), gomock.Eq(m)).Return(true, nil)
	users.EXPECT().Username(gomock.Eq("bob@example.net")).Return("bob", nil)

	assert.NoError(t, newTestSieve(executor, users).Service(m))

	assert.Empty(t, m.Recipients)
	assert.Equal(t, mailet.StateGhost, m.State)
}

func newTestSieve(executor ScriptExecutor, users UsersRepository) *Sieve {
	return &Sieve{
		executor: executor,
		users:    users,
		l:        nullLogger(),
	}
}

func nullLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
