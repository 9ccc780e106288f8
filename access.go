/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package teller

import (
	"github.com/cenkalti/backoff/v4"

	"github.com/blnkfinance/teller/model"
)

// CredentialPrompt supplies one credential candidate per attempt. remaining
// is the number of attempts left including the current one. An error stops
// the protocol immediately and is returned to the caller unchanged.
type CredentialPrompt func(remaining int) (string, error)

// Credentials returns a prompt that answers with candidates in order, then
// with empty strings once they run out.
func Credentials(candidates ...string) CredentialPrompt {
	next := 0
	return func(int) (string, error) {
		if next >= len(candidates) {
			return "", nil
		}
		candidate := candidates[next]
		next++
		return candidate, nil
	}
}

type accessState int

const (
	stateSelecting accessState = iota
	stateAuthenticating
	stateAuthenticated
	stateRejected
)

func (s accessState) String() string {
	switch s {
	case stateSelecting:
		return "selecting"
	case stateAuthenticating:
		return "authenticating"
	case stateAuthenticated:
		return "authenticated"
	case stateRejected:
		return "rejected"
	}
	return "unknown"
}

// accessSession walks one access attempt from account selection to a
// terminal state.
type accessSession struct {
	state     accessState
	remaining int
	account   *model.Account
}

func newAccessSession() *accessSession {
	return &accessSession{state: stateSelecting, remaining: model.MaxAuthenticationTries}
}

func (s *accessSession) selected(account *model.Account) {
	s.account = account
	s.state = stateAuthenticating
}

func (s *accessSession) try(candidate string) bool {
	s.remaining--
	if s.account.Authenticate(candidate) {
		s.state = stateAuthenticated
		return true
	}
	if s.remaining == 0 {
		s.state = stateRejected
	}
	return false
}

// AuthenticateAndSelect picks accountNumber among the accounts of nationalID
// and checks up to three credentials from prompt against it.
func (b *Bank) AuthenticateAndSelect(nationalID string, accountNumber int, prompt CredentialPrompt) (*model.Account, error) {
	session := newAccessSession()
	if err := b.selectAccount(session, nationalID, accountNumber); err != nil {
		session.state = stateRejected
		return nil, err
	}

	policy := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(model.MaxAuthenticationTries-1))
	err := backoff.Retry(func() error {
		candidate, err := prompt(session.remaining)
		if err != nil {
			session.state = stateRejected
			return backoff.Permanent(err)
		}
		if session.try(candidate) {
			return nil
		}
		return model.ErrAuthenticationFailed
	}, policy)
	if err != nil {
		return nil, err
	}
	return session.account, nil
}

func (b *Bank) selectAccount(session *accessSession, nationalID string, accountNumber int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	numbers := b.byOwner[nationalID]
	if len(numbers) == 0 {
		return model.ErrNoAccountsForPerson
	}
	for _, n := range numbers {
		if n == accountNumber {
			session.selected(b.accounts[n])
			return nil
		}
	}
	return model.ErrAccountNotFound
}
