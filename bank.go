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

// Package teller is the single-branch bank: it registers customers, opens
// checking accounts for them and guards access to those accounts.
package teller

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/blnkfinance/teller/model"
)

// Bank is the root aggregate. It owns every Person and Account for the
// lifetime of the process.
type Bank struct {
	mu       sync.Mutex
	people   map[string]*model.Person
	order    []string
	accounts map[int]*model.Account
	byOwner  map[string][]int
	seq      accountSequence
	clock    model.Clock
}

// Option configures a Bank.
type Option func(*Bank)

// WithClock replaces the wall clock used for registration dates, the age
// check and ledger timestamps.
func WithClock(clock model.Clock) Option {
	return func(b *Bank) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// NewBank initializes an empty bank.
func NewBank(opts ...Option) *Bank {
	b := &Bank{
		people:   make(map[string]*model.Person),
		accounts: make(map[int]*model.Account),
		byOwner:  make(map[string][]int),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Now reads the bank's clock. Input checked ahead of RegisterPerson must be
// judged against the same day.
func (b *Bank) Now() time.Time {
	return b.clock()
}

// accountSequence hands out account numbers starting at 1.
type accountSequence struct {
	last atomic.Int64
}

func (s *accountSequence) Next() int {
	return int(s.last.Add(1))
}
