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
package model

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is one accepted movement as it appears on a statement.
type TransactionRecord struct {
	ID        string          `json:"id"`
	Kind      TransactionKind `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// Ledger is the append-only history of a single account. It keeps records
// in the order they were appended and never computes a balance.
type Ledger struct {
	records []TransactionRecord
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(record TransactionRecord) {
	l.records = append(l.records, record)
}

// Records yields the history in insertion order. The sequence can be ranged
// over any number of times.
func (l *Ledger) Records() iter.Seq[TransactionRecord] {
	return func(yield func(TransactionRecord) bool) {
		for _, r := range l.records {
			if !yield(r) {
				return
			}
		}
	}
}

func (l *Ledger) Len() int {
	return len(l.records)
}

// Snapshot returns a copy of the history.
func (l *Ledger) Snapshot() []TransactionRecord {
	out := make([]TransactionRecord, len(l.records))
	copy(out, l.records)
	return out
}
