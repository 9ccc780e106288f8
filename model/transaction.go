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
	"time"

	"github.com/shopspring/decimal"
	"github.com/wacul/ptr"
)

type TransactionKind string

const (
	KindDeposit    TransactionKind = "Deposit"
	KindWithdrawal TransactionKind = "Withdrawal"
)

// Transaction is an intent to move money in or out of an account. The set of
// implementations is closed: Deposit and Withdrawal.
type Transaction interface {
	Kind() TransactionKind
	Amount() decimal.Decimal
	// Validate reports why the transaction cannot be applied to the account,
	// or nil if it can. It never mutates the account.
	Validate(account *Account) error
	applyTo(account *Account, at time.Time)
}

type Deposit struct {
	amount decimal.Decimal
}

func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

func (d Deposit) Kind() TransactionKind   { return KindDeposit }
func (d Deposit) Amount() decimal.Decimal { return d.amount }

func (d Deposit) Validate(_ *Account) error {
	if !d.amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func (d Deposit) applyTo(account *Account, at time.Time) {
	account.balance = account.balance.Add(d.amount)
	account.ledger.Append(newRecord(KindDeposit, d.amount, at))
}

type Withdrawal struct {
	amount decimal.Decimal
}

func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

func (w Withdrawal) Kind() TransactionKind   { return KindWithdrawal }
func (w Withdrawal) Amount() decimal.Decimal { return w.amount }

// Validate checks the withdrawal rules in a fixed order so that exactly one
// cause is reported when several apply.
func (w Withdrawal) Validate(account *Account) error {
	switch {
	case !w.amount.IsPositive():
		return ErrInvalidAmount
	case w.amount.GreaterThan(account.balance):
		return ErrInsufficientFunds
	case w.amount.GreaterThan(WithdrawalLimit):
		return ErrExceedsWithdrawalLimit
	case account.withdrawals >= MaxDailyWithdrawals:
		return ErrDailyWithdrawalLimit
	}
	return nil
}

func (w Withdrawal) applyTo(account *Account, at time.Time) {
	account.balance = account.balance.Sub(w.amount)
	account.withdrawals++
	account.lastWithdrawalAt = ptr.Time(at)
	account.ledger.Append(newRecord(KindWithdrawal, w.amount, at))
}

func newRecord(kind TransactionKind, amount decimal.Decimal, at time.Time) TransactionRecord {
	return TransactionRecord{
		ID:        GenerateUUIDWithSuffix("txn"),
		Kind:      kind,
		Amount:    amount,
		Timestamp: at,
	}
}
