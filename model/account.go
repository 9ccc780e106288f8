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

	"github.com/blnkfinance/teller/validate"
	"github.com/shopspring/decimal"
)

// NumberAllocator hands out account numbers. Numbers are never reused.
type NumberAllocator interface {
	Next() int
}

// Account is a checking account. Its balance only changes through Apply, and
// never goes below zero.
type Account struct {
	branchCode       string
	number           int
	owner            *Person
	credential       string
	balance          decimal.Decimal
	withdrawals      int
	lastWithdrawalAt *time.Time
	openedAt         time.Time
	ledger           *Ledger
	clock            Clock
}

// Statement is a read-only view of an account at AsOf.
type Statement struct {
	OwnerName     string              `json:"owner_name"`
	BranchCode    string              `json:"branch_code"`
	AccountNumber int                 `json:"account_number"`
	AsOf          time.Time           `json:"as_of"`
	Records       []TransactionRecord `json:"records"`
	Balance       decimal.Decimal     `json:"balance"`
}

// OpenAccount opens an empty account for owner. The credential is checked
// before a number is drawn from alloc, so a rejected credential does not
// consume one.
func OpenAccount(owner *Person, credential string, alloc NumberAllocator, clock Clock) (*Account, error) {
	if !validate.Password(credential, CredentialLength) {
		return nil, ErrInvalidCredential
	}
	if clock == nil {
		clock = time.Now
	}
	return &Account{
		branchCode: BranchCode,
		number:     alloc.Next(),
		owner:      owner,
		credential: credential,
		balance:    decimal.Zero,
		openedAt:   clock(),
		ledger:     NewLedger(),
		clock:      clock,
	}, nil
}

func (a *Account) BranchCode() string       { return a.branchCode }
func (a *Account) Number() int              { return a.number }
func (a *Account) Owner() Person            { return *a.owner }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) WithdrawalCount() int     { return a.withdrawals }
func (a *Account) OpenedAt() time.Time      { return a.openedAt }
func (a *Account) Ledger() *Ledger          { return a.ledger }

// LastWithdrawalAt is nil until the first accepted withdrawal.
func (a *Account) LastWithdrawalAt() *time.Time { return a.lastWithdrawalAt }

// Authenticate reports whether candidate matches the account credential. It
// keeps no state between calls; attempt limits belong to the caller.
func (a *Account) Authenticate(candidate string) bool {
	return candidate == a.credential
}

// Apply validates the transaction against the account and, if accepted,
// updates the balance and appends to the ledger. A rejected transaction leaves
// the account untouched.
func (a *Account) Apply(txn Transaction) error {
	if err := txn.Validate(a); err != nil {
		return err
	}
	txn.applyTo(a, a.clock())
	return nil
}

func (a *Account) Statement() Statement {
	return Statement{
		OwnerName:     a.owner.FullName,
		BranchCode:    a.branchCode,
		AccountNumber: a.number,
		AsOf:          a.clock(),
		Records:       a.ledger.Snapshot(),
		Balance:       a.balance,
	}
}
