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

package shell

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/blnkfinance/teller/model"
	"github.com/blnkfinance/teller/validate"
)

func (s *Shell) accessAccount(ctx context.Context) error {
	s.printf("\n=== Account Access ===\n")

	nationalID, err := s.prompt("Enter your national ID: ")
	if err != nil {
		return err
	}

	ctx, span := s.tracer.Start(ctx, "AccessAccount", trace.WithAttributes(attribute.String("national_id", nationalID)))
	defer span.End()

	fields := logrus.Fields{"national_id": nationalID}
	accounts := s.bank.AccountsFor(nationalID)
	if len(accounts) == 0 {
		s.reject(span, fields, "login rejected", model.ErrNoAccountsForPerson)
		return nil
	}

	s.printf("\nSelect an account:\n")
	for _, a := range accounts {
		s.printf("[%d] Branch: %s | Account: %d\n", a.Number(), a.BranchCode(), a.Number())
	}

	raw, err := s.prompt("\nEnter the account number: ")
	if err != nil {
		return err
	}
	// an unparsable answer selects no account
	number, _ := strconv.Atoi(raw)
	fields["account"] = number
	span.SetAttributes(attribute.Int("account.number", number))

	account, err := s.bank.AuthenticateAndSelect(nationalID, number, func(remaining int) (string, error) {
		if remaining < model.MaxAuthenticationTries {
			s.printf("\nWrong password! Attempts remaining: %d\n", remaining)
		}
		return s.prompt("\nEnter your 4-digit password: ")
	})
	if err != nil {
		if model.CodeOf(err) == "" {
			return err
		}
		if model.CodeOf(err) == model.ErrCodeAuthenticationFailed {
			s.printf("\nWrong password! Attempts remaining: 0\n")
		}
		s.reject(span, fields, "login rejected", err)
		return nil
	}

	owner := account.Owner()
	span.AddEvent("Login succeeded", trace.WithAttributes(attribute.String("person.id", owner.PersonID)))
	s.log.WithFields(fields).WithField("person_id", owner.PersonID).Info("login succeeded")
	s.printf("\nLogin successful! Welcome, %s.\n", owner.FullName)
	return s.operate(ctx, account)
}

// operate runs the operations menu for an authenticated account.
func (s *Shell) operate(ctx context.Context, account *model.Account) error {
	for {
		s.printf("\n=== Banking Operations ===\n1. Deposit\n2. Withdraw\n3. Statement\n4. Leave\n")
		choice, err := s.prompt("=> ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.transact(ctx, account, model.KindDeposit, "Deposit amount: ")
		case "2":
			err = s.transact(ctx, account, model.KindWithdrawal, "Withdrawal amount: ")
		case "3":
			_, span := s.tracer.Start(ctx, "Statement", trace.WithAttributes(attribute.Int("account.number", account.Number())))
			err = s.render.Statement(s.out, account.Statement())
			span.End()
		case "4":
			return nil
		default:
			s.printf("\nInvalid option.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) transact(ctx context.Context, account *model.Account, kind model.TransactionKind, label string) error {
	raw, err := s.prompt("\n" + label)
	if err != nil {
		return err
	}

	_, span := s.tracer.Start(ctx, string(kind), trace.WithAttributes(
		attribute.Int("account.number", account.Number()),
		attribute.String("transaction.kind", string(kind)),
	))
	defer span.End()

	fields := logrus.Fields{"account": account.Number(), "kind": kind}
	amount, ok := parseAmount(raw)
	if !ok {
		s.reject(span, fields, "transaction rejected", model.ErrInvalidAmount)
		return nil
	}

	var txn model.Transaction = model.NewDeposit(amount)
	if kind == model.KindWithdrawal {
		txn = model.NewWithdrawal(amount)
	}
	fields["amount"] = amount.StringFixed(2)
	span.SetAttributes(attribute.String("transaction.amount", amount.StringFixed(2)))

	if err := account.Apply(txn); err != nil {
		s.reject(span, fields, "transaction rejected", err)
		return nil
	}

	span.AddEvent("Transaction applied", trace.WithAttributes(attribute.Int("ledger.length", account.Ledger().Len())))
	s.log.WithFields(fields).Info("transaction accepted")
	s.printf("\n%s of %s completed successfully!\n", txn.Kind(), s.render.Amount(amount))
	return nil
}

// parseAmount reads a plain decimal amount with at most two decimal places.
func parseAmount(raw string) (decimal.Decimal, bool) {
	if !validate.Amount(raw) {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}
