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

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/blnkfinance/teller/model"
	"github.com/blnkfinance/teller/validate"
)

func (s *Shell) registerPerson(ctx context.Context) error {
	s.printf("\n=== New Customer Registration ===\n")

	invalid := func(field string) func(string) string {
		return func(string) string { return s.render.Message(model.NewValidationError(field)) }
	}

	name, err := s.ask("Full name: ", validate.Name, invalid(model.FieldName))
	if err != nil {
		return err
	}
	birthDate, err := s.ask("Birth date (DD/MM/YYYY): ",
		func(v string) bool { return validate.BirthDateAt(v, s.bank.Now()) },
		invalid(model.FieldBirthDate))
	if err != nil {
		return err
	}
	nationalID, err := s.ask("National ID (digits only): ",
		func(v string) bool { return validate.NationalID(v) && !s.bank.IsRegistered(v) },
		func(v string) string {
			if validate.NationalID(v) {
				return s.render.Message(model.ErrDuplicateNationalID)
			}
			return s.render.Message(model.NewValidationError(model.FieldNationalID))
		})
	if err != nil {
		return err
	}
	address, err := s.ask("Address (Street, Number - District - City/UF): ", validate.Address, invalid(model.FieldAddress))
	if err != nil {
		return err
	}

	_, span := s.tracer.Start(ctx, "RegisterPerson", trace.WithAttributes(attribute.String("national_id", nationalID)))
	defer span.End()

	fields := logrus.Fields{"national_id": nationalID}
	person, err := s.bank.RegisterPerson(model.Registration{
		FullName:   name,
		BirthDate:  birthDate,
		NationalID: nationalID,
		Address:    address,
	})
	if err != nil {
		s.reject(span, fields, "registration rejected", err)
		return nil
	}

	span.AddEvent("Customer registered", trace.WithAttributes(attribute.String("person.id", person.PersonID)))
	s.log.WithFields(fields).WithField("person_id", person.PersonID).Info("customer registered")
	s.printf("\nCustomer registered successfully!\n")
	return nil
}

func (s *Shell) openAccount(ctx context.Context) error {
	s.printf("\n=== New Checking Account ===\n")

	nationalID, err := s.prompt("Account holder national ID: ")
	if err != nil {
		return err
	}

	_, span := s.tracer.Start(ctx, "OpenAccount", trace.WithAttributes(attribute.String("national_id", nationalID)))
	defer span.End()

	fields := logrus.Fields{"national_id": nationalID}
	person, err := s.bank.Person(nationalID)
	if err != nil {
		s.reject(span, fields, "account opening rejected", err)
		return nil
	}

	credential, err := s.ask("Create a 4-digit password: ",
		func(v string) bool { return validate.Password(v, model.CredentialLength) },
		func(string) string { return s.render.Message(model.ErrInvalidCredential) })
	if err != nil {
		return err
	}

	account, err := s.bank.OpenAccount(nationalID, credential)
	if err != nil {
		s.reject(span, fields, "account opening rejected", err)
		return nil
	}

	span.SetAttributes(attribute.Int("account.number", account.Number()))
	s.log.WithFields(fields).WithFields(logrus.Fields{
		"person_id": person.PersonID,
		"account":   account.Number(),
	}).Info("account opened")
	s.printf("\nAccount created successfully! Branch: %s, Account: %d\n", account.BranchCode(), account.Number())
	return nil
}
