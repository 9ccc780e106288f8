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
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrCodeValidation             ErrorCode = "VALIDATION_ERROR"
	ErrCodeDuplicateNationalID    ErrorCode = "DUPLICATE_NATIONAL_ID"
	ErrCodePersonNotFound         ErrorCode = "PERSON_NOT_FOUND"
	ErrCodeInvalidCredential      ErrorCode = "INVALID_CREDENTIAL_FORMAT"
	ErrCodeAccountNotFound        ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrCodeNoAccountsForPerson    ErrorCode = "NO_ACCOUNTS_FOR_PERSON"
	ErrCodeAuthenticationFailed   ErrorCode = "AUTHENTICATION_FAILED"
	ErrCodeInvalidAmount          ErrorCode = "INVALID_AMOUNT"
	ErrCodeInsufficientFunds      ErrorCode = "INSUFFICIENT_FUNDS"
	ErrCodeExceedsWithdrawalLimit ErrorCode = "EXCEEDS_PER_TRANSACTION_LIMIT"
	ErrCodeDailyWithdrawalLimit   ErrorCode = "DAILY_WITHDRAWAL_LIMIT_REACHED"
)

// Registration fields, in the order they are checked.
const (
	FieldName       = "name"
	FieldBirthDate  = "birth_date"
	FieldNationalID = "national_id"
	FieldAddress    = "address"
)

// Error is the single error type returned by the domain. Callers branch on
// Code; Field is only set for validation failures.
type Error struct {
	Code    ErrorCode
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on code, and on field when the target names one, so that
// errors.Is(err, ErrValidation) matches every field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

var (
	ErrValidation             = &Error{Code: ErrCodeValidation, Message: "invalid input"}
	ErrDuplicateNationalID    = &Error{Code: ErrCodeDuplicateNationalID, Message: "national id already registered"}
	ErrPersonNotFound         = &Error{Code: ErrCodePersonNotFound, Message: "person not found"}
	ErrInvalidCredential      = &Error{Code: ErrCodeInvalidCredential, Message: "credential must be exactly 4 digits"}
	ErrAccountNotFound        = &Error{Code: ErrCodeAccountNotFound, Message: "account not found"}
	ErrNoAccountsForPerson    = &Error{Code: ErrCodeNoAccountsForPerson, Message: "no accounts found for national id"}
	ErrAuthenticationFailed   = &Error{Code: ErrCodeAuthenticationFailed, Message: "maximum number of attempts exceeded"}
	ErrInvalidAmount          = &Error{Code: ErrCodeInvalidAmount, Message: "amount must be positive"}
	ErrInsufficientFunds      = &Error{Code: ErrCodeInsufficientFunds, Message: "insufficient funds"}
	ErrExceedsWithdrawalLimit = &Error{Code: ErrCodeExceedsWithdrawalLimit, Message: "amount exceeds the per-withdrawal limit"}
	ErrDailyWithdrawalLimit   = &Error{Code: ErrCodeDailyWithdrawalLimit, Message: "daily withdrawal limit reached"}
)

// NewValidationError reports a malformed registration field.
func NewValidationError(field string) *Error {
	return &Error{Code: ErrCodeValidation, Field: field, Message: fmt.Sprintf("invalid %s", field)}
}

// CodeOf returns the domain code carried by err, or "" when err is not a
// domain error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// FieldOf returns the offending field of a validation error.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
