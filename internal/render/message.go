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

package render

import (
	"fmt"

	"github.com/blnkfinance/teller/model"
)

// Message maps an error returned by the bank to the sentence shown to the
// customer. Unknown errors fall back to their own text.
func (r Renderer) Message(err error) string {
	if err == nil {
		return ""
	}

	switch model.CodeOf(err) {
	case model.ErrCodeValidation:
		return validationMessage(model.FieldOf(err))
	case model.ErrCodeDuplicateNationalID:
		return "National ID already registered."
	case model.ErrCodePersonNotFound:
		return "Customer not found."
	case model.ErrCodeInvalidCredential:
		return fmt.Sprintf("The password must contain exactly %d digits.", model.CredentialLength)
	case model.ErrCodeAccountNotFound:
		return "Account not found."
	case model.ErrCodeNoAccountsForPerson:
		return "No account found for this national ID."
	case model.ErrCodeAuthenticationFailed:
		return "Maximum number of attempts exceeded."
	case model.ErrCodeInvalidAmount:
		return "The amount must be a positive number."
	case model.ErrCodeInsufficientFunds:
		return "Insufficient funds."
	case model.ErrCodeExceedsWithdrawalLimit:
		return fmt.Sprintf("The withdrawal amount exceeds the limit of %s.", r.Amount(model.WithdrawalLimit))
	case model.ErrCodeDailyWithdrawalLimit:
		return "Maximum number of daily withdrawals exceeded."
	default:
		return err.Error()
	}
}

func validationMessage(field string) string {
	switch field {
	case model.FieldName:
		return "Invalid name! Use letters only."
	case model.FieldBirthDate:
		return "Invalid birth date or customer under 18."
	case model.FieldNationalID:
		return "Invalid national ID! Use exactly 11 digits."
	case model.FieldAddress:
		return "Invalid address! Use the format: Rua Exemplo, 123 - Centro - Cidade/UF"
	default:
		return "Invalid input."
	}
}
