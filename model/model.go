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
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// BranchCode identifies the single branch every account belongs to.
	BranchCode = "0001"

	CredentialLength       = 4
	MaxDailyWithdrawals    = 3
	MaxAuthenticationTries = 3
)

// WithdrawalLimit is the ceiling for a single withdrawal.
var WithdrawalLimit = decimal.NewFromInt(500)

// Clock returns the current time. Accounts stamp ledger records with it.
type Clock func() time.Time

// GenerateUUIDWithSuffix generates a UUID with a given module name as a suffix.
func GenerateUUIDWithSuffix(module string) string {
	id := uuid.New()
	return fmt.Sprintf("%s_%s", module, id.String())
}
