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
	"github.com/blnkfinance/teller/model"
)

// OpenAccount opens a checking account for the customer registered under
// nationalID, protected by a 4-digit credential.
func (b *Bank) OpenAccount(nationalID, credential string) (*model.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	owner, ok := b.people[nationalID]
	if !ok {
		return nil, model.ErrPersonNotFound
	}

	account, err := model.OpenAccount(owner, credential, &b.seq, b.clock)
	if err != nil {
		return nil, err
	}
	b.accounts[account.Number()] = account
	b.byOwner[nationalID] = append(b.byOwner[nationalID], account.Number())
	return account, nil
}

// AccountsFor returns the accounts held by nationalID in ascending number order.
func (b *Bank) AccountsFor(nationalID string) []*model.Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	numbers := b.byOwner[nationalID]
	out := make([]*model.Account, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, b.accounts[n])
	}
	return out
}

func (b *Bank) AccountCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.accounts)
}
