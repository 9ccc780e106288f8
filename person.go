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

// RegisterPerson validates a registration and adds the customer to the bank.
//
// Fields are checked as name, birth date, national id, address; the first
// failure is returned. A well formed national id that is already registered
// fails with model.ErrDuplicateNationalID before the address is looked at.
func (b *Bank) RegisterPerson(registration model.Registration) (model.Person, error) {
	now := b.clock()

	err := registration.Validate(now)
	if err == nil || model.FieldOf(err) == model.FieldAddress {
		if b.IsRegistered(registration.NationalID) {
			return model.Person{}, model.ErrDuplicateNationalID
		}
	}
	if err != nil {
		return model.Person{}, err
	}

	person, err := model.NewPerson(registration, now)
	if err != nil {
		return model.Person{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.people[person.NationalID]; exists {
		return model.Person{}, model.ErrDuplicateNationalID
	}
	b.people[person.NationalID] = &person
	b.order = append(b.order, person.NationalID)
	return person, nil
}

// Person returns the customer registered under nationalID.
func (b *Bank) Person(nationalID string) (model.Person, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	person, ok := b.people[nationalID]
	if !ok {
		return model.Person{}, model.ErrPersonNotFound
	}
	return *person, nil
}

func (b *Bank) IsRegistered(nationalID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.people[nationalID]
	return ok
}

// People returns every customer in registration order.
func (b *Bank) People() []model.Person {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.Person, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.people[id])
	}
	return out
}
