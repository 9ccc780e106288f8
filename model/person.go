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
)

type Address struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Raw      string `json:"raw"`
}

// ParseAddress splits a "Street, Number - District - City/UF" address.
func ParseAddress(raw string) (Address, error) {
	parts, ok := validate.SplitAddress(raw)
	if !ok {
		return Address{}, NewValidationError(FieldAddress)
	}
	return Address{
		Street:   parts.Street,
		Number:   parts.Number,
		District: parts.District,
		City:     parts.City,
		Region:   parts.Region,
		Raw:      raw,
	}, nil
}

func (a Address) String() string {
	return a.Raw
}

// Person is a registered customer. It is never modified after registration;
// the bank hands out copies.
type Person struct {
	PersonID   string    `json:"person_id"`
	FullName   string    `json:"full_name"`
	NationalID string    `json:"national_id"`
	BirthDate  time.Time `json:"birth_date"`
	Address    Address   `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
}

// Registration is the raw customer input collected by the caller.
type Registration struct {
	FullName   string `json:"full_name"`
	BirthDate  string `json:"birth_date"`
	NationalID string `json:"national_id"`
	Address    string `json:"address"`
}

// Validate checks each field in registration order and returns the first
// failure. Uniqueness of the national id is the bank's concern.
func (r Registration) Validate(today time.Time) error {
	if !validate.Name(r.FullName) {
		return NewValidationError(FieldName)
	}
	if !validate.BirthDateAt(r.BirthDate, today) {
		return NewValidationError(FieldBirthDate)
	}
	if !validate.NationalID(r.NationalID) {
		return NewValidationError(FieldNationalID)
	}
	if !validate.Address(r.Address) {
		return NewValidationError(FieldAddress)
	}
	return nil
}

// NewPerson validates r and builds the Person it describes.
func NewPerson(r Registration, now time.Time) (Person, error) {
	if err := r.Validate(now); err != nil {
		return Person{}, err
	}
	born, _ := validate.ParseBirthDate(r.BirthDate)
	address, err := ParseAddress(r.Address)
	if err != nil {
		return Person{}, err
	}
	return Person{
		PersonID:   GenerateUUIDWithSuffix("person"),
		FullName:   r.FullName,
		NationalID: r.NationalID,
		BirthDate:  born,
		Address:    address,
		CreatedAt:  now,
	}, nil
}
