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

// Package validate holds the predicates applied to raw customer input before
// it reaches the bank. Every function is pure and total: malformed input
// yields false, never a panic or an error.
package validate

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	NationalIDLength  = 11
	RegionCodeLength  = 2
	MinimumAge        = 18
	BirthDateLayout   = "2/1/2006"
	daysPerYearApprox = 365
)

var (
	lettersOnly = regexp.MustCompile(`^\p{L}+$`)
	digitsOnly  = regexp.MustCompile(`^[0-9]+$`)
	amountExpr  = regexp.MustCompile(`^[0-9]+([.,][0-9]{1,2})?$`)
	addressExpr = regexp.MustCompile(`^([\p{L}\p{N}_\s]+), ([0-9]+) - ([\p{L}\p{N}_\s]+) - ([\p{L}\p{N}_\s]+)/([A-Z]{2})$`)
)

// AddressParts are the groups of an address written as
// "Street, Number - District - City/UF".
type AddressParts struct {
	Street   string
	Number   string
	District string
	City     string
	Region   string
}

func check(value string, rules ...validation.Rule) bool {
	return validation.Validate(value, rules...) == nil
}

// Name reports whether s, ignoring spaces, is a non-empty run of letters.
func Name(s string) bool {
	return check(strings.ReplaceAll(s, " ", ""), validation.Required, validation.Match(lettersOnly))
}

// NationalID reports whether s is exactly eleven decimal digits.
func NationalID(s string) bool {
	return check(s,
		validation.Required,
		validation.Length(NationalIDLength, NationalIDLength),
		validation.Match(digitsOnly),
	)
}

// NumericField reports whether s is a non-empty run of decimal digits.
func NumericField(s string) bool {
	return check(s, validation.Required, validation.Match(digitsOnly))
}

// RegionCode reports whether s is two letters. Uppercase is enforced by the
// address pattern, not here.
func RegionCode(s string) bool {
	return check(s,
		validation.Required,
		validation.RuneLength(RegionCodeLength, RegionCodeLength),
		validation.Match(lettersOnly),
	)
}

// SplitAddress matches s against the address pattern and returns its groups.
func SplitAddress(s string) (AddressParts, bool) {
	m := addressExpr.FindStringSubmatch(s)
	if m == nil {
		return AddressParts{}, false
	}
	parts := AddressParts{Street: m[1], Number: m[2], District: m[3], City: m[4], Region: m[5]}
	if !NumericField(parts.Number) || !RegionCode(parts.Region) {
		return AddressParts{}, false
	}
	return parts, true
}

// Address reports whether s is a well formed "Street, Number - District - City/UF" address.
func Address(s string) bool {
	_, ok := SplitAddress(s)
	return ok
}

// ParseBirthDate parses a D/M/YYYY date in local time.
func ParseBirthDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(BirthDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Age returns the whole years between birth and today, counting every year
// as 365 days. Leap days make this drift by up to a few days around the
// birthday; callers rely on this exact rule.
func Age(birth, today time.Time) int {
	// wall-clock difference, so DST transitions do not shave a day off
	from := time.Date(birth.Year(), birth.Month(), birth.Day(), birth.Hour(), birth.Minute(), birth.Second(), 0, time.UTC)
	to := time.Date(today.Year(), today.Month(), today.Day(), today.Hour(), today.Minute(), today.Second(), 0, time.UTC)
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return -1
	}
	return days / daysPerYearApprox
}

// BirthDate reports whether s is a parsable birth date of an adult as of now.
func BirthDate(s string) bool {
	return BirthDateAt(s, time.Now())
}

// BirthDateAt is BirthDate evaluated against the given day.
func BirthDateAt(s string, today time.Time) bool {
	return check(s, validation.Required, validation.By(func(value interface{}) error {
		born, ok := ParseBirthDate(value.(string))
		if !ok {
			return validation.NewError("validation_birth_date_format", "must be a date formatted as DD/MM/YYYY")
		}
		if Age(born, today) < MinimumAge {
			return validation.NewError("validation_birth_date_age", "must be at least 18 years old")
		}
		return nil
	}))
}

// Password reports whether s is made of exactly length decimal digits.
func Password(s string, length int) bool {
	return check(s,
		validation.Required,
		validation.Length(length, length),
		validation.Match(digitsOnly),
	)
}

// Amount reports whether s is a plain money amount: digits with at most two
// decimal places after a point or a comma. Signs and exponents are refused.
func Amount(s string) bool {
	return check(s, validation.Required, validation.Match(amountExpr))
}
