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

// Package render turns domain values into the text shown to a customer.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/blnkfinance/teller/config"
	"github.com/blnkfinance/teller/model"
)

const (
	statementWidth = 41
	noMovements    = "No movements recorded."
)

type Renderer struct {
	Currency   string
	TimeLayout string
}

func New(cnf config.StatementConfig) Renderer {
	r := Renderer{Currency: cnf.Currency, TimeLayout: cnf.TimeLayout}
	if r.Currency == "" {
		r.Currency = config.DEFAULT_CURRENCY
	}
	if r.TimeLayout == "" {
		r.TimeLayout = config.DEFAULT_TIME_LAYOUT
	}
	return r
}

// Amount formats a value with the currency symbol and two decimals.
func (r Renderer) Amount(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", r.Currency, amount.StringFixed(2))
}

// Record renders one ledger line: "[timestamp] Kind: amount".
func (r Renderer) Record(record model.TransactionRecord) string {
	return fmt.Sprintf("[%s] %s: %s", record.Timestamp.Format(r.TimeLayout), record.Kind, r.Amount(record.Amount))
}

// Statement writes the fixed statement layout: header, one line per record
// (or a placeholder), then the balance.
func (r Renderer) Statement(w io.Writer, st model.Statement) error {
	var b strings.Builder

	b.WriteString("\n" + banner(" STATEMENT ", '=') + "\n")
	fmt.Fprintf(&b, "Customer: %s\n", st.OwnerName)
	fmt.Fprintf(&b, "Branch: %s | Account: %d\n", st.BranchCode, st.AccountNumber)
	fmt.Fprintf(&b, "Generated at: %s\n", st.AsOf.Format(r.TimeLayout))
	b.WriteString(strings.Repeat("-", statementWidth) + "\n")

	if len(st.Records) == 0 {
		b.WriteString(noMovements + "\n")
	}
	for _, record := range st.Records {
		b.WriteString(r.Record(record) + "\n")
	}

	b.WriteString(strings.Repeat("-", statementWidth) + "\n")
	fmt.Fprintf(&b, "Balance: %s\n", r.Amount(st.Balance))
	b.WriteString(strings.Repeat("=", statementWidth) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func banner(title string, fill rune) string {
	pad := statementWidth - len(title)
	if pad < 0 {
		return title
	}
	left := pad / 2
	return strings.Repeat(string(fill), left) + title + strings.Repeat(string(fill), pad-left)
}
