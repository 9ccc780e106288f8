package model

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sequence struct {
	last int
}

func (s *sequence) Next() int {
	s.last++
	return s.last
}

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestPerson() *Person {
	return &Person{
		PersonID:   GenerateUUIDWithSuffix("person"),
		FullName:   "Ana Silva",
		NationalID: gofakeit.Numerify("###########"),
		BirthDate:  time.Date(1990, time.May, 15, 0, 0, 0, 0, time.Local),
	}
}

func newTestAccount(t *testing.T) *Account {
	t.Helper()
	clock := &stepClock{now: time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)}
	account, err := OpenAccount(newTestPerson(), "1234", &sequence{}, clock.Now)
	require.NoError(t, err)
	return account
}

func TestOpenAccount(t *testing.T) {
	seq := &sequence{}
	owner := newTestPerson()

	first, err := OpenAccount(owner, "1234", seq, nil)
	require.NoError(t, err)
	second, err := OpenAccount(owner, gofakeit.Numerify("####"), seq, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Number())
	assert.Equal(t, 2, second.Number())
	assert.Equal(t, BranchCode, first.BranchCode())
	assert.Equal(t, owner.FullName, first.Owner().FullName)
	assert.True(t, first.Balance().IsZero())
	assert.Equal(t, 0, first.WithdrawalCount())
	assert.Nil(t, first.LastWithdrawalAt())
	assert.Equal(t, 0, first.Ledger().Len())
	assert.False(t, first.OpenedAt().IsZero())
}

func TestOpenAccount_InvalidCredential(t *testing.T) {
	seq := &sequence{}

	for _, credential := range []string{"", "123", "12345", "12a4", " 1234"} {
		_, err := OpenAccount(newTestPerson(), credential, seq, nil)
		assert.ErrorIs(t, err, ErrInvalidCredential, credential)
	}
	assert.Equal(t, 0, seq.last, "rejected credentials must not consume account numbers")
}

func TestAccount_Authenticate(t *testing.T) {
	account := newTestAccount(t)

	assert.True(t, account.Authenticate("1234"))
	assert.False(t, account.Authenticate("4321"))
	assert.False(t, account.Authenticate(""))
	assert.True(t, account.Authenticate("1234"), "failed attempts do not lock the account")
}

func TestAccount_ApplyDeposit(t *testing.T) {
	account := newTestAccount(t)

	require.NoError(t, account.Apply(NewDeposit(decimal.RequireFromString("100.00"))))

	assert.True(t, decimal.NewFromInt(100).Equal(account.Balance()))
	records := account.Ledger().Snapshot()
	require.Len(t, records, 1)
	assert.Equal(t, KindDeposit, records[0].Kind)
	assert.True(t, decimal.NewFromInt(100).Equal(records[0].Amount))
	assert.Contains(t, records[0].ID, "txn_")
	assert.False(t, records[0].Timestamp.IsZero())
}

func TestAccount_ApplyNonPositiveAmounts(t *testing.T) {
	account := newTestAccount(t)
	require.NoError(t, account.Apply(NewDeposit(decimal.NewFromInt(50))))

	for _, raw := range []string{"0", "-0.01", "-100"} {
		amount := decimal.RequireFromString(raw)
		assert.ErrorIs(t, account.Apply(NewDeposit(amount)), ErrInvalidAmount)
		assert.ErrorIs(t, account.Apply(NewWithdrawal(amount)), ErrInvalidAmount)
	}

	assert.True(t, decimal.NewFromInt(50).Equal(account.Balance()))
	assert.Equal(t, 1, account.Ledger().Len())
	assert.Equal(t, 0, account.WithdrawalCount())
}

func TestAccount_ApplyWithdrawal(t *testing.T) {
	account := newTestAccount(t)
	require.NoError(t, account.Apply(NewDeposit(decimal.NewFromInt(100))))

	err := account.Apply(NewWithdrawal(decimal.NewFromInt(600)))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	require.NoError(t, account.Apply(NewDeposit(decimal.NewFromInt(1000))))
	err = account.Apply(NewWithdrawal(decimal.NewFromInt(600)))
	assert.ErrorIs(t, err, ErrExceedsWithdrawalLimit)
	assert.True(t, decimal.NewFromInt(1100).Equal(account.Balance()))

	for i := 0; i < MaxDailyWithdrawals; i++ {
		require.NoError(t, account.Apply(NewWithdrawal(decimal.NewFromInt(50))))
	}
	assert.Equal(t, MaxDailyWithdrawals, account.WithdrawalCount())
	require.NotNil(t, account.LastWithdrawalAt())

	err = account.Apply(NewWithdrawal(decimal.NewFromInt(10)))
	assert.ErrorIs(t, err, ErrDailyWithdrawalLimit)
	assert.True(t, decimal.NewFromInt(950).Equal(account.Balance()))
	assert.Equal(t, 5, account.Ledger().Len())
}

func TestAccount_BalanceNeverNegative(t *testing.T) {
	account := newTestAccount(t)

	for i := 0; i < 50; i++ {
		amount := decimal.NewFromFloat(gofakeit.Float64Range(-100, 700)).Round(2)
		var txn Transaction = NewWithdrawal(amount)
		if gofakeit.Bool() {
			txn = NewDeposit(amount)
		}
		_ = account.Apply(txn)
		assert.False(t, account.Balance().IsNegative())
	}
}

func TestAccount_Statement(t *testing.T) {
	account := newTestAccount(t)
	require.NoError(t, account.Apply(NewDeposit(decimal.NewFromInt(100))))
	require.NoError(t, account.Apply(NewWithdrawal(decimal.NewFromInt(30))))
	require.NoError(t, account.Apply(NewDeposit(decimal.NewFromInt(5))))

	first := account.Statement()
	second := account.Statement()

	assert.Equal(t, "Ana Silva", first.OwnerName)
	assert.Equal(t, BranchCode, first.BranchCode)
	assert.Equal(t, account.Number(), first.AccountNumber)
	assert.True(t, decimal.NewFromInt(75).Equal(first.Balance))
	assert.Equal(t, first.Records, second.Records)
	assert.True(t, second.AsOf.After(first.AsOf))

	require.Len(t, first.Records, 3)
	assert.Equal(t, []TransactionKind{KindDeposit, KindWithdrawal, KindDeposit},
		[]TransactionKind{first.Records[0].Kind, first.Records[1].Kind, first.Records[2].Kind})
	assert.True(t, first.Records[0].Timestamp.Before(first.Records[1].Timestamp))
	assert.True(t, first.Records[1].Timestamp.Before(first.Records[2].Timestamp))

	first.Records[0].Amount = decimal.NewFromInt(999)
	assert.True(t, decimal.NewFromInt(100).Equal(account.Statement().Records[0].Amount))
}
