package validate

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "Ana Silva", true},
		{"accented", "João Conceição", true},
		{"single word", "Ana", true},
		{"empty", "", false},
		{"spaces only", "   ", false},
		{"digits", "Ana 2", false},
		{"punctuation", "Ana-Silva", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.input))
		})
	}
}

func TestNationalID(t *testing.T) {
	assert.True(t, NationalID("12345678901"))
	assert.True(t, NationalID(gofakeit.Numerify("###########")))
	assert.False(t, NationalID("1234567890"))
	assert.False(t, NationalID("123456789012"))
	assert.False(t, NationalID("1234567890a"))
	assert.False(t, NationalID("123.456.789-01"))
	assert.False(t, NationalID(""))
}

func TestNumericField(t *testing.T) {
	assert.True(t, NumericField("123"))
	assert.True(t, NumericField("0"))
	assert.False(t, NumericField(""))
	assert.False(t, NumericField("12a"))
	assert.False(t, NumericField("-1"))
}

func TestRegionCode(t *testing.T) {
	assert.True(t, RegionCode("SP"))
	assert.True(t, RegionCode("sp"))
	assert.False(t, RegionCode("S"))
	assert.False(t, RegionCode("SPX"))
	assert.False(t, RegionCode("S1"))
	assert.False(t, RegionCode(""))
}

func TestAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "Rua Exemplo, 123 - Centro - Cidade/SP", true},
		{"accented", "Avenida São João, 45 - Bela Vista - São Paulo/SP", true},
		{"lowercase region", "Rua Exemplo, 123 - Centro - Cidade/sp", false},
		{"non numeric house", "Rua Exemplo, 12A - Centro - Cidade/SP", false},
		{"missing district", "Rua Exemplo, 123 - Cidade/SP", false},
		{"missing comma", "Rua Exemplo 123 - Centro - Cidade/SP", false},
		{"three letter region", "Rua Exemplo, 123 - Centro - Cidade/SPX", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Address(tt.input))
		})
	}
}

func TestSplitAddress(t *testing.T) {
	number := gofakeit.Numerify("###")
	parts, ok := SplitAddress("Rua Exemplo, " + number + " - Centro - Cidade/RJ")
	assert.True(t, ok)
	assert.Equal(t, AddressParts{
		Street:   "Rua Exemplo",
		Number:   number,
		District: "Centro",
		City:     "Cidade",
		Region:   "RJ",
	}, parts)

	_, ok = SplitAddress("nowhere")
	assert.False(t, ok)
}

func TestBirthDateAt(t *testing.T) {
	today := time.Date(2026, time.October, 17, 10, 0, 0, 0, time.Local)

	t.Run("adult", func(t *testing.T) {
		assert.True(t, BirthDateAt("15/05/1990", today))
	})

	t.Run("single digit day and month", func(t *testing.T) {
		assert.True(t, BirthDateAt("1/2/1990", today))
	})

	t.Run("minor", func(t *testing.T) {
		assert.False(t, BirthDateAt("01/01/2015", today))
	})

	t.Run("future date", func(t *testing.T) {
		assert.False(t, BirthDateAt("01/01/2030", today))
	})

	t.Run("unparsable", func(t *testing.T) {
		assert.False(t, BirthDateAt("1990-05-15", today))
		assert.False(t, BirthDateAt("31/02/1990", today))
		assert.False(t, BirthDateAt("", today))
	})

	t.Run("eighteen years of 365 days", func(t *testing.T) {
		born := today.AddDate(0, 0, -18*365)
		assert.True(t, BirthDateAt(born.Format("02/01/2006"), today))

		// one day short of 18*365 days
		tooYoung := today.AddDate(0, 0, -18*365+1)
		assert.False(t, BirthDateAt(tooYoung.Format("02/01/2006"), today))
	})
}

func TestBirthDateUsesWallClock(t *testing.T) {
	assert.True(t, BirthDate("01/01/1970"))
	assert.False(t, BirthDate(time.Now().Format("02/01/2006")))
}

func TestAge(t *testing.T) {
	today := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, Age(today, today))
	assert.Equal(t, 10, Age(today.AddDate(0, 0, -3650), today))
	assert.Equal(t, -1, Age(today.AddDate(0, 0, 1), today))
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("1234", 4))
	assert.True(t, Password(gofakeit.Numerify("####"), 4))
	assert.False(t, Password("123", 4))
	assert.False(t, Password("12345", 4))
	assert.False(t, Password("12a4", 4))
	assert.False(t, Password("", 4))
	assert.True(t, Password("123456", 6))
}

func TestAmount(t *testing.T) {
	for _, s := range []string{"0", "100", "100.5", "100.50", "100,50"} {
		assert.True(t, Amount(s), s)
	}
	for _, s := range []string{"", " ", "-3", "+3", "1e3", "1e50000000", "0.001", "100.", ".5", "1.000,50", "ten"} {
		assert.False(t, Amount(s), s)
	}
}
