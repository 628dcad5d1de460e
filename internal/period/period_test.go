package period

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
	}{
		{"month zero", 2024, 0},
		{"month thirteen", 2024, 13},
		{"negative month", 2024, -1},
		{"year zero", 0, 5},
		{"negative year", -2024, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.year, tt.month)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPeriod))
		})
	}
}

func TestRange_SpansWholeMonth(t *testing.T) {
	tests := []struct {
		year     int
		month    int
		expected int
	}{
		{2023, 1, 31},
		{2023, 2, 28},
		{2024, 2, 29},
		{1900, 2, 28},
		{2000, 2, 29},
		{2023, 4, 30},
		{2023, 6, 30},
		{2023, 9, 30},
		{2023, 11, 30},
		{2023, 12, 31},
	}

	for _, tt := range tests {
		p, err := New(tt.year, tt.month)
		require.NoError(t, err)

		start, end := p.Range()
		assert.Equal(t, 1, start.Day(), p.String())
		assert.Equal(t, tt.expected, end.Day(), p.String())
		assert.Equal(t, time.Month(tt.month), start.Month())
		assert.Equal(t, time.Month(tt.month), end.Month())
		assert.Equal(t, tt.expected, p.Days())
		assert.Equal(t, tt.expected-1, int(end.Sub(start).Hours()/24))
		assert.Equal(t, time.UTC, start.Location())
	}
}

func TestRange_EveryMonthOfLeapAndCommonYears(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		for month := 1; month <= 12; month++ {
			p, err := New(year, month)
			require.NoError(t, err)

			start, end := p.Range()
			assert.Equal(t, 1, start.Day())
			assert.Equal(t, 1, end.AddDate(0, 0, 1).Day(), "day after end must be the first of the next month")
			assert.Equal(t, p.Next().Month, int(end.AddDate(0, 0, 1).Month()))
		}
	}
}

func TestNextPrev_WrapYear(t *testing.T) {
	dec := Period{Year: 2023, Month: 12}
	assert.Equal(t, Period{Year: 2024, Month: 1}, dec.Next())
	assert.Equal(t, dec, dec.Next().Prev())
	assert.Equal(t, Period{Year: 2023, Month: 11}, dec.Prev())
}

func TestBefore(t *testing.T) {
	assert.True(t, Period{2023, 12}.Before(Period{2024, 1}))
	assert.True(t, Period{2024, 1}.Before(Period{2024, 2}))
	assert.False(t, Period{2024, 2}.Before(Period{2024, 2}))
	assert.False(t, Period{2025, 1}.Before(Period{2024, 12}))
}

func TestContainsAndFromTime(t *testing.T) {
	p := Period{Year: 2024, Month: 3}
	assert.True(t, p.Contains(time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, p, FromTime(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "2024-02", Period{Year: 2024, Month: 2}.String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2024, 5, 10, 22, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), NormalizeDate(in))
}
