package birthday_test

import (
	"commandhotline/internal/birthday"
	"commandhotline/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	year1990 := 1990

	tests := []struct {
		name string
		text string
		want birthday.ParsedDate
	}{
		{"iso", "1990-04-23", birthday.ParsedDate{Year: &year1990, Month: time.April, Day: 23}},
		{"iso short year", "90-04-23", birthday.ParsedDate{Year: &year1990, Month: time.April, Day: 23}},
		{"iso without year", "04-23", birthday.ParsedDate{Month: time.April, Day: 23}},
		{"german", "23.04.1990", birthday.ParsedDate{Year: &year1990, Month: time.April, Day: 23}},
		{"german short year", "23.04.90", birthday.ParsedDate{Year: &year1990, Month: time.April, Day: 23}},
		{"german without year", "23.04.", birthday.ParsedDate{Month: time.April, Day: 23}},
		{"german without year or dot", "23.04", birthday.ParsedDate{Month: time.April, Day: 23}},
		{"us", "04/23/1990", birthday.ParsedDate{Year: &year1990, Month: time.April, Day: 23}},
		{"us short year", "04/23/90", birthday.ParsedDate{Year: &year1990, Month: time.April, Day: 23}},
		{"us without year", "04/23", birthday.ParsedDate{Month: time.April, Day: 23}},
		{"single digit fields", "1.3.", birthday.ParsedDate{Month: time.March, Day: 1}},
		{"trailing text ignored", "23.04.1990 is my birthday", birthday.ParsedDate{Year: &year1990, Month: time.April, Day: 23}},
		{"surrounding space", "  23.04.  ", birthday.ParsedDate{Month: time.April, Day: 23}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := birthday.ParseDate(tt.text, now)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_LeapDayWithoutYear(t *testing.T) {
	// 2026 is not a leap year, parsing must still accept the day
	now := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)

	got, err := birthday.ParseDate("29.02.", now)
	require.NoError(t, err)
	require.Nil(t, got.Year)
	require.Equal(t, time.February, got.Month)
	require.Equal(t, 29, got.Day)
}

func TestParseDate_Errors(t *testing.T) {
	now := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
	}{
		{"gibberish", "tomorrow"},
		{"empty", ""},
		{"impossible day", "31.02.1990"},
		{"future", "2999-01-01"},
		{"future short", "01/01/33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := birthday.ParseDate(tt.text, now)
			require.Error(t, err)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}
