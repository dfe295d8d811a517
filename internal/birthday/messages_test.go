package birthday_test

import (
	"commandhotline/internal/birthday"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		10:  "10th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		22:  "22nd",
		23:  "23rd",
		100: "100th",
		101: "101st",
		111: "111th",
	}

	for n, want := range tests {
		require.Equal(t, want, birthday.Ordinal(n))
	}
}

func TestGreeting_WithAge(t *testing.T) {
	age := 30

	for range 20 {
		got := birthday.Greeting("@alice", &age)
		require.Contains(t, got, "@alice")
		require.Contains(t, got, "30th")
		require.Equal(t, 2, len(strings.Split(got, "\n")), "heading and comment")
	}
}

func TestGreeting_WithoutAge(t *testing.T) {
	for range 20 {
		got := birthday.Greeting("@bob", nil)
		require.Contains(t, got, "@bob")
		require.NotContains(t, got, "  ", "no double space where the age would be")
	}
}
