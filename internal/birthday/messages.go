package birthday

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// greetingHeadings are the opening lines of an announcement. "{day}" is
// replaced with the ordinal age ("27th ") or with nothing when the birth year
// is unknown, "{name}" with the member mention.
var greetingHeadings = []string{ //nolint: gochecknoglobals
	"Happy {day}birthday, {name}! 🎉",
	"It's {name}'s {day}birthday today, congratulations! 🎉",
	"Oh look, it's {name}'s {day}birthday! 🎉",
	"Happy {day}birthday to you, {name}! 🎂",
	"{name} is celebrating a {day}birthday today! 🥳",
}

// greetingComments are the second lines, picked independently of the heading.
var greetingComments = []string{ //nolint: gochecknoglobals
	"Hope you have a wonderful day!",
	"May all your birthday wishes come true.",
	"Another year wiser, allegedly.",
	"Cake is mandatory today.",
	"Time to celebrate!",
	"Wishing you the best year yet.",
	"Make it a day to remember.",
	"The whole chat is cheering for you.",
	"Enjoy every minute of it!",
	"You don't look a day older.",
	"May your day be full of cake and good company.",
	"Here's to you!",
	"Party responsibly. Or don't.",
	"Blow out the candles and make a wish.",
	"Have a fantastic one!",
	"Today the spotlight is all yours.",
	"One more trip around the sun, well done.",
	"Stay awesome!",
	"We hope your inbox fills with nothing but congratulations today.",
	"Treat yourself, you've earned it.",
}

// Ordinal formats n as an English ordinal: 1st, 2nd, 3rd, 4th, ..., 11th,
// 12th, 13th, ..., 21st.
func Ordinal(n int) string {
	s := strconv.Itoa(n)

	if rem := n % 100; rem >= 11 && rem <= 13 {
		return s + "th"
	}

	switch n % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	default:
		return s + "th"
	}
}

// Greeting builds a randomized birthday announcement for the given member
// mention. When the age is known, the heading mentions it as an ordinal.
func Greeting(name string, age *int) string {
	day := ""
	if age != nil {
		day = Ordinal(*age) + " "
	}

	heading := greetingHeadings[rand.IntN(len(greetingHeadings))]
	heading = strings.NewReplacer("{day}", day, "{name}", name).Replace(heading)

	return heading + "\n" + greetingComments[rand.IntN(len(greetingComments))]
}
