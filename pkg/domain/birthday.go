package domain

import (
	"fmt"
	"time"
)

// UserID identifies a chat platform user. Telegram user IDs are 64-bit
// integers, so the type is a thin alias for type safety at the domain layer.
type UserID int64

// ChatID identifies the chat (group or private conversation) a birthday was
// shared with. Notifications are scoped per chat: the same user may have
// independent birthday records in different chats.
type ChatID int64

// Birthday is a member's birthday within one chat. The (UserID, ChatID) pair
// is the identity of the record.
type Birthday struct {
	// UserID is the member who owns the birthday.
	UserID UserID `json:"userId"`
	// ChatID is the chat the birthday was shared with.
	ChatID ChatID `json:"chatId"`

	// Year is the birth year. It is nil when the member provided only a day
	// and month, in which case no age is computed for greetings.
	Year *int `json:"year,omitempty"`
	// Month is the birth month (1-12).
	Month time.Month `json:"month"`
	// Day is the day of month (1-31).
	Day int `json:"day"`

	// Enabled controls whether notifications are sent. It is switched off when
	// the member leaves the chat and back on when they rejoin.
	Enabled bool `json:"enabled"`
	// LastNotified is the time of the most recent congratulation sent for this
	// record. The zero value means the member was never congratulated.
	LastNotified time.Time `json:"-"`

	// CreatedAt is the time the record was first stored.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the record was last changed; zero when never updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Date returns the birthday as a concrete date in the given year when the
// birth year is unknown, or in the birth year when it is known.
func (b Birthday) Date(fallbackYear int) time.Time {
	year := fallbackYear
	if b.Year != nil {
		year = *b.Year
	}

	return time.Date(year, b.Month, b.Day, 0, 0, 0, 0, time.UTC)
}

// Age returns the age the member turns on the given day, or false when the
// birth year is unknown.
func (b Birthday) Age(on time.Time) (int, bool) {
	if b.Year == nil {
		return 0, false
	}

	return on.Year() - *b.Year, true
}

// String renders the birthday the way it is echoed back to users:
// "02.01.2006" when the year is known, "02.01." otherwise.
func (b Birthday) String() string {
	if b.Year != nil {
		return b.Date(0).Format("02.01.2006")
	}

	return fmt.Sprintf("%02d.%02d.", b.Day, b.Month)
}
