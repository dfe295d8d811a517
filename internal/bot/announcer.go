package bot

import (
	"commandhotline/internal/birthday"
	"commandhotline/pkg/domain"
	"commandhotline/pkg/serrors"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"
)

// AnnounceBirthday congratulates the member in the chat the birthday was
// shared with. Members no longer in the chat are reported as not found so the
// caller can skip them without retrying.
func (b *Bot) AnnounceBirthday(record domain.Birthday) error {
	chat, err := b.client.ChatByID(int64(record.ChatID))
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not resolve chat %d", record.ChatID)
	}

	member, err := b.client.ChatMemberOf(chat, &tele.User{ID: int64(record.UserID)})
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not resolve member %d", record.UserID)
	}

	if member.Role == tele.Kicked || member.Role == tele.Left {
		return serrors.With(serrors.ErrNotFound,
			"member %d is no longer in chat %d", record.UserID, record.ChatID)
	}

	var age *int
	if years, ok := record.Age(time.Now()); ok {
		age = &years
	}

	text := birthday.Greeting(mention(member.User), age)
	if _, err := b.client.Send(chat, text, tele.ModeMarkdown); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not send greeting to chat %d", record.ChatID)
	}

	b.metrics.BirthdayAnnounced(b.ctx)

	return nil
}

// mention renders a Markdown link that notifies the member regardless of
// whether they have a public username.
func mention(user *tele.User) string {
	name := user.FirstName
	if name == "" {
		name = user.Username
	}

	return fmt.Sprintf("[%s](tg://user?id=%d)", name, user.ID)
}
