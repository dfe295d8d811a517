package bot

import (
	"commandhotline/pkg/domain"
	"commandhotline/pkg/logger"
	"commandhotline/pkg/serrors"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	replyInternalError = "Something went wrong, please try again later."
	replyNoBirthday    = "You haven't told me your birthday yet. Set it with /birthday <date>."
	replyNothingToDo   = "There was no birthday to delete."
	replyDeleted       = "Done, your birthday is gone."
)

func (b *Bot) register() {
	b.api.Handle("/birthday", b.instrumented("birthday", b.handleBirthday))
	b.api.Handle("/unbirthday", b.instrumented("unbirthday", b.handleUnbirthday))

	b.api.Handle(tele.OnUserJoined, b.handleJoined)
	b.api.Handle(tele.OnUserLeft, b.handleLeft)
	b.api.Handle(tele.OnChatMember, b.handleChatMember)
}

// instrumented wraps a command handler with duration and outcome metrics.
func (b *Bot) instrumented(command string, h tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		start := time.Now()
		err := h(c)
		b.metrics.CommandHandled(b.ctx, command, err != nil, time.Since(start).Seconds())

		return err
	}
}

// handleBirthday routes the /birthday command on its payload: an empty
// payload shows the stored date, a delete word removes it and anything else
// is parsed as a new date.
func (b *Bot) handleBirthday(c tele.Context) error {
	payload := strings.TrimSpace(c.Message().Payload)

	switch strings.ToLower(payload) {
	case "":
		return b.showBirthday(c)
	case "delete", "del", "remove", "forget":
		return b.deleteBirthday(c)
	default:
		return b.setBirthday(c, payload)
	}
}

// handleUnbirthday is a shorthand for "/birthday delete".
func (b *Bot) handleUnbirthday(c tele.Context) error {
	return b.deleteBirthday(c)
}

func (b *Bot) setBirthday(c tele.Context, payload string) error {
	stored, err := b.service.Set(b.ctx, domain.UserID(c.Sender().ID), domain.ChatID(c.Chat().ID), payload)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			return c.Send(userMessage(err))
		}

		logger.Error(b.ctx, "could not set birthday", zap.Error(err))

		return c.Send(replyInternalError)
	}

	return c.Send("Saved! Your birthday is set to " + stored.String())
}

func (b *Bot) showBirthday(c tele.Context) error {
	stored, err := b.service.Get(b.ctx, domain.UserID(c.Sender().ID), domain.ChatID(c.Chat().ID))
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Send(replyNoBirthday)
		}

		logger.Error(b.ctx, "could not get birthday", zap.Error(err))

		return c.Send(replyInternalError)
	}

	return c.Send("Your birthday is set to " + stored.String())
}

func (b *Bot) deleteBirthday(c tele.Context) error {
	err := b.service.Delete(b.ctx, domain.UserID(c.Sender().ID), domain.ChatID(c.Chat().ID))
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return c.Send(replyNothingToDo)
		}

		logger.Error(b.ctx, "could not delete birthday", zap.Error(err))

		return c.Send(replyInternalError)
	}

	return c.Send(replyDeleted)
}

// handleJoined re-enables notifications for members returning to the chat.
// New members have no record yet, which makes the update a no-op.
func (b *Bot) handleJoined(c tele.Context) error {
	chatID := domain.ChatID(c.Chat().ID)

	joined := c.Message().UsersJoined
	if len(joined) == 0 && c.Message().UserJoined != nil {
		joined = []tele.User{*c.Message().UserJoined}
	}

	for i := range joined {
		if err := b.service.SetEnabled(b.ctx, domain.UserID(joined[i].ID), chatID, true); err != nil {
			logger.Error(b.ctx, "could not enable birthday on join",
				zap.Int64("userId", joined[i].ID), zap.Error(err))
		}
	}

	return nil
}

// handleLeft disables notifications when a member leaves. The record is kept
// for the retention period in case they come back.
func (b *Bot) handleLeft(c tele.Context) error {
	left := c.Message().UserLeft
	if left == nil {
		return nil
	}

	err := b.service.SetEnabled(b.ctx, domain.UserID(left.ID), domain.ChatID(c.Chat().ID), false)
	if err != nil {
		logger.Error(b.ctx, "could not disable birthday on leave",
			zap.Int64("userId", left.ID), zap.Error(err))
	}

	return nil
}

// handleChatMember reacts to membership changes delivered as chat_member
// updates: bans delete the record immediately, leaves disable it and rejoins
// re-enable it.
func (b *Bot) handleChatMember(c tele.Context) error {
	update := c.ChatMember()
	if update == nil || update.NewChatMember == nil || update.NewChatMember.User == nil {
		return nil
	}

	userID := domain.UserID(update.NewChatMember.User.ID)
	chatID := domain.ChatID(update.Chat.ID)

	switch update.NewChatMember.Role {
	case tele.Kicked:
		if err := b.service.Delete(b.ctx, userID, chatID); err != nil && !errors.Is(err, serrors.ErrNotFound) {
			logger.Error(b.ctx, "could not delete birthday on ban",
				zap.Int64("userId", int64(userID)), zap.Error(err))
		}
	case tele.Left:
		if err := b.service.SetEnabled(b.ctx, userID, chatID, false); err != nil {
			logger.Error(b.ctx, "could not disable birthday on leave",
				zap.Int64("userId", int64(userID)), zap.Error(err))
		}
	default:
		if err := b.service.SetEnabled(b.ctx, userID, chatID, true); err != nil {
			logger.Error(b.ctx, "could not enable birthday on rejoin",
				zap.Int64("userId", int64(userID)), zap.Error(err))
		}
	}

	return nil
}

// userMessage extracts the human-readable message from a semantic error so
// input problems are echoed back to the member verbatim.
func userMessage(err error) string {
	var sErr *serrors.Error
	if errors.As(err, &sErr) && sErr.Message() != "" {
		return sErr.Message()
	}

	return replyInternalError
}
