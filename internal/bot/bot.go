// Package bot wires the birthday feature to Telegram. It registers the slash
// commands and membership hooks and announces due birthdays in their chats.
package bot

import (
	"commandhotline/internal/birthday"
	"commandhotline/internal/config"
	"commandhotline/pkg/logger"
	"commandhotline/pkg/metrics"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Options configures the Telegram transport.
type Options struct {
	// Token is the bot API token.
	Token string
	// OwnerID is the bot owner's user ID. Informational; 0 when unset.
	OwnerID int64
	// PollTimeout is the long-polling timeout for fetching updates.
	PollTimeout time.Duration
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Token:       cfg.Telegram.Token,
		OwnerID:     cfg.Telegram.OwnerID,
		PollTimeout: cfg.Telegram.PollTimeout,
	}
}

// client is the slice of the Telegram API the announcer needs. *tele.Bot
// satisfies it; tests substitute a fake.
type client interface {
	ChatByID(id int64) (*tele.Chat, error)
	ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error)
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Bot is the Telegram transport for the birthday service.
type Bot struct {
	api     *tele.Bot
	client  client
	options Options
	service birthday.Service
	metrics *metrics.Metrics

	// ctx is the process context handlers run under; telebot handlers do not
	// carry one.
	ctx context.Context
}

// New connects to the Telegram API and registers all handlers. The given
// context is used for logging and storage calls made from handlers.
func New(ctx context.Context, options Options, service birthday.Service, mts *metrics.Metrics) (*Bot, error) {
	api, err := tele.NewBot(tele.Settings{
		Token:  options.Token,
		Poller: &tele.LongPoller{Timeout: options.PollTimeout},
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Chat() != nil {
				fields = append(fields, zap.Int64("chatId", c.Chat().ID))
			}

			logger.Error(ctx, "update handling failed", fields...)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to telegram: %w", err)
	}

	b := &Bot{
		api:     api,
		client:  api,
		options: options,
		service: service,
		metrics: mts,
		ctx:     ctx,
	}
	b.register()

	return b, nil
}

// Start begins long-polling for updates. It blocks until Stop is called.
func (b *Bot) Start() {
	logger.Info(b.ctx, "bot started",
		zap.String("username", b.api.Me.Username),
		zap.Int64("ownerId", b.options.OwnerID))

	b.api.Start()
}

// Stop terminates the update loop.
func (b *Bot) Stop() {
	b.api.Stop()
}
