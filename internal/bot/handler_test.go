package bot

import (
	mockbirthday "commandhotline/internal/birthday/mock"
	"commandhotline/pkg/domain"
	"commandhotline/pkg/serrors"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	tele "gopkg.in/telebot.v3"
)

// mockContext implements the slice of tele.Context the handlers touch.
type mockContext struct {
	tele.Context

	message *tele.Message
	member  *tele.ChatMemberUpdate
	sent    []interface{}
}

func (m *mockContext) Message() *tele.Message { return m.message }

func (m *mockContext) Sender() *tele.User { return m.message.Sender }

func (m *mockContext) Chat() *tele.Chat { return m.message.Chat }

func (m *mockContext) ChatMember() *tele.ChatMemberUpdate { return m.member }

func (m *mockContext) Send(what interface{}, _ ...interface{}) error {
	m.sent = append(m.sent, what)

	return nil
}

func newTestBot(t *testing.T) (*Bot, *mockbirthday.MockService) {
	t.Helper()

	service := mockbirthday.NewMockService(gomock.NewController(t))

	return &Bot{service: service, ctx: context.Background()}, service
}

func newCommandContext(payload string) *mockContext {
	return &mockContext{message: &tele.Message{
		Payload: payload,
		Sender:  &tele.User{ID: 1},
		Chat:    &tele.Chat{ID: 2},
	}}
}

func TestHandleBirthday_Set(t *testing.T) {
	bot, service := newTestBot(t)

	year := 1990
	stored := domain.Birthday{
		UserID: 1, ChatID: 2,
		Year: &year, Month: time.April, Day: 23,
		Enabled: true,
	}
	service.EXPECT().Set(gomock.Any(), domain.UserID(1), domain.ChatID(2), "23.04.1990").
		Return(stored, nil)

	c := newCommandContext("23.04.1990")
	require.NoError(t, bot.handleBirthday(c))
	require.Equal(t, []interface{}{"Saved! Your birthday is set to 23.04.1990"}, c.sent)
}

func TestHandleBirthday_Set_BadDate(t *testing.T) {
	bot, service := newTestBot(t)

	service.EXPECT().Set(gomock.Any(), domain.UserID(1), domain.ChatID(2), "2999-01-01").
		Return(domain.Birthday{}, serrors.With(serrors.ErrBadRequest, "you cannot be born in the future"))

	c := newCommandContext("2999-01-01")
	require.NoError(t, bot.handleBirthday(c))
	require.Equal(t, []interface{}{"you cannot be born in the future"}, c.sent)
}

func TestHandleBirthday_Show(t *testing.T) {
	bot, service := newTestBot(t)

	service.EXPECT().Get(gomock.Any(), domain.UserID(1), domain.ChatID(2)).
		Return(&domain.Birthday{UserID: 1, ChatID: 2, Month: time.April, Day: 23}, nil)

	c := newCommandContext("")
	require.NoError(t, bot.handleBirthday(c))
	require.Equal(t, []interface{}{"Your birthday is set to 23.04."}, c.sent)
}

func TestHandleBirthday_Show_NotFound(t *testing.T) {
	bot, service := newTestBot(t)

	service.EXPECT().Get(gomock.Any(), domain.UserID(1), domain.ChatID(2)).
		Return(nil, serrors.With(serrors.ErrNotFound, "no birthday stored"))

	c := newCommandContext("")
	require.NoError(t, bot.handleBirthday(c))
	require.Equal(t, []interface{}{replyNoBirthday}, c.sent)
}

func TestHandleBirthday_Delete(t *testing.T) {
	for _, payload := range []string{"delete", "del", "remove", "forget", "DELETE"} {
		t.Run(payload, func(t *testing.T) {
			bot, service := newTestBot(t)
			service.EXPECT().Delete(gomock.Any(), domain.UserID(1), domain.ChatID(2)).Return(nil)

			c := newCommandContext(payload)
			require.NoError(t, bot.handleBirthday(c))
			require.Equal(t, []interface{}{replyDeleted}, c.sent)
		})
	}
}

func TestHandleUnbirthday_NothingStored(t *testing.T) {
	bot, service := newTestBot(t)

	service.EXPECT().Delete(gomock.Any(), domain.UserID(1), domain.ChatID(2)).
		Return(serrors.With(serrors.ErrNotFound, "no birthday to delete"))

	c := newCommandContext("")
	require.NoError(t, bot.handleUnbirthday(c))
	require.Equal(t, []interface{}{replyNothingToDo}, c.sent)
}

func TestHandleJoined(t *testing.T) {
	bot, service := newTestBot(t)

	service.EXPECT().SetEnabled(gomock.Any(), domain.UserID(10), domain.ChatID(2), true).Return(nil)
	service.EXPECT().SetEnabled(gomock.Any(), domain.UserID(11), domain.ChatID(2), true).Return(nil)

	c := &mockContext{message: &tele.Message{
		Chat:        &tele.Chat{ID: 2},
		UsersJoined: []tele.User{{ID: 10}, {ID: 11}},
	}}
	require.NoError(t, bot.handleJoined(c))
}

func TestHandleLeft(t *testing.T) {
	bot, service := newTestBot(t)

	service.EXPECT().SetEnabled(gomock.Any(), domain.UserID(10), domain.ChatID(2), false).Return(nil)

	c := &mockContext{message: &tele.Message{
		Chat:     &tele.Chat{ID: 2},
		UserLeft: &tele.User{ID: 10},
	}}
	require.NoError(t, bot.handleLeft(c))
}

func TestHandleChatMember(t *testing.T) {
	tests := []struct {
		name   string
		role   tele.MemberStatus
		expect func(service *mockbirthday.MockService)
	}{
		{
			name: "ban deletes",
			role: tele.Kicked,
			expect: func(service *mockbirthday.MockService) {
				service.EXPECT().Delete(gomock.Any(), domain.UserID(10), domain.ChatID(2)).Return(nil)
			},
		},
		{
			name: "leave disables",
			role: tele.Left,
			expect: func(service *mockbirthday.MockService) {
				service.EXPECT().SetEnabled(gomock.Any(), domain.UserID(10), domain.ChatID(2), false).Return(nil)
			},
		},
		{
			name: "rejoin enables",
			role: tele.Member,
			expect: func(service *mockbirthday.MockService) {
				service.EXPECT().SetEnabled(gomock.Any(), domain.UserID(10), domain.ChatID(2), true).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot, service := newTestBot(t)
			tt.expect(service)

			c := &mockContext{member: &tele.ChatMemberUpdate{
				Chat: &tele.Chat{ID: 2},
				NewChatMember: &tele.ChatMember{
					User: &tele.User{ID: 10},
					Role: tt.role,
				},
			}}
			require.NoError(t, bot.handleChatMember(c))
		})
	}
}
