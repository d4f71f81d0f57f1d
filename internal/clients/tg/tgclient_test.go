package tg

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"max.ks1230/expense-tracker/internal/model/messages"
)

type handlerMock struct {
	mock.Mock
}

func (m *handlerMock) HandleIncomingMessage(ctx context.Context, msg messages.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func Test_OnListenOnce_ShouldPassChatMessage(t *testing.T) {
	handler := &handlerMock{}
	handler.On("HandleIncomingMessage", mock.Anything, messages.Message{Text: "/list", UserID: 55}).Return(nil)
	c := &Client{}

	c.listenOnce(context.Background(), tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: "/list",
			From: &tgbotapi.User{UserName: "ann"},
			Chat: &tgbotapi.Chat{ID: 55},
		},
	}, handler)

	handler.AssertExpectations(t)
}

func Test_OnListenOnce_ShouldIgnoreNonMessageUpdates(t *testing.T) {
	handler := &handlerMock{}
	c := &Client{}

	c.listenOnce(context.Background(), tgbotapi.Update{}, handler)

	handler.AssertNotCalled(t, "HandleIncomingMessage", mock.Anything, mock.Anything)
	assert.Equal(t, "", userName(nil))
}
