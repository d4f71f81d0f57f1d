package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	timeoutSeconds      = 5
)

type tokenGetter interface {
	Token() string
}

type Client struct {
	client *tgbotapi.BotAPI
}

type messageHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

func New(tokenGetter tokenGetter) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client}, nil
}

// Stop closes the updates channel opened by ListenUpdates.
func (c *Client) Stop() {
	c.client.StopReceivingUpdates()
}

func (c *Client) SendMessage(text string, userID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(userID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel messageHandler) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = 60

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for messages")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel messageHandler) {
	if update.Message != nil && update.Message.Chat != nil {
		logger.Info(update.Message.Text,
			zap.String("user", userName(update.Message.From)),
			zap.Int64("chat", update.Message.Chat.ID))

		ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
		defer cancel()

		err := msgModel.HandleIncomingMessage(ctx, messages.Message{
			Text:   update.Message.Text,
			UserID: update.Message.Chat.ID,
		})
		if err != nil {
			logger.Error("error processing message:", zap.Error(err))
		}
	}
}

func userName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	return u.UserName
}
