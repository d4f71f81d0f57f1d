package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

//go:generate minimock -i messageSender -o ./mock/message_sender_mock.go -n MessageSenderMock
type messageSender interface {
	SendMessage(text string, userID int64) error
}

//go:generate minimock -i config -o ./mock/config_mock.go -n ConfigMock
type config interface {
	AllowedChats() []int64
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, userID int64) (string, error)
}

type Service struct {
	tgClient messageSender
	handler  MessageHandler
	allowed  map[int64]struct{}
}

type Option func(*HandlerService)

// WithReportRequester makes /report asynchronous: requests are queued and
// the reporter answers the chat.
func WithReportRequester(r reportRequester) Option {
	return func(s *HandlerService) { s.requester = r }
}

func NewService(tgClient messageSender, ledger expenseLedger, generator reportGenerator, config config, opts ...Option) *Service {
	h := newHandler(ledger, generator, nil)
	for _, opt := range opts {
		opt(h)
	}

	var allowed map[int64]struct{}
	if chats := config.AllowedChats(); len(chats) > 0 {
		allowed = make(map[int64]struct{}, len(chats))
		for _, id := range chats {
			allowed[id] = struct{}{}
		}
	}
	return &Service{
		tgClient: tgClient,
		handler:  h,
		allowed:  allowed,
	}
}

type Message struct {
	Text   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	if !s.isAllowed(msg.UserID) {
		logger.Warn("message from unknown chat ignored", zap.Int64("user", msg.UserID))
		return nil
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) isAllowed(userID int64) bool {
	if s.allowed == nil {
		return true
	}
	_, ok := s.allowed[userID]
	return ok
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err != nil {
		_ = s.tgClient.SendMessage("Sorry, something wrong happened...\n"+resp, msg.UserID)
		return err
	}
	return s.tgClient.SendMessage(resp, msg.UserID)
}
