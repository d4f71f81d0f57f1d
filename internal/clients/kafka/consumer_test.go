package kafka

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type rendererMock struct {
	mock.Mock
}

func (m *rendererMock) RenderReport(ctx context.Context, period string) (string, error) {
	args := m.Called(ctx, period)
	return args.String(0), args.Error(1)
}

type senderMock struct {
	mock.Mock
}

func (m *senderMock) SendMessage(text string, userID int64) error {
	return m.Called(text, userID).Error(0)
}

func Test_ReportRequest_ShouldSurviveEncoding(t *testing.T) {
	req := NewReportRequest(9007199254740993, "month")

	raw, err := req.Marshal()
	require.NoError(t, err)
	got, err := UnmarshalReportRequest(raw)

	require.NoError(t, err)
	assert.Equal(t, req, got)
	assert.Len(t, got.ID, 36)
}

func Test_UnmarshalReportRequest_ShouldFailOnGarbage(t *testing.T) {
	_, err := UnmarshalReportRequest([]byte{0xff, 0x01})

	assert.Error(t, err)
}

func Test_OnProcessRequest_ShouldSendRenderedReport(t *testing.T) {
	renderer := &rendererMock{}
	sender := &senderMock{}
	renderer.On("RenderReport", mock.Anything, "week").Return("report text", nil)
	sender.On("SendMessage", "report text", int64(42)).Return(nil)
	c := &Consumer{generator: renderer, sender: sender}

	c.processRequest(context.Background(), ReportRequest{ID: "1", ChatID: 42, Period: "week"})

	renderer.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func Test_OnProcessRequest_ShouldApologiseOnFailure(t *testing.T) {
	renderer := &rendererMock{}
	sender := &senderMock{}
	renderer.On("RenderReport", mock.Anything, "decade").Return("", errors.New("unsupported"))
	sender.On("SendMessage", cannotBuildReportMessage, int64(42)).Return(nil)
	c := &Consumer{generator: renderer, sender: sender}

	c.processRequest(context.Background(), ReportRequest{ID: "1", ChatID: 42, Period: "decade"})

	sender.AssertExpectations(t)
}
