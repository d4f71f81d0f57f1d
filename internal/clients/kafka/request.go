package kafka

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	idField     = "id"
	chatIDField = "chat_id"
	periodField = "period"
)

// ReportRequest asks the reporter to send a report to a chat.
type ReportRequest struct {
	ID     string
	ChatID int64
	Period string
}

func NewReportRequest(chatID int64, period string) ReportRequest {
	return ReportRequest{
		ID:     uuid.NewString(),
		ChatID: chatID,
		Period: period,
	}
}

// Marshal encodes the request as a protobuf Struct. The chat id travels as
// text since Struct numbers are doubles.
func (r ReportRequest) Marshal() ([]byte, error) {
	st, err := structpb.NewStruct(map[string]interface{}{
		idField:     r.ID,
		chatIDField: strconv.FormatInt(r.ChatID, 10),
		periodField: r.Period,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode report request")
	}
	return proto.Marshal(st)
}

func UnmarshalReportRequest(raw []byte) (ReportRequest, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(raw, &st); err != nil {
		return ReportRequest{}, errors.Wrap(err, "decode report request")
	}
	fields := st.GetFields()

	chatID, err := strconv.ParseInt(fields[chatIDField].GetStringValue(), 10, 64)
	if err != nil {
		return ReportRequest{}, errors.Wrap(err, "decode report request chat id")
	}
	return ReportRequest{
		ID:     fields[idField].GetStringValue(),
		ChatID: chatID,
		Period: fields[periodField].GetStringValue(),
	}, nil
}
