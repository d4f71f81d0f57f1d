package messages

import (
	"strings"
	"time"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

const commandParts = 2

func today(clock func() time.Time) string {
	return clock().Format(expense.DateLayout)
}

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}
