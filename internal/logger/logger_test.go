package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func Test_Replace_ShouldRouteEntriesAndRestore(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := Replace(zap.New(core))

	Info("ledger initialized", zap.String("path", "expenses.csv"))
	Warn("row skipped")
	Error("append failed", zap.Error(assert.AnError))

	restore()
	Info("not observed")

	entries := logs.All()
	assert.Len(t, entries, 3)
	assert.Equal(t, "ledger initialized", entries[0].Message)
	assert.Equal(t, "expenses.csv", entries[0].ContextMap()["path"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, zap.ErrorLevel, entries[2].Level)
}
