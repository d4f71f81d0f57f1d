package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_SQLiteStorage_AppendAndReadAll(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "db", "ledger.db"))
	require.NoError(t, err)
	defer Close(s)

	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Init(ctx))

	empty, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	want := []expense.Record{
		expense.NewRecord("01-01-2024", "Food", "100"),
		expense.NewRecord("02-02-2024", "Transport", "30"),
		expense.NewRecord("10-01-2024", "Food", "abc"),
	}
	for _, rec := range want {
		require.NoError(t, s.Append(ctx, rec))
	}

	got, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
