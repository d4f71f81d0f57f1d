package storage

import (
	"context"
	"sync"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

type InMemStorage struct {
	mu      sync.Mutex
	records []expense.Record
}

func NewInMemStorage(records ...expense.Record) *InMemStorage {
	s := &InMemStorage{}
	for _, rec := range records {
		s.records = append(s.records, append(expense.Record(nil), rec...))
	}
	return s
}

func (s *InMemStorage) Init(_ context.Context) error {
	return nil
}

func (s *InMemStorage) Append(_ context.Context, rec expense.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, append(expense.Record(nil), rec...))
	return nil
}

func (s *InMemStorage) ReadAll(_ context.Context) ([]expense.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]expense.Record, 0, len(s.records))
	for _, rec := range s.records {
		res = append(res, append(expense.Record(nil), rec...))
	}
	return res, nil
}
