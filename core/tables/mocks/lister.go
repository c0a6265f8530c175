package mocks

import (
	"context"

	"hub-sync/core/tables"

	"github.com/stretchr/testify/mock"
)

// Lister is a mock implementation of tables.Lister
type Lister struct {
	mock.Mock
}

func (m *Lister) ListRecords(ctx context.Context, table string) ([]tables.Record, error) {
	args := m.Called(ctx, table)
	if records, ok := args.Get(0).([]tables.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}
