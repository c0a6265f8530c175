package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// GroupUpdater is a mock implementation of slack.GroupUpdater
type GroupUpdater struct {
	mock.Mock
}

func (m *GroupUpdater) UpdateMembers(ctx context.Context, groupID string, userIDs []string) error {
	args := m.Called(ctx, groupID, userIDs)
	return args.Error(0)
}
