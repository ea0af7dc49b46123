package mocks

import (
	"context"

	"docqa/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockQueryService struct {
	mock.Mock
}

func (m *MockQueryService) Chat(ctx context.Context, documentID, question string) (*service.ChatResult, error) {
	args := m.Called(ctx, documentID, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatResult), args.Error(1)
}

func (m *MockQueryService) Summarize(ctx context.Context, documentID string) (*service.SummaryResult, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SummaryResult), args.Error(1)
}
