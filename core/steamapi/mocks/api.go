package mocks

import (
	"context"

	"backpack-manager/core/steamapi"

	"github.com/stretchr/testify/mock"
)

// API is a mock implementation of steamapi.API
type API struct {
	mock.Mock
}

func (m *API) ResolveVanityURL(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *API) GetPlayerSummary(ctx context.Context, steamID string) (*steamapi.PlayerSummary, error) {
	args := m.Called(ctx, steamID)
	if s, ok := args.Get(0).(*steamapi.PlayerSummary); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) GetPlayerItems(ctx context.Context, steamID string) ([]steamapi.PlayerItem, error) {
	args := m.Called(ctx, steamID)
	if items, ok := args.Get(0).([]steamapi.PlayerItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) GetSchema(ctx context.Context, language string) ([]steamapi.SchemaItem, error) {
	args := m.Called(ctx, language)
	if items, ok := args.Get(0).([]steamapi.SchemaItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}
