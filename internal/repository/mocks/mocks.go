package mocks

import (
	"context"

	"github.com/renval/gangboard/internal/domain/activity"
	"github.com/renval/gangboard/internal/domain/guildcfg"
	"github.com/stretchr/testify/mock"
)

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) List(ctx context.Context) ([]activity.Activity, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]activity.Activity); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) SaveAll(ctx context.Context, activities []activity.Activity) error {
	args := m.Called(ctx, activities)
	return args.Error(0)
}

// GangRepository is a mock for repository.GangRepository.
type GangRepository struct {
	mock.Mock
}

func (m *GangRepository) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]string); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GangRepository) SaveAll(ctx context.Context, gangs []string) error {
	args := m.Called(ctx, gangs)
	return args.Error(0)
}

// ConfigRepository is a mock for repository.ConfigRepository.
type ConfigRepository struct {
	mock.Mock
}

func (m *ConfigRepository) Get(ctx context.Context) (guildcfg.GuildConfig, error) {
	args := m.Called(ctx)
	if cfg, ok := args.Get(0).(guildcfg.GuildConfig); ok {
		return cfg, args.Error(1)
	}
	return guildcfg.GuildConfig{}, args.Error(1)
}

func (m *ConfigRepository) Save(ctx context.Context, cfg guildcfg.GuildConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}
