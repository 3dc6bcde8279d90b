package repository

import (
	"context"

	"github.com/renval/gangboard/internal/domain/activity"
	"github.com/renval/gangboard/internal/domain/guildcfg"
)

// ActivityRepository manages the activities document
type ActivityRepository interface {
	List(ctx context.Context) ([]activity.Activity, error)
	SaveAll(ctx context.Context, activities []activity.Activity) error
}

// GangRepository manages the gang roster document
type GangRepository interface {
	List(ctx context.Context) ([]string, error)
	SaveAll(ctx context.Context, gangs []string) error
}

// ConfigRepository manages the channel configuration document
type ConfigRepository interface {
	Get(ctx context.Context) (guildcfg.GuildConfig, error)
	Save(ctx context.Context, cfg guildcfg.GuildConfig) error
}
