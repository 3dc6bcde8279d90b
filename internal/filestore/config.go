package filestore

import (
	"context"

	"github.com/renval/gangboard/internal/domain/guildcfg"
)

// ConfigRepository implements repository.ConfigRepository over the config
// document.
type ConfigRepository struct {
	store *Store
}

// NewConfigRepository creates a new ConfigRepository.
func NewConfigRepository(store *Store) *ConfigRepository {
	return &ConfigRepository{store: store}
}

// Get reads the channel configuration.
func (r *ConfigRepository) Get(ctx context.Context) (guildcfg.GuildConfig, error) {
	r.store.configMu.Lock()
	defer r.store.configMu.Unlock()

	var cfg guildcfg.GuildConfig
	if err := r.store.load(configFile, &cfg); err != nil {
		return guildcfg.GuildConfig{}, err
	}
	return cfg, nil
}

// Save replaces the channel configuration.
func (r *ConfigRepository) Save(ctx context.Context, cfg guildcfg.GuildConfig) error {
	r.store.configMu.Lock()
	defer r.store.configMu.Unlock()

	return r.store.save(configFile, cfg)
}
