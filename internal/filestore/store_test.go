package filestore_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/renval/gangboard/internal/domain/activity"
	"github.com/renval/gangboard/internal/domain/guildcfg"
	"github.com/renval/gangboard/internal/filestore"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*filestore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	return filestore.New(dir, slog.New(slog.NewTextHandler(io.Discard, nil))), dir
}

func TestEnsureFilesCreatesDefaults(t *testing.T) {
	store, dir := newStore(t)
	require.NoError(t, store.EnsureFiles())

	for _, name := range filestore.DocumentFiles() {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		require.True(t, json.Valid(data), "%s should hold valid JSON", name)
	}
}

func TestEnsureFilesKeepsExisting(t *testing.T) {
	store, dir := newStore(t)
	path := filepath.Join(dir, "gangs.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Crips"]`), 0o644))

	require.NoError(t, store.EnsureFiles())

	gangs, err := filestore.NewGangRepository(store).List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Crips"}, gangs)
}

func TestMissingDocumentsLoadAsEmpty(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	activities, err := filestore.NewActivityRepository(store).List(ctx)
	require.NoError(t, err)
	require.Empty(t, activities)

	gangs, err := filestore.NewGangRepository(store).List(ctx)
	require.NoError(t, err)
	require.Empty(t, gangs)

	cfg, err := filestore.NewConfigRepository(store).Get(ctx)
	require.NoError(t, err)
	require.Nil(t, cfg.Channels.Activity)
}

func TestCorruptDocumentLoadsAsEmpty(t *testing.T) {
	store, dir := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "activities.json"), []byte("{not json"), 0o644))

	activities, err := filestore.NewActivityRepository(store).List(context.Background())
	require.NoError(t, err)
	require.Empty(t, activities)
}

func TestActivityRoundTrip(t *testing.T) {
	store, dir := newStore(t)
	ctx := context.Background()
	repo := filestore.NewActivityRepository(store)

	updated := time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)
	in := []activity.Activity{{
		ID:          "a1",
		GangName:    "Red Dragons",
		Type:        activity.TypeNoBeef,
		Description: "truce",
		CreatedAt:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		CreatedBy:   "u1",
		UpdatedAt:   &updated,
		UpdatedBy:   "u2",
	}}
	require.NoError(t, repo.SaveAll(ctx, in))

	out, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, in, out)

	// The stored form keeps the original document shape: type as label.
	raw, err := os.ReadFile(filepath.Join(dir, "activities.json"))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"type": "No Beef"`)
	require.Contains(t, string(raw), `"gangName": "Red Dragons"`)
}

func TestConfigRoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	repo := filestore.NewConfigRepository(store)

	in := guildcfg.GuildConfig{Channels: guildcfg.Channels{
		Activity: &guildcfg.ActivityChannel{ChannelID: "c1", MessageID: "m1"},
		Stream:   &guildcfg.StreamChannel{ChannelID: "c2"},
	}}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSaveNilSlicesWriteEmptyArrays(t *testing.T) {
	store, dir := newStore(t)
	ctx := context.Background()

	require.NoError(t, filestore.NewGangRepository(store).SaveAll(ctx, nil))
	raw, err := os.ReadFile(filepath.Join(dir, "gangs.json"))
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(raw))
}
