package filestore

import (
	"context"

	"github.com/renval/gangboard/internal/domain/activity"
)

// ActivityRepository implements repository.ActivityRepository over the
// activities document.
type ActivityRepository struct {
	store *Store
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(store *Store) *ActivityRepository {
	return &ActivityRepository{store: store}
}

// List reads the full activities document.
func (r *ActivityRepository) List(ctx context.Context) ([]activity.Activity, error) {
	r.store.activitiesMu.Lock()
	defer r.store.activitiesMu.Unlock()

	var activities []activity.Activity
	if err := r.store.load(activitiesFile, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// SaveAll replaces the full activities document.
func (r *ActivityRepository) SaveAll(ctx context.Context, activities []activity.Activity) error {
	r.store.activitiesMu.Lock()
	defer r.store.activitiesMu.Unlock()

	if activities == nil {
		activities = []activity.Activity{}
	}
	return r.store.save(activitiesFile, activities)
}
