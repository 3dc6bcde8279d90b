package filestore

import "context"

// GangRepository implements repository.GangRepository over the gangs
// document.
type GangRepository struct {
	store *Store
}

// NewGangRepository creates a new GangRepository.
func NewGangRepository(store *Store) *GangRepository {
	return &GangRepository{store: store}
}

// List reads the roster in document order.
func (r *GangRepository) List(ctx context.Context) ([]string, error) {
	r.store.gangsMu.Lock()
	defer r.store.gangsMu.Unlock()

	var gangs []string
	if err := r.store.load(gangsFile, &gangs); err != nil {
		return nil, err
	}
	return gangs, nil
}

// SaveAll replaces the roster document.
func (r *GangRepository) SaveAll(ctx context.Context, gangs []string) error {
	r.store.gangsMu.Lock()
	defer r.store.gangsMu.Unlock()

	if gangs == nil {
		gangs = []string{}
	}
	return r.store.save(gangsFile, gangs)
}
