package gang

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// MaxNameBytes bounds gang names so they always fit inside a component
// custom ID once base64-encoded alongside the rest of a flow token.
const MaxNameBytes = 60

// Repository provides persistence for the gang roster document.
type Repository interface {
	List(ctx context.Context) ([]string, error)
	SaveAll(ctx context.Context, gangs []string) error
}

// Service manages the roster of known gang names. The roster is a set with
// insertion order preserved; membership is exact string match.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new gang service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Add appends a gang to the roster. The name is trimmed first; empty or
// over-long names and exact duplicates are rejected without touching the
// document.
func (s *Service) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameBytes {
		return ErrInvalidName
	}

	gangs, err := s.load(ctx)
	if err != nil {
		return err
	}
	for _, g := range gangs {
		if g == name {
			return ErrDuplicate
		}
	}

	gangs = append(gangs, name)
	if err := s.repo.SaveAll(ctx, gangs); err != nil {
		return fmt.Errorf("saving gangs: %w", err)
	}
	s.logger.Info("gang added", "gang", name)
	return nil
}

// Remove deletes a gang from the roster. Activities referencing the name are
// left alone.
func (s *Service) Remove(ctx context.Context, name string) error {
	gangs, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := gangs[:0]
	found := false
	for _, g := range gangs {
		if g == name {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return ErrNotFound
	}

	if err := s.repo.SaveAll(ctx, kept); err != nil {
		return fmt.Errorf("saving gangs: %w", err)
	}
	s.logger.Info("gang removed", "gang", name)
	return nil
}

// List returns the roster in insertion order.
func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.load(ctx)
}

// Search returns gangs whose name contains query, case-insensitively, in
// roster order, capped at limit. An empty query matches everything.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]string, error) {
	gangs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	var matches []string
	for _, g := range gangs {
		if !strings.Contains(strings.ToLower(g), query) {
			continue
		}
		matches = append(matches, g)
		if limit > 0 && len(matches) >= limit {
			break
		}
	}
	return matches, nil
}

// Exists reports whether name is on the roster, by exact match.
func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	gangs, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	for _, g := range gangs {
		if g == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) load(ctx context.Context) ([]string, error) {
	gangs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("loading gangs failed, treating as empty", "error", err)
		return nil, nil
	}
	return gangs, nil
}
