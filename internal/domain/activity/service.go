package activity

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles activity entries.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// UpsertRequest defines inputs for recording an activity.
type UpsertRequest struct {
	GangName    string
	Type        Type
	Description string
	ActorID     string
}

// Upsert records an activity for a gang. If an entry for the exact gang name
// already exists its type and description are replaced in place, keeping the
// original ID, CreatedAt and CreatedBy. Returns the entry and whether an
// existing one was updated.
func (s *Service) Upsert(ctx context.Context, req UpsertRequest) (*Activity, bool, error) {
	name := strings.TrimSpace(req.GangName)
	if name == "" || !req.Type.Valid() {
		return nil, false, ErrInvalidInput
	}

	activities, err := s.repo.List(ctx)
	if err != nil {
		// Reads are best-effort: a failed load degrades to an empty list.
		s.logger.Warn("loading activities failed, starting from empty", "error", err)
		activities = nil
	}

	now := time.Now()
	for i := range activities {
		if activities[i].GangName != name {
			continue
		}
		activities[i].Type = req.Type
		activities[i].Description = req.Description
		activities[i].UpdatedAt = &now
		activities[i].UpdatedBy = req.ActorID
		if err := s.repo.SaveAll(ctx, activities); err != nil {
			return nil, false, fmt.Errorf("saving activities: %w", err)
		}
		entry := activities[i]
		s.logger.Info("activity updated", "gang", name, "type", req.Type.Label, "actor", req.ActorID)
		return &entry, true, nil
	}

	entry := Activity{
		ID:          uuid.NewString(),
		GangName:    name,
		Type:        req.Type,
		Description: req.Description,
		CreatedAt:   now,
		CreatedBy:   req.ActorID,
	}
	activities = append(activities, entry)
	if err := s.repo.SaveAll(ctx, activities); err != nil {
		return nil, false, fmt.Errorf("saving activities: %w", err)
	}
	s.logger.Info("activity added", "gang", name, "type", req.Type.Label, "actor", req.ActorID)
	return &entry, false, nil
}

// All returns every activity entry. A failed or corrupt load yields an empty
// list rather than an error.
func (s *Service) All(ctx context.Context) ([]Activity, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("loading activities failed, treating as empty", "error", err)
		return nil, nil
	}
	return activities, nil
}

// ByType filters activities to one category, sorted ascending by creation
// time. The sort is stable so entries created in the same instant keep their
// document order, and an updated entry never moves.
func ByType(activities []Activity, t Type) []Activity {
	var out []Activity
	for _, a := range activities {
		if a.Type.Label == t.Label {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
