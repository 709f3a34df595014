package audit

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=audit
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	ListEntries(ctx context.Context, limit int) ([]*Entry, error)
}

// Service appends to the audit trail. Entries are never updated or
// deleted once written.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, e Entry) error {
	if e.ActionType == "" || e.EntityType == "" {
		return fmt.Errorf("audit entry requires an action and an entity type")
	}

	return s.repo.CreateEntry(ctx, &e)
}

// List returns the most recent entries first. A non-positive limit
// returns the full trail.
func (s *Service) List(ctx context.Context, limit int) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, limit)
}
